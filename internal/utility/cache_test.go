// Package utility - Test cache in-memory với TTL theo entry.
package utility

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("admin:abc", "principal")
	value, ok := cache.Get("admin:abc")
	if !ok {
		t.Fatal("entry vừa lưu phải tồn tại trong cache")
	}
	if value != "principal" {
		t.Errorf("Get = %v, muốn principal", value)
	}

	if _, ok := cache.Get("khong-ton-tai"); ok {
		t.Error("key chưa lưu không được tồn tại trong cache")
	}
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache(10*time.Millisecond, time.Minute)
	defer cache.Stop()

	cache.Set("employee:xyz", "principal")
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get("employee:xyz"); ok {
		t.Error("entry quá TTL phải được coi là không tồn tại")
	}
}

func TestCache_Delete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("admin:abc", "principal")
	cache.Delete("admin:abc")
	if _, ok := cache.Get("admin:abc"); ok {
		t.Error("entry đã xóa không được tồn tại trong cache")
	}
}
