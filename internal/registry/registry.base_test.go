// Package registry - Test registry generic thread-safe.
package registry

import (
	"errors"
	"testing"
)

func TestRegister_NewAndOverwrite(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("tasks", 1)
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký lần đầu phải trả về isNew = true")
	}

	isNew, err = r.Register("tasks", 2)
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè item đã tồn tại phải trả về isNew = false")
	}

	item, exists := r.Get("tasks")
	if !exists || item != 2 {
		t.Errorf("Get sau khi ghi đè = (%v, %v), muốn (2, true)", item, exists)
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("đăng ký với name rỗng phải trả về lỗi")
	}
}

func TestGet_Missing(t *testing.T) {
	r := NewRegistry[string]()
	if _, exists := r.Get("khong-ton-tai"); exists {
		t.Error("Get item chưa đăng ký phải trả về exists = false")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	created := 0

	creator := func() (string, error) {
		created++
		return "instance", nil
	}

	item, err := r.GetOrCreate("projects", creator)
	if err != nil {
		t.Fatalf("GetOrCreate trả về lỗi: %v", err)
	}
	if item != "instance" {
		t.Errorf("GetOrCreate = %q, muốn instance", item)
	}

	// Lần gọi thứ hai phải dùng lại item cũ, không gọi creator
	if _, err := r.GetOrCreate("projects", creator); err != nil {
		t.Fatalf("GetOrCreate lần hai trả về lỗi: %v", err)
	}
	if created != 1 {
		t.Errorf("creator bị gọi %d lần, muốn 1", created)
	}
}

func TestGetOrCreate_CreatorError(t *testing.T) {
	r := NewRegistry[string]()
	wantErr := errors.New("tạo thất bại")

	_, err := r.GetOrCreate("projects", func() (string, error) {
		return "", wantErr
	})
	if err == nil {
		t.Fatal("GetOrCreate phải trả về lỗi khi creator thất bại")
	}
	if _, exists := r.Get("projects"); exists {
		t.Error("item không được lưu khi creator thất bại")
	}
}

func TestClear_WithCleanup(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("tasks", 7); err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}

	cleaned := false
	deleted, err := r.Clear("tasks", func(item int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear trả về lỗi: %v", err)
	}
	if !deleted || !cleaned {
		t.Errorf("Clear = (deleted=%v, cleaned=%v), muốn (true, true)", deleted, cleaned)
	}

	deleted, err = r.Clear("tasks", nil)
	if err != nil {
		t.Fatalf("Clear trả về lỗi: %v", err)
	}
	if deleted {
		t.Error("Clear item đã xóa phải trả về deleted = false")
	}
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := r.Register(name, 1); err != nil {
			t.Fatalf("Register trả về lỗi: %v", err)
		}
	}

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll trả về lỗi: %v", err)
	}
	if count != 3 {
		t.Errorf("ClearAll xóa %d items, muốn 3", count)
	}
	if len(r.Names()) != 0 {
		t.Errorf("registry phải rỗng sau ClearAll, còn: %v", r.Names())
	}
}
