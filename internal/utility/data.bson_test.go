// Package utility - Test chuyển đổi struct sang bản đồ bson.
package utility

import (
	"testing"
)

func TestToMap_StructFields(t *testing.T) {
	type sample struct {
		Name  string `bson:"name"`
		Count int64  `bson:"count"`
	}
	m, err := ToMap(sample{Name: "du-an-a", Count: 3})
	if err != nil {
		t.Fatalf("ToMap trả về lỗi: %v", err)
	}
	if m["name"] != "du-an-a" {
		t.Errorf("m[name] = %v, muốn du-an-a", m["name"])
	}
	if m["count"] != int64(3) {
		t.Errorf("m[count] = %v (%T), muốn int64(3)", m["count"], m["count"])
	}
}

func TestToMap_OmitEmpty(t *testing.T) {
	type sample struct {
		Name string `bson:"name"`
		Note string `bson:"note,omitempty"`
	}
	m, err := ToMap(sample{Name: "du-an-a"})
	if err != nil {
		t.Fatalf("ToMap trả về lỗi: %v", err)
	}
	if _, ok := m["note"]; ok {
		t.Error("trường omitempty rỗng không được xuất hiện trong bản đồ")
	}
}
