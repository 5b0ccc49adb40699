// Package utility - Test các hàm tiện ích slice và chuyển đổi định dạng.
package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContains(t *testing.T) {
	roles := []string{"superadmin", "admin"}
	if !Contains(roles, "admin") {
		t.Error("Contains phải tìm thấy phần tử có trong slice")
	}
	if Contains(roles, "employee") {
		t.Error("Contains không được tìm thấy phần tử không có trong slice")
	}
	if Contains([]string{}, "admin") {
		t.Error("Contains trên slice rỗng phải trả về false")
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"a", "b", "a", "c", "b"})
	if len(got) != 3 {
		t.Fatalf("Dedupe trả về %d phần tử, muốn 3: %v", len(got), got)
	}
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Dedupe phải giữ nguyên thứ tự xuất hiện đầu tiên: %v", got)
	}

	if got := Dedupe([]string{}); len(got) != 0 {
		t.Errorf("Dedupe trên slice rỗng phải trả về slice rỗng, nhận %v", got)
	}
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID(%q) = %v, muốn %v", id.Hex(), got, id)
	}
	if got := String2ObjectID("khong-hop-le"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, nhận %v", got)
	}
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	got := StringArray2ObjectIDArray([]string{a.Hex(), b.Hex()})
	if len(got) != 2 {
		t.Fatalf("muốn 2 ObjectID, nhận %d", len(got))
	}
	if got[0] != a || got[1] != b {
		t.Errorf("thứ tự ObjectID phải được giữ nguyên: %v", got)
	}
}
