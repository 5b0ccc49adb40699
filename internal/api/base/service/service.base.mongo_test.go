// Package basesvc - Test chuyển đổi dữ liệu update sang UpdateData.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_Passthrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"status": "In-Progress"}}
	got, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if got != original {
		t.Error("con trỏ *UpdateData phải được trả về nguyên vẹn")
	}

	value := UpdateData{Set: map[string]interface{}{"status": "Completed"}}
	got, err = ToUpdateData(value)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if got.Set["status"] != "Completed" {
		t.Errorf("UpdateData giá trị phải được chuyển thành con trỏ, Set = %v", got.Set)
	}
}

func TestToUpdateData_OperatorMap(t *testing.T) {
	data := bson.M{
		"$set":  bson.M{"status": "In-Progress"},
		"$push": bson.M{"updateLogs": bson.M{"note": "ghi chú"}},
	}
	got, err := ToUpdateData(data)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if got.Set == nil || got.Set["status"] != "In-Progress" {
		t.Errorf("operator $set phải được nhận diện, Set = %v", got.Set)
	}
	if got.Push == nil {
		t.Error("operator $push phải được nhận diện")
	}
	if got.Inc != nil {
		t.Errorf("operator không có trong input phải để nil, Inc = %v", got.Inc)
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	got, err := ToUpdateData(bson.M{"name": "du-an-a", "priority": "High"})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if got.Set == nil {
		t.Fatal("map thường phải được bọc trong $set")
	}
	if got.Set["name"] != "du-an-a" || got.Set["priority"] != "High" {
		t.Errorf("Set = %v, thiếu trường từ map gốc", got.Set)
	}
}

func TestToUpdateData_StructWrappedInSet(t *testing.T) {
	type patch struct {
		Name string `bson:"name"`
	}
	got, err := ToUpdateData(patch{Name: "du-an-b"})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if got.Set == nil || got.Set["name"] != "du-an-b" {
		t.Errorf("struct không có operator phải được bọc trong $set, Set = %v", got.Set)
	}
}
