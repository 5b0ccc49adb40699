// Package models - Test dựng kết quả phân trang.
package models

import "testing"

func TestNewPaginateResult(t *testing.T) {
	items := []string{"a", "b", "c"}
	result := NewPaginateResult(items, 2, 3, 7)

	if result.Page != 2 || result.Limit != 3 {
		t.Errorf("page/limit = %d/%d, muốn 2/3", result.Page, result.Limit)
	}
	if result.ItemCount != 3 {
		t.Errorf("ItemCount = %d, muốn 3", result.ItemCount)
	}
	if result.Total != 7 {
		t.Errorf("Total = %d, muốn 7", result.Total)
	}
	if result.TotalPage != 3 {
		t.Errorf("TotalPage = %d, muốn 3 (7 mục, mỗi trang 3)", result.TotalPage)
	}
}

func TestNewPaginateResult_Empty(t *testing.T) {
	result := NewPaginateResult([]int{}, 1, 10, 0)
	if result.TotalPage != 0 {
		t.Errorf("không có dữ liệu thì TotalPage phải là 0, nhận %d", result.TotalPage)
	}
	if result.ItemCount != 0 {
		t.Errorf("ItemCount = %d, muốn 0", result.ItemCount)
	}
}
