// Package models chứa các kiểu dùng chung cho layer repository/base.
package models

// PaginateResult là kết quả của một truy vấn phân trang
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại (bắt đầu từ 1)
	Limit     int64 `json:"limit" bson:"limit"`         // Số mục tối đa mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số mục trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`         // Dữ liệu của trang
	Total     int64 `json:"total" bson:"total"`         // Tổng số mục khớp filter
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}

// NewPaginateResult dựng kết quả phân trang, tự tính itemCount và totalPage
func NewPaginateResult[T any](items []T, page, limit, total int64) *PaginateResult[T] {
	var totalPage int64
	if total > 0 && limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}
}
