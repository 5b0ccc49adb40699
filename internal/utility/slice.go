package utility

// Contains kiểm tra một phần tử có nằm trong slice hay không.
// Dùng để đối chiếu role của người gọi với danh sách role được phép.
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Dedupe trả về slice mới đã loại bỏ các phần tử trùng lặp, giữ nguyên thứ tự.
// Dùng khi chuẩn hóa danh sách người nhận trước khi phân công.
func Dedupe[T comparable](slice []T) []T {
	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
