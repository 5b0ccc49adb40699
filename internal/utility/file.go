package utility

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"task_manager/internal/common"

	"github.com/google/uuid"
)

// allowedSubmissionExts là các phần mở rộng được chấp nhận khi nộp tệp
var allowedSubmissionExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
	".docx": true,
}

// allowedImageExts là các phần mở rộng ảnh được chấp nhận (ảnh đại diện)
var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// fileTooLargeError tạo lỗi kích thước kèm chi tiết kích thước tệp và giới hạn
func fileTooLargeError(file *multipart.FileHeader, maxBytes int64) error {
	return common.NewError(common.ErrCodeFile, "Tệp vượt quá kích thước cho phép", common.StatusPayloadTooLarge, map[string]interface{}{
		"fileName": file.Filename,
		"size":     FormatBytes(uint64(file.Size)),
		"maxSize":  FormatBytes(uint64(maxBytes)),
	})
}

// ValidateSubmissionFile kiểm tra phần mở rộng và kích thước của tệp nộp
func ValidateSubmissionFile(file *multipart.FileHeader, maxSizeMB int64) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedSubmissionExts[ext] {
		return common.ErrFileTypeInvalid
	}
	maxBytes := maxSizeMB * 1024 * 1024
	if file.Size > maxBytes {
		return fileTooLargeError(file, maxBytes)
	}
	return nil
}

// ValidateImageFile kiểm tra tệp ảnh tải lên (ảnh đại diện)
func ValidateImageFile(file *multipart.FileHeader, maxSizeMB int64) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return common.ErrFileTypeInvalid
	}
	maxBytes := maxSizeMB * 1024 * 1024
	if file.Size > maxBytes {
		return fileTooLargeError(file, maxBytes)
	}
	return nil
}

// GenerateStoredFileName sinh tên tệp lưu trữ duy nhất theo dạng
// <field>-<timestamp>-<random><ext> để tránh ghi đè giữa các lần nộp
func GenerateStoredFileName(fieldName string, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixNano(), uuid.NewString(), ext)
}

// SaveUploadedFile lưu tệp multipart vào thư mục đích, tạo thư mục nếu chưa tồn tại.
// Trả về đường dẫn đầy đủ của tệp đã lưu.
func SaveUploadedFile(file *multipart.FileHeader, destDir string, storedName string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("không thể tạo thư mục %s: %w", destDir, err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("không thể mở tệp tải lên: %w", err)
	}
	defer src.Close()

	destPath := filepath.Join(destDir, storedName)
	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("không thể tạo tệp %s: %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("không thể ghi tệp %s: %w", destPath, err)
	}

	return destPath, nil
}

// RemoveFileIfExists xóa tệp nếu tồn tại, trả về lỗi nếu xóa thất bại.
// Tệp không tồn tại không được coi là lỗi.
func RemoveFileIfExists(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
