// Package utility - Test kiểm tra tệp tải lên và sinh tên tệp lưu trữ.
package utility

import (
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"task_manager/internal/common"
)

func TestValidateSubmissionFile_AllowedExtensions(t *testing.T) {
	for _, name := range []string{"bao-cao.pdf", "anh.JPG", "thiet-ke.png", "tai-lieu.docx", "hinh.jpeg"} {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		if err := ValidateSubmissionFile(file, 5); err != nil {
			t.Errorf("tệp %q phải được chấp nhận, nhận lỗi: %v", name, err)
		}
	}
}

func TestValidateSubmissionFile_RejectedExtensions(t *testing.T) {
	for _, name := range []string{"script.exe", "data.zip", "khong-duoi", "macro.xlsm"} {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		err := ValidateSubmissionFile(file, 5)
		if !errors.Is(err, common.ErrFileTypeInvalid) {
			t.Errorf("tệp %q phải bị từ chối với ErrFileTypeInvalid, nhận: %v", name, err)
		}
	}
}

func TestValidateSubmissionFile_TooLarge(t *testing.T) {
	file := &multipart.FileHeader{Filename: "bao-cao.pdf", Size: 6 * 1024 * 1024}
	err := ValidateSubmissionFile(file, 5)
	if !errors.Is(err, common.ErrFileTooLarge) {
		t.Fatalf("tệp 6MB với giới hạn 5MB phải trả về ErrFileTooLarge, nhận: %v", err)
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatal("lỗi kích thước phải là *common.Error")
	}
	if appErr.Details == nil {
		t.Error("lỗi kích thước phải kèm chi tiết kích thước tệp")
	}
}

func TestValidateSubmissionFile_ExactLimit(t *testing.T) {
	file := &multipart.FileHeader{Filename: "bao-cao.pdf", Size: 5 * 1024 * 1024}
	if err := ValidateSubmissionFile(file, 5); err != nil {
		t.Errorf("tệp đúng bằng giới hạn phải được chấp nhận, nhận: %v", err)
	}
}

func TestValidateImageFile_RejectsNonImage(t *testing.T) {
	file := &multipart.FileHeader{Filename: "ho-so.pdf", Size: 1024}
	err := ValidateImageFile(file, 5)
	if !errors.Is(err, common.ErrFileTypeInvalid) {
		t.Errorf("tệp pdf không phải ảnh, phải bị từ chối, nhận: %v", err)
	}

	image := &multipart.FileHeader{Filename: "avatar.png", Size: 1024}
	if err := ValidateImageFile(image, 5); err != nil {
		t.Errorf("tệp png phải được chấp nhận, nhận: %v", err)
	}
}

func TestGenerateStoredFileName(t *testing.T) {
	name := GenerateStoredFileName("submission", "Bao Cao.PDF")
	if !strings.HasPrefix(name, "submission-") {
		t.Errorf("tên lưu trữ phải bắt đầu bằng tên field, nhận: %q", name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("tên lưu trữ phải giữ phần mở rộng (viết thường), nhận: %q", name)
	}

	other := GenerateStoredFileName("submission", "Bao Cao.PDF")
	if name == other {
		t.Error("hai tên lưu trữ sinh từ cùng tệp gốc không được trùng nhau")
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}

func TestRemoveFileIfExists_MissingFile(t *testing.T) {
	if err := RemoveFileIfExists("/duong/dan/khong/ton/tai.pdf"); err != nil {
		t.Errorf("xóa tệp không tồn tại không được coi là lỗi, nhận: %v", err)
	}
	if err := RemoveFileIfExists(""); err != nil {
		t.Errorf("đường dẫn rỗng không được coi là lỗi, nhận: %v", err)
	}
}
