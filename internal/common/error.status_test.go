// Package common - Test chuẩn hóa lỗi hệ thống và chuyển đổi lỗi MongoDB.
package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_Is(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("sentinel phải khớp với chính nó qua errors.Is")
	}
	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("hai sentinel khác nhau không được khớp qua errors.Is")
	}

	wrapped := fmt.Errorf("tra cứu nhiệm vụ: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("sentinel bọc trong %w phải khớp qua errors.Is")
	}
}

func TestError_StatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrTokenMissing, StatusUnauthorized},
		{ErrForbidden, StatusForbidden},
		{ErrNotFound, StatusNotFound},
		{ErrDuplicate, StatusConflict},
		{ErrFileTooLarge, StatusPayloadTooLarge},
		{ErrNotAssigned, StatusForbidden},
		{ErrInvalidState, StatusBadRequest},
	}
	for _, tc := range cases {
		var appErr *Error
		if !errors.As(tc.err, &appErr) {
			t.Fatalf("%v phải là *Error", tc.err)
		}
		if appErr.StatusCode != tc.want {
			t.Errorf("%q có status %d, muốn %d", appErr.Message, appErr.StatusCode, tc.want)
		}
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	got := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải được chuyển thành ErrNotFound, nhận: %v", got)
	}
}

func TestConvertMongoError_AlreadyNormalized(t *testing.T) {
	got := ConvertMongoError(ErrNotFound)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound đã chuẩn hóa phải được giữ nguyên, nhận: %v", got)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	got := ConvertMongoError(dupErr)
	if !errors.Is(got, ErrDuplicate) {
		t.Errorf("lỗi duplicate key phải được chuyển thành ErrDuplicate, nhận: %v", got)
	}
}

func TestConvertMongoError_CommandError(t *testing.T) {
	cmdErr := mongo.CommandError{Code: 13, Message: "not authorized"}
	got := ConvertMongoError(cmdErr)

	var appErr *Error
	if !errors.As(got, &appErr) {
		t.Fatalf("lỗi command phải được chuyển thành *Error, nhận: %v", got)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi command có status %d, muốn %d", appErr.StatusCode, StatusInternalServerError)
	}
}

func TestConvertMongoError_Unknown(t *testing.T) {
	got := ConvertMongoError(errors.New("lỗi lạ"))

	var appErr *Error
	if !errors.As(got, &appErr) {
		t.Fatalf("lỗi không nhận diện được phải thành *Error, nhận: %v", got)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi không nhận diện được phải có status 500, nhận %d", appErr.StatusCode)
	}
}
