// Package common - Test chuyển đổi lỗi MongoDB: store không khả dụng phải là
// lỗi server 500 của request hiện tại và giữ nguyên thông điệp lỗi gốc.
package common

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_TimeoutIs500WithOriginalMessage(t *testing.T) {
	converted := ConvertMongoError(context.DeadlineExceeded)

	var customErr *Error
	if !errors.As(converted, &customErr) {
		t.Fatalf("ConvertMongoError phải trả về *Error, được %T", converted)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("timeout store cho status %d, muốn %d", customErr.StatusCode, StatusInternalServerError)
	}
	if !strings.Contains(customErr.Message, context.DeadlineExceeded.Error()) {
		t.Errorf("message %q phải giữ nguyên thông điệp lỗi gốc %q", customErr.Message, context.DeadlineExceeded.Error())
	}
	if customErr.Code.Code != ErrCodeDatabaseConnection.Code {
		t.Errorf("mã lỗi %q, muốn %q", customErr.Code.Code, ErrCodeDatabaseConnection.Code)
	}
}

func TestConvertMongoError_NetworkErrorIs500WithOriginalMessage(t *testing.T) {
	netErr := mongo.CommandError{
		Name:    "NetworkError",
		Message: "connection refused",
		Labels:  []string{"NetworkError"},
	}
	converted := ConvertMongoError(netErr)

	var customErr *Error
	if !errors.As(converted, &customErr) {
		t.Fatalf("ConvertMongoError phải trả về *Error, được %T", converted)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi mạng store cho status %d, muốn %d", customErr.StatusCode, StatusInternalServerError)
	}
	if !strings.Contains(customErr.Message, "connection refused") {
		t.Errorf("message %q phải giữ nguyên thông điệp lỗi gốc của driver", customErr.Message)
	}
}

func TestConvertMongoError_NotFoundPassesThrough(t *testing.T) {
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, được %v", got)
	}
}

func TestConvertMongoError_GenericKeepsMessage(t *testing.T) {
	converted := ConvertMongoError(errors.New("unexpected cursor state"))

	var customErr *Error
	if !errors.As(converted, &customErr) {
		t.Fatalf("ConvertMongoError phải trả về *Error, được %T", converted)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi chung cho status %d, muốn %d", customErr.StatusCode, StatusInternalServerError)
	}
	if customErr.Message != "unexpected cursor state" {
		t.Errorf("message = %q, muốn thông điệp lỗi gốc", customErr.Message)
	}
}
