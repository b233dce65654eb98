package errors

import (
	"errors"
	"fmt"
)

// ErrorCode phân loại lỗi của ứng dụng
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Integrity errors
	ErrCodeConflict  ErrorCode = "CONFLICT"
	ErrCodeDuplicate ErrorCode = "DUPLICATE"

	// Booking errors
	ErrCodeNoAvailability    ErrorCode = "NO_AVAILABILITY"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Store errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation tạo lỗi validation
func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// NotFound tạo lỗi not found
func NotFound(entity string) *AppError {
	return NewAppError(ErrCodeNotFound, entity+" not found", nil)
}

// Conflict tạo lỗi conflict
func Conflict(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

// NoAvailability tạo lỗi hết phòng
func NoAvailability(message string) *AppError {
	return NewAppError(ErrCodeNoAvailability, message, nil)
}

// InvalidTransition tạo lỗi chuyển trạng thái không hợp lệ
func InvalidTransition(message string) *AppError {
	return NewAppError(ErrCodeInvalidTransition, message, nil)
}

// Internal bọc lỗi tầng store, giữ nguyên nhân gốc để log
func Internal(err error) *AppError {
	return NewAppError(ErrCodeInternal, "internal error", err)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// HasCode kiểm tra error có mã lỗi tương ứng không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}
