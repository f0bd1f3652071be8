package rj_error

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode int

const (
	BadRequestCode      ErrorCode = 400
	UnauthenticatedCode ErrorCode = 401
	UnauthorizedCode    ErrorCode = 403
	NotFoundCode        ErrorCode = 404
	TooManyRequestsCode ErrorCode = 429
	InternalErrorCode   ErrorCode = 500

	// 業務錯誤碼, 對外仍以 400 回應
	ValidationCode ErrorCode = 460
	ConflictCode   ErrorCode = 470
)

var ErrStrMap = map[ErrorCode]string{
	BadRequestCode:      "invalid request payload",
	UnauthenticatedCode: "Unauthorized",
	UnauthorizedCode:    "Invalid token",
	NotFoundCode:        "resource not found",
	TooManyRequestsCode: "Too Many Requests",
	InternalErrorCode:   "internal server error",
	ValidationCode:      "validation failed",
	ConflictCode:        "resource already exists",
}

// AnaError 帶有錯誤碼的應用層錯誤
type AnaError struct {
	Code    ErrorCode
	Message string
}

var (
	NotFoundError        = &AnaError{Code: NotFoundCode}
	ConflictError        = &AnaError{Code: ConflictCode}
	ValidationError      = &AnaError{Code: ValidationCode}
	InternalError        = &AnaError{Code: InternalErrorCode}
	UnauthorizedError    = &AnaError{Code: UnauthorizedCode}
	UnauthenticatedError = &AnaError{Code: UnauthenticatedCode}
	BadRequestError      = &AnaError{Code: BadRequestCode}
)

func New(code ErrorCode, msg string) *AnaError {
	return &AnaError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code ErrorCode, format string, args ...any) *AnaError {
	return New(code, fmt.Sprintf(format, args...))
}

func (e *AnaError) Error() string {
	if e.Message == "" {
		return ErrStrMap[e.Code]
	}
	return e.Message
}

// Is 只比較錯誤碼, 讓 errors.Is(err, NotFoundError) 可以使用
func (e *AnaError) Is(target error) bool {
	var t *AnaError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus 將錯誤碼轉為 http status
func (e *AnaError) HTTPStatus() int {
	switch e.Code {
	case ValidationCode, ConflictCode, BadRequestCode:
		return http.StatusBadRequest
	case UnauthenticatedCode:
		return http.StatusUnauthorized
	case UnauthorizedCode:
		return http.StatusForbidden
	case NotFoundCode:
		return http.StatusNotFound
	case TooManyRequestsCode:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage 對外顯示的訊息
func (e *AnaError) UserMessage() string {
	if msg, ok := ErrStrMap[e.Code]; ok {
		return msg
	}
	return ErrStrMap[InternalErrorCode]
}

// As 將任意 error 轉為 AnaError, 非 AnaError 一律視為內部錯誤
func As(err error) *AnaError {
	var anaErr *AnaError
	if errors.As(err, &anaErr) {
		return anaErr
	}
	return New(InternalErrorCode, err.Error())
}
