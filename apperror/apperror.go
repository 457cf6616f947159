// Package apperror defines the typed error kinds shared by all services.
// Handlers map these kinds to HTTP status codes; nothing below the HTTP
// layer ever writes to a response directly.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAuthorization = errors.New("authorization")
	ErrInvariant     = errors.New("invariant")
)

// AppError carries an error kind plus a human-readable message.
type AppError struct {
	Err     error  // kind sentinel, matched with errors.Is
	Message string // human-readable message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound 表示引用的实体不存在，操作终止且不重试
func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

// NotFoundf formats a NotFound error.
func NotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Authorization 表示操作者没有访问资源的权限
func Authorization(message string) *AppError {
	return &AppError{Err: ErrAuthorization, Message: message}
}

// Invariant 表示业务规则被违反（如重复点赞）
func Invariant(message string) *AppError {
	return &AppError{Err: ErrInvariant, Message: message}
}

// IsNotFound reports whether err carries the NotFound kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuthorization reports whether err carries the Authorization kind.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrAuthorization)
}

// IsInvariant reports whether err carries the Invariant kind.
func IsInvariant(err error) bool {
	return errors.Is(err, ErrInvariant)
}
