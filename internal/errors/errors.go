// Package errors 定义了服务对外暴露的错误分类。
// 每个错误都带有类型（决定 HTTP 状态码）、面向调用方的消息以及创建时的调用栈。
package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

// MsgStorageFailure 是存储失败时对外的唯一消息，具体原因只写日志。
const MsgStorageFailure = "An unexpected error occurred"

const (
	ErrTypeValidation     ErrorType = "VALIDATION"
	ErrTypeNotFound       ErrorType = "NOT_FOUND"
	ErrTypeStorageFailure ErrorType = "STORAGE_FAILURE"
)

// Violation 描述单个字段未通过校验的原因。
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type DomainError struct {
	Type       ErrorType
	Message    string
	Violations []Violation
	Err        error
	Stack      []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// Validation 创建一个校验错误，violations 列出所有未通过校验的字段。
func Validation(message string, violations ...Violation) *DomainError {
	e := New(ErrTypeValidation, message, nil)
	e.Violations = violations
	return e
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func StorageFailure(message string, err error) *DomainError {
	return New(ErrTypeStorageFailure, message, err)
}

// As 在错误链中查找 DomainError。
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// TypeOf 返回错误链中第一个 DomainError 的类型；不存在时返回空字符串。
func TypeOf(err error) ErrorType {
	if de, ok := As(err); ok {
		return de.Type
	}
	return ""
}
