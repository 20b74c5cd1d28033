package response

import (
	"errors"
	"net/http"
)

// Kind 业务错误分类
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindValidation
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage_failure"
	}
	return "unknown"
}

type BizError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *BizError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Err
}

// HTTPStatus 错误分类到 HTTP 状态码
func (e *BizError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func NewError(kind Kind, msg string) *BizError {
	return &BizError{
		Kind: kind,
		Msg:  msg,
	}
}

func NotFound(msg string) *BizError {
	return NewError(KindNotFound, msg)
}

func Conflict(msg string) *BizError {
	return NewError(KindConflict, msg)
}

func Validation(msg string) *BizError {
	return NewError(KindValidation, msg)
}

// Storage 存储层失败，保留原始错误
func Storage(err error) *BizError {
	return &BizError{Kind: KindStorage, Msg: "storage failure", Err: err}
}

// KindOf 非 BizError 一律视为存储失败
func KindOf(err error) Kind {
	var be *BizError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindStorage
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var be *BizError
	return errors.As(err, &be) && be.Kind == kind
}
