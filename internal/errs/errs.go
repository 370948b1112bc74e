package errs

import "errors"

// Kind 调用方可见的错误分类，边界层据此映射 HTTP 状态码
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindAlreadyExists
	KindInvalidInput
	KindConflict
	KindInsufficientBalance
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Unauthenticated(msg string) *Error      { return New(KindUnauthenticated, msg) }
func Unauthorized(msg string) *Error         { return New(KindUnauthorized, msg) }
func NotFound(msg string) *Error             { return New(KindNotFound, msg) }
func AlreadyExists(msg string) *Error        { return New(KindAlreadyExists, msg) }
func InvalidInput(msg string) *Error         { return New(KindInvalidInput, msg) }
func Conflict(msg string) *Error             { return New(KindConflict, msg) }
func InsufficientBalance(msg string) *Error  { return New(KindInsufficientBalance, msg) }

// KindOf 提取错误分类；非本包错误返回 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
