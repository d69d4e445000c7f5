// Package apperr holds the transport-agnostic error kinds raised by the
// service layer. The HTTP edge maps them to status codes in pkg/resp.
package apperr

import "errors"

type Kind int

const (
	KindUnauthorized Kind = iota + 1
	KindForbidden
	KindNotFound
	KindBadRequest
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Msg: msg} }
func BadRequest(msg string) *Error   { return &Error{Kind: KindBadRequest, Msg: msg} }

// NotFound names the missing entity, e.g. NotFound("order") -> "order not found".
func NotFound(entity string) *Error { return &Error{Kind: KindNotFound, Msg: entity + " not found"} }

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
