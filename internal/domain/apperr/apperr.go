// Package apperr defines the business-error taxonomy shared by every usecase.
// All business-rule failures are detected before mutation and surfaced as one
// of these kinds; the HTTP adapter maps each kind to a status code.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindPermission
	KindConflict
	KindInvalidState
	KindInsufficientFunds
	KindBlocked
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPermission:
		return "permission"
	case KindConflict:
		return "conflict"
	case KindInvalidState:
		return "invalid_state"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

func Permissionf(format string, args ...any) *Error {
	return newf(KindPermission, format, args...)
}

func Conflictf(format string, args ...any) *Error {
	return newf(KindConflict, format, args...)
}

func InvalidStatef(format string, args ...any) *Error {
	return newf(KindInvalidState, format, args...)
}

func InsufficientFundsf(format string, args ...any) *Error {
	return newf(KindInsufficientFunds, format, args...)
}

func Blockedf(format string, args ...any) *Error {
	return newf(KindBlocked, format, args...)
}

// KindOf reports the kind of err, or 0 when err is not a business error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err is a business error of kind k.
func Is(err error, k Kind) bool { return KindOf(err) == k }
