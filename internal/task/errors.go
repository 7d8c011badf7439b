package task

import (
	"errors"
	"fmt"
)

// Op names a store operation.
type Op string

const (
	OpCreate    Op = "create"
	OpDeleteOne Op = "delete"
	OpDeleteAll Op = "delete_all"
	OpLoad      Op = "load"
)

// Kind classifies a failed store operation.
type Kind int

const (
	KindUnknown Kind = iota
	KindCreateFailed
	KindDeleteOneFailed
	KindDeleteAllFailed
	KindLoadFailed
	KindNetworkUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindCreateFailed:
		return "create_failed"
	case KindDeleteOneFailed:
		return "delete_one_failed"
	case KindDeleteAllFailed:
		return "delete_all_failed"
	case KindLoadFailed:
		return "load_failed"
	case KindNetworkUnavailable:
		return "network_unavailable"
	default:
		return "unknown"
	}
}

// Error is returned by Store implementations for every failed call.
type Error struct {
	Op   Op
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Rejected wraps err as a store rejection of op.
func Rejected(op Op, err error) *Error {
	return &Error{Op: op, Kind: rejectedKind(op), Err: err}
}

// Unavailable wraps err as a transport failure during op.
func Unavailable(op Op, err error) *Error {
	return &Error{Op: op, Kind: KindNetworkUnavailable, Err: err}
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

func rejectedKind(op Op) Kind {
	switch op {
	case OpCreate:
		return KindCreateFailed
	case OpDeleteOne:
		return KindDeleteOneFailed
	case OpDeleteAll:
		return KindDeleteAllFailed
	case OpLoad:
		return KindLoadFailed
	default:
		return KindUnknown
	}
}
