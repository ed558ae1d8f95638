package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound         ErrKind = iota // missing key/value/path in one view
	ErrKindAccess                          // remote registry service unreachable or stopped
	ErrKindPermission                      // caller lacks rights on the store
	ErrKindArgumentMismatch                // delete hit the wrong view and the fallback failed too
	ErrKindArgument                        // invalid caller input (empty name, unknown enum)
	ErrKindUnsupported                     // operation not available on this platform
)

// String returns the kind name used in logs and JSON output.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not_found"
	case ErrKindAccess:
		return "access"
	case ErrKindPermission:
		return "permission"
	case ErrKindArgumentMismatch:
		return "argument_mismatch"
	case ErrKindArgument:
		return "argument"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind_%d", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so detailed
// errors still match the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrAccess indicates the remote registry could not be reached.
	ErrAccess = &Error{Kind: ErrKindAccess, Msg: "remote registry unavailable"}
	// ErrPermission indicates access to the store was denied.
	ErrPermission = &Error{Kind: ErrKindPermission, Msg: "permission denied"}
	// ErrArgumentMismatch indicates a value could not be removed from either view.
	ErrArgumentMismatch = &Error{Kind: ErrKindArgumentMismatch, Msg: "value not removable in requested view"}
	// ErrArgument indicates invalid input.
	ErrArgument = &Error{Kind: ErrKindArgument, Msg: "invalid argument"}
	// ErrUnsupported indicates the platform cannot serve the request.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported on this platform"}
)

// NewAccessError builds the error returned when the remote registry service
// on host is not running and was not (or could not be) started.
func NewAccessError(host, service string, cause error) *Error {
	return &Error{
		Kind: ErrKindAccess,
		Msg:  fmt.Sprintf("on <%s>, <%s> service is not running", host, service),
		Err:  cause,
	}
}

// NewPermissionError wraps an access-denied failure for path.
func NewPermissionError(host, path string, cause error) *Error {
	return &Error{
		Kind: ErrKindPermission,
		Msg:  fmt.Sprintf("access denied to %s on <%s>", path, host),
		Err:  cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Value types
// -----------------------------------------------------------------------------

// RegType enumerates Windows registry value types commonly encountered.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_DWORD_BE  RegType = 5
	REG_LINK      RegType = 6
	REG_MULTI_SZ  RegType = 7
	REG_QWORD     RegType = 11
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}
