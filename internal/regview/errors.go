package regview

import (
	"errors"

	"github.com/joshuapare/startupkit/pkg/types"
)

// Backend-level errors. The Accessor translates these into the typed
// errors of pkg/types, adding host, store and service context.
var (
	// ErrKeyNotFound indicates the requested sub-key does not exist in the view.
	ErrKeyNotFound = &types.Error{Kind: types.ErrKindNotFound, Msg: "regview: key not found"}

	// ErrValueNotFound indicates the requested value does not exist in the key.
	ErrValueNotFound = &types.Error{Kind: types.ErrKindNotFound, Msg: "regview: value not found"}

	// ErrServiceUnavailable indicates the remote registry service did not answer.
	ErrServiceUnavailable = errors.New("regview: remote registry service unavailable")

	// ErrAccessDenied indicates the OS refused the requested rights.
	ErrAccessDenied = errors.New("regview: access denied")

	// ErrClosed indicates use of a handle after Close.
	ErrClosed = errors.New("regview: handle closed")
)
