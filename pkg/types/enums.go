package types

import (
	"fmt"
	"strings"
)

// Store selects which root of the configuration store is opened.
type Store int

const (
	StoreMachine Store = iota // HKEY_LOCAL_MACHINE
	StoreUser                 // HKEY_CURRENT_USER
)

// String returns the full root key name.
func (s Store) String() string {
	switch s {
	case StoreMachine:
		return "HKEY_LOCAL_MACHINE"
	case StoreUser:
		return "HKEY_CURRENT_USER"
	default:
		return fmt.Sprintf("Store(%d)", int(s))
	}
}

// ParseStore accepts "machine", "user", and the long and short root key names.
func ParseStore(s string) (Store, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "MACHINE", "HKLM", "HKEY_LOCAL_MACHINE":
		return StoreMachine, nil
	case "USER", "HKCU", "HKEY_CURRENT_USER":
		return StoreUser, nil
	}
	return 0, &Error{Kind: ErrKindArgument, Msg: fmt.Sprintf("unknown store %q", s)}
}

// View selects the redirected registry view on 64-bit hosts.
type View int

const (
	View32 View = iota // KEY_WOW64_32KEY
	View64             // KEY_WOW64_64KEY
)

// DefaultView is the view used for writes and the first delete attempt.
const DefaultView = View32

func (v View) String() string {
	switch v {
	case View32:
		return "32-bit"
	case View64:
		return "64-bit"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Other returns the alternate view.
func (v View) Other() View {
	if v == View32 {
		return View64
	}
	return View32
}

// SkipSource controls which exclusion lists apply to a read.
type SkipSource int

const (
	SkipNone            SkipSource = iota // no exclusions
	SkipDefault                           // built-in list only
	SkipFile                              // externally supplied list only
	SkipDefaultWithFile                   // union of both
)

func (s SkipSource) String() string {
	switch s {
	case SkipNone:
		return "none"
	case SkipDefault:
		return "default"
	case SkipFile:
		return "file"
	case SkipDefaultWithFile:
		return "default+file"
	default:
		return fmt.Sprintf("SkipSource(%d)", int(s))
	}
}

// NeedsFile reports whether the source reads the external list.
func (s SkipSource) NeedsFile() bool {
	return s == SkipFile || s == SkipDefaultWithFile
}

// ParseSkipSource parses the names returned by SkipSource.String.
func ParseSkipSource(s string) (SkipSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SkipNone, nil
	case "default":
		return SkipDefault, nil
	case "file":
		return SkipFile, nil
	case "default+file", "default-with-file", "all":
		return SkipDefaultWithFile, nil
	}
	return 0, &Error{Kind: ErrKindArgument, Msg: fmt.Sprintf("unknown skip source %q", s)}
}
