// Package types holds the enums and typed errors shared by the startup entry
// packages.
//
// Errors carry a stable ErrKind so callers can branch on intent:
//
//	if errors.Is(err, types.ErrAccess) {
//	    // remote registry service is not running on the target host
//	}
//
// This package has no dependencies beyond the standard library.
package types
