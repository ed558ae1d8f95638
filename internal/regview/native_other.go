//go:build !windows

package regview

import (
	"fmt"
	"runtime"

	"github.com/joshuapare/startupkit/pkg/types"
)

// unsupported is the native backend on platforms without a registry. Every
// call fails with types.ErrUnsupported.
type unsupported struct{}

// Native returns the backend for the live registry. On this platform it
// always fails.
func Native() Backend { return unsupported{} }

// NativeServices returns the service activator. On this platform it
// always fails.
func NativeServices() Services { return unsupported{} }

func (unsupported) err() error {
	return fmt.Errorf("%w: windows registry on %s", types.ErrUnsupported, runtime.GOOS)
}

func (u unsupported) OpenKey(Request) (Key, error)   { return nil, u.err() }
func (u unsupported) CreateKey(Request) (Key, error) { return nil, u.err() }
func (u unsupported) EnsureRunning(string, string) error {
	return u.err()
}
