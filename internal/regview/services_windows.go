//go:build windows

package regview

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

type nativeServices struct{}

// NativeServices returns a Services backed by the Service Control Manager
// of the target host.
func NativeServices() Services { return nativeServices{} }

// EnsureRunning queries the service and sends a single start request when it
// is not running. It returns once the SCM accepts the request.
func (nativeServices) EnsureRunning(host, name string) error {
	m, err := mgr.ConnectRemote(host)
	if err != nil {
		return fmt.Errorf("connect to service manager on %s: %w", host, err)
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return fmt.Errorf("open service %s on %s: %w", name, host, err)
	}
	defer s.Close()

	status, err := s.Query()
	if err != nil {
		return fmt.Errorf("query service %s on %s: %w", name, host, err)
	}
	if status.State == svc.Running {
		return nil
	}

	if err := s.Start(); err != nil {
		if errors.Is(err, windows.ERROR_SERVICE_ALREADY_RUNNING) {
			return nil
		}
		return fmt.Errorf("start service %s on %s: %w", name, host, err)
	}
	return nil
}
