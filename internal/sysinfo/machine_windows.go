//go:build windows

package sysinfo

import "golang.org/x/sys/windows"

// machineName returns the NetBIOS computer name, which is what remote
// registry and service manager calls expect.
func machineName() (string, error) {
	var buf [windows.MAX_COMPUTERNAME_LENGTH + 1]uint16
	n := uint32(len(buf))
	if err := windows.GetComputerName(&buf[0], &n); err != nil {
		return hostname()
	}
	return windows.UTF16ToString(buf[:n]), nil
}
