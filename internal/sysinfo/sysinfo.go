// Package sysinfo resolves the ambient identity of the running process. The
// result is passed explicitly to the packages that need it.
package sysinfo

import (
	"fmt"
	"os"
	"os/user"
	"strings"
)

// Identity is the machine and account the process runs as.
type Identity struct {
	// MachineName is the NetBIOS or host name of the local machine.
	MachineName string

	// Account is the qualified account name, e.g. `MACHINE\user` on Windows.
	Account string
}

// Current returns the identity of the running process.
func Current() (Identity, error) {
	machine, err := machineName()
	if err != nil {
		return Identity{}, fmt.Errorf("resolve machine name: %w", err)
	}
	u, err := user.Current()
	if err != nil {
		return Identity{}, fmt.Errorf("resolve current account: %w", err)
	}
	return Identity{MachineName: machine, Account: qualify(machine, u.Username)}, nil
}

// qualify prefixes name with machine unless it already carries a domain.
func qualify(machine, name string) string {
	if strings.Contains(name, `\`) {
		return name
	}
	return machine + `\` + name
}

func hostname() (string, error) {
	h, err := os.Hostname()
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(h, '.'); i > 0 {
		h = h[:i]
	}
	return h, nil
}
