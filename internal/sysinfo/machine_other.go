//go:build !windows

package sysinfo

import "strings"

func machineName() (string, error) {
	h, err := hostname()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(h), nil
}
