// Package usercheck compares a username reported by an external probe
// (for example a page scraped by a browser driver) with the account the
// process runs as.
package usercheck

import "strings"

// Probe reports a username, or ok=false when none could be read.
type Probe interface {
	Username() (name string, ok bool)
}

// ProbeFunc adapts a function to Probe.
type ProbeFunc func() (string, bool)

// Username implements Probe.
func (f ProbeFunc) Username() (string, bool) { return f() }

// Static is a Probe returning a fixed name. The empty string means none.
type Static string

// Username implements Probe.
func (s Static) Username() (string, bool) {
	if s == "" {
		return "", false
	}
	return string(s), true
}

// AccountName returns the last `\`-separated segment of a qualified account
// such as `MACHINE\user`.
func AccountName(account string) string {
	if i := strings.LastIndex(account, `\`); i >= 0 {
		return account[i+1:]
	}
	return account
}

// Check probes once and calls onMismatch exactly once when the probe has no
// name or the name differs from the account's user name. The comparison is
// case-sensitive. It returns the probed name ("" when none).
func Check(p Probe, account string, onMismatch func(probed, expected string)) string {
	probed, ok := p.Username()
	probed = strings.TrimSpace(probed)
	expected := AccountName(account)
	if (!ok || probed != expected) && onMismatch != nil {
		onMismatch(probed, expected)
	}
	if !ok {
		return ""
	}
	return probed
}
