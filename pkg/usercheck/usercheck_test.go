package usercheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		probe     Probe
		account   string
		wantCalls int
		wantName  string
	}{
		{name: "mismatch", probe: Static("jdoe"), account: `MACHINE\asmith`, wantCalls: 1, wantName: "jdoe"},
		{name: "match", probe: Static("asmith"), account: `MACHINE\asmith`, wantCalls: 0, wantName: "asmith"},
		{name: "probe returns none", probe: Static(""), account: `MACHINE\asmith`, wantCalls: 1, wantName: ""},
		{name: "unqualified account", probe: Static("asmith"), account: "asmith", wantCalls: 0, wantName: "asmith"},
		{name: "domain and machine", probe: Static("asmith"), account: `CORP\MACHINE\asmith`, wantCalls: 0, wantName: "asmith"},
		{name: "case differs", probe: Static("ASmith"), account: `MACHINE\asmith`, wantCalls: 1, wantName: "ASmith"},
		{
			name:      "probe func trims",
			probe:     ProbeFunc(func() (string, bool) { return " asmith ", true }),
			account:   `MACHINE\asmith`,
			wantCalls: 0,
			wantName:  "asmith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			got := Check(tt.probe, tt.account, func(probed, expected string) {
				calls++
				assert.Equal(t, AccountName(tt.account), expected)
			})
			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantName, got)
		})
	}
}

func TestCheck_NilCallback(t *testing.T) {
	assert.NotPanics(t, func() {
		Check(Static("jdoe"), `MACHINE\asmith`, nil)
	})
}

func TestAccountName(t *testing.T) {
	assert.Equal(t, "asmith", AccountName(`MACHINE\asmith`))
	assert.Equal(t, "asmith", AccountName("asmith"))
	assert.Equal(t, "", AccountName(`MACHINE\`))
}
