package sysinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	id, err := Current()
	require.NoError(t, err)
	assert.NotEmpty(t, id.MachineName)
	assert.True(t, strings.Contains(id.Account, `\`), id.Account)
}

func TestQualify(t *testing.T) {
	assert.Equal(t, `WS\asmith`, qualify("WS", "asmith"))
	assert.Equal(t, `CORP\asmith`, qualify("WS", `CORP\asmith`))
}
