package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/startupkit/internal/regview"
	"github.com/joshuapare/startupkit/pkg/types"
)

func seedRunKey(mem *regview.Memory) {
	mem.Put("", types.StoreMachine, types.View32, runKey, "igfxtray", "igfx.exe")
	mem.Put("", types.StoreMachine, types.View32, runKey, "Agent", "a32.exe")
	mem.Put("", types.StoreMachine, types.View64, runKey, "AGENT", "a64.exe")
	mem.Put("", types.StoreMachine, types.View64, runKey, "Updater", "u.exe")
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name           string
		skip           string
		view           string
		showView       bool
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "merged without skip",
			wantContain:    []string{"igfxtray", "Agent", "a32.exe", "Updater", "u.exe"},
			wantNotContain: []string{"a64.exe"},
		},
		{
			name:           "default skip list",
			skip:           "default",
			wantContain:    []string{"Agent", "Updater"},
			wantNotContain: []string{"igfxtray"},
		},
		{
			name:        "show view",
			showView:    true,
			wantContain: []string{"a32.exe  (32-bit)", "u.exe  (64-bit)"},
		},
		{
			name:           "single 64-bit view",
			view:           "64",
			wantContain:    []string{"AGENT", "a64.exe", "u.exe"},
			wantNotContain: []string{"igfx.exe", "a32.exe"},
		},
		{
			name:        "json",
			json:        true,
			wantContain: []string{`"name": "Agent"`, `"command": "a32.exe"`},
		},
		{
			name:    "bad view",
			view:    "16",
			wantErr: true,
		},
		{
			name:    "file skip without file",
			skip:    "file",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := useMemory(t)
			seedRunKey(mem)
			skipFlag = tt.skip
			listView = tt.view
			listShowView = tt.showView
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runList(nil)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runList() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}

			if tt.json && !tt.wantErr {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestListCommand_Empty(t *testing.T) {
	useMemory(t)

	output, err := captureOutput(t, func() error { return runList(nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "No startup entries on "+testMachine)

	jsonOut = true
	output, err = captureOutput(t, func() error { return runList(nil) })
	require.NoError(t, err)
	assert.Equal(t, "[]\n", output)
}

func TestListCommand_UserStore(t *testing.T) {
	mem := useMemory(t)
	seedRunKey(mem)
	mem.Put("", types.StoreUser, types.View32, runKey, "OneDrive", "onedrive.exe /background")
	storeFlag = "user"

	output, err := captureOutput(t, func() error { return runList(nil) })
	require.NoError(t, err)
	assertContains(t, output, []string{"OneDrive"})
	assertNotContains(t, output, []string{"Agent"})
}

func TestListCommand_RemoteServiceStopped(t *testing.T) {
	mem := useMemory(t)
	mem.AddHost("WS042", regview.ServiceStopped)
	mem.Put("WS042", types.StoreMachine, types.View32, runKey, "Remote", "r.exe")
	hostFlag = "WS042"

	_, err := captureOutput(t, func() error { return runList(nil) })
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrAccess)
	assert.Contains(t, err.Error(), "WS042")
	assert.Contains(t, err.Error(), "Remote Registry")
	assert.Equal(t, 0, mem.Starts("WS042"))
	assert.Equal(t, 4, exitCode(err))
}

func TestListCommand_RemoteStartService(t *testing.T) {
	mem := useMemory(t)
	mem.AddHost("WS042", regview.ServiceStopped)
	mem.Put("WS042", types.StoreMachine, types.View32, runKey, "Remote", "r.exe")
	hostFlag = "WS042"
	startService = true

	output, err := captureOutput(t, func() error { return runList(nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "r.exe")
	assert.Equal(t, 1, mem.Starts("WS042"))
}

func TestParseView(t *testing.T) {
	v, err := parseView("32")
	require.NoError(t, err)
	assert.Equal(t, types.View32, v)

	v, err = parseView("64-bit")
	require.NoError(t, err)
	assert.Equal(t, types.View64, v)

	_, err = parseView("x")
	assert.ErrorIs(t, err, types.ErrArgument)
}
