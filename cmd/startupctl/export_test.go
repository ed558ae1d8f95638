package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/startupkit/internal/regtext"
	"github.com/joshuapare/startupkit/internal/regview"
	"github.com/joshuapare/startupkit/pkg/types"
)

func TestExportCommand_Args(t *testing.T) {
	useMemory(t)

	exportStdout = true
	err := runExport([]string{"out.reg"})
	assert.Error(t, err, "file and --stdout together")

	exportStdout = false
	err = runExport(nil)
	assert.Error(t, err, "neither file nor --stdout")

	exportStdout = true
	exportEncoding = "latin1"
	err = runExport(nil)
	assert.Error(t, err)
}

func TestExportCommand_Stdout(t *testing.T) {
	mem := useMemory(t)
	seedRunKey(mem)
	exportStdout = true
	exportEncoding = "utf8"
	exportBOM = false
	skipFlag = "default"

	output, err := captureOutput(t, func() error { return runExport(nil) })
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, regtext.RegFileHeader+"\r\n"))
	assertContains(t, output, []string{
		`[HKEY_LOCAL_MACHINE\` + runKey + `]`,
		`"Agent"="a32.exe"`,
		`"Updater"="u.exe"`,
	})
	assertNotContains(t, output, []string{"igfxtray", "a64.exe"})
}

func TestExportImport_RoundTrip(t *testing.T) {
	mem := useMemory(t)
	seedRunKey(mem)
	mem.PutValue("", types.StoreMachine, types.View32, runKey, "Expand",
		regview.Value{Data: `%SystemRoot%\system32\expand.exe /q`, Type: types.REG_EXPAND_SZ})
	out := filepath.Join(t.TempDir(), "startup.reg")

	output, err := captureOutput(t, func() error { return runExport([]string{out}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 4 entries to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, regtext.UTF16LEBOM))

	// import into a fresh registry
	restored := useMemory(t)
	output, err = captureOutput(t, func() error { return runImport(nil, []string{out}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Applied 4 edits on "+testMachine)

	want := map[string]string{
		"igfxtray": "igfx.exe",
		"Agent":    "a32.exe",
		"Updater":  "u.exe",
		"Expand":   `%SystemRoot%\system32\expand.exe /q`,
	}
	for name, command := range want {
		got, ok := restored.Lookup("", types.StoreMachine, types.View32, runKey, name)
		assert.True(t, ok, name)
		assert.Equal(t, command, got, name)
	}
}

func writeReg(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.reg")
	content := strings.Join(append([]string{regtext.RegFileHeader, ""}, lines...), "\r\n") + "\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCommand_DryRun(t *testing.T) {
	mem := useMemory(t)
	mem.Put("", types.StoreMachine, types.View32, runKey, "Old", "old.exe")
	path := writeReg(t,
		`[HKEY_LOCAL_MACHINE\`+runKey+`]`,
		`"Agent"="a.exe"`,
		`"Old"=-`,
		`"Counter"=dword:00000001`,
	)
	importDryRun = true

	output, err := captureOutput(t, func() error { return runImport(nil, []string{path}) })
	require.NoError(t, err)
	assertContains(t, output, []string{
		`Warning: non-string value "Counter" skipped`,
		"set    Agent = a.exe",
		"remove Old",
	})

	_, ok := mem.Lookup("", types.StoreMachine, types.View32, runKey, "Agent")
	assert.False(t, ok)
	_, ok = mem.Lookup("", types.StoreMachine, types.View32, runKey, "Old")
	assert.True(t, ok)
}

func TestImportCommand_AppliesDeletes(t *testing.T) {
	mem := useMemory(t)
	mem.Put("", types.StoreMachine, types.View64, runKey, "Old", "old.exe")
	path := writeReg(t,
		`[HKEY_LOCAL_MACHINE\SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Run]`,
		`"Old"=-`,
		`"New"="new.exe"`,
	)
	jsonOut = true

	output, err := captureOutput(t, func() error { return runImport(nil, []string{path}) })
	require.NoError(t, err)
	assertJSON(t, output)
	assert.Contains(t, output, `"applied": 2`)

	_, ok := mem.Lookup("", types.StoreMachine, types.View64, runKey, "Old")
	assert.False(t, ok)
	got, ok := mem.Lookup("", types.StoreMachine, types.View32, runKey, "New")
	assert.True(t, ok)
	assert.Equal(t, "new.exe", got)
}

func TestImportCommand_MultipleFiles(t *testing.T) {
	mem := useMemory(t)
	mem.Put("", types.StoreMachine, types.View32, runKey, "Keep", "keep.exe")
	section := `[HKEY_LOCAL_MACHINE\` + runKey + `]`
	base := writeReg(t, section, `"Agent"="old.exe"`, `"Keep"="changed.exe"`)
	patch := writeReg(t, section, `"agent"="new.exe"`, `"Keep"=-`)

	output, err := captureOutput(t, func() error { return runImport(nil, []string{base, patch}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Applied 2 edits")

	got, ok := mem.Lookup("", types.StoreMachine, types.View32, runKey, "Agent")
	assert.True(t, ok)
	assert.Equal(t, "new.exe", got)
	_, ok = mem.Lookup("", types.StoreMachine, types.View32, runKey, "Keep")
	assert.False(t, ok)
}

func TestImportCommand_Errors(t *testing.T) {
	mem := useMemory(t)

	err := runImport(nil, []string{filepath.Join(t.TempDir(), "absent.reg")})
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.reg")
	require.NoError(t, os.WriteFile(bad, []byte("not a reg file\r\n"), 0o644))
	err = runImport(nil, []string{bad})
	assert.Error(t, err)

	mem.Deny("", types.StoreMachine)
	path := writeReg(t, `[HKEY_LOCAL_MACHINE\`+runKey+`]`, `"Agent"="a.exe"`)
	_, err = captureOutput(t, func() error { return runImport(nil, []string{path}) })
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrPermission)
	assert.Contains(t, err.Error(), "applied 0 of 1 edits")
}
