package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/startupkit/internal/logger"
	"github.com/joshuapare/startupkit/pkg/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSettings_Defaults(t *testing.T) {
	useMemory(t)

	cfg, err := settings()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, "machine", cfg.Store)
	assert.Equal(t, "none", cfg.Skip)
}

func TestSettings_ConfigAndFlags(t *testing.T) {
	useMemory(t)
	configPath = writeConfig(t, "startupctl.yaml", "host: WS042\nstore: user\nskip: default\n")

	cfg, err := settings()
	require.NoError(t, err)
	assert.Equal(t, "WS042", cfg.Host)
	assert.Equal(t, "user", cfg.Store)
	assert.Equal(t, "default", cfg.Skip)

	hostFlag = "srv-02"
	storeFlag = "machine"
	startService = true
	cfg, err = settings()
	require.NoError(t, err)
	assert.Equal(t, "srv-02", cfg.Host)
	assert.Equal(t, "machine", cfg.Store)
	assert.True(t, cfg.StartService)
}

func TestSettings_EnvConfig(t *testing.T) {
	useMemory(t)
	t.Setenv("STARTUPCTL_CONFIG", writeConfig(t, "startupctl.toml", "skip = \"default\"\n"))

	cfg, err := settings()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Skip)
}

func TestSettings_InvalidFlag(t *testing.T) {
	useMemory(t)
	storeFlag = "HKCR"

	_, err := settings()
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestList_SkipFileFromConfig(t *testing.T) {
	mem := useMemory(t)
	seedRunKey(mem)
	dir := t.TempDir()
	skipPath := filepath.Join(dir, "skip.txt")
	require.NoError(t, os.WriteFile(skipPath, []byte("# hidden\nupdater\n"), 0o644))
	configPath = writeConfig(t, "startupctl.yaml", fmt.Sprintf("skip: default+file\nskip_file: %q\n", skipPath))

	output, err := captureOutput(t, func() error { return runList(nil) })
	require.NoError(t, err)
	assertContains(t, output, []string{"Agent"})
	assertNotContains(t, output, []string{"igfxtray", "Updater"})
}

func TestInitLogging(t *testing.T) {
	mem := useMemory(t)
	dir := t.TempDir()
	configPath = writeConfig(t, "startupctl.yaml", fmt.Sprintf("log:\n  dir: %q\n", dir))
	logOn = true
	t.Cleanup(logger.Close)

	require.NoError(t, initLogging())
	_, err := captureOutput(t, func() error { return runSet([]string{"Agent", "a.exe"}) })
	require.NoError(t, err)
	logger.Close()

	_, ok := mem.Lookup("", types.StoreMachine, types.View32, runKey, "Agent")
	require.True(t, ok)

	data, err := os.ReadFile(logger.FileName(dir, time.Now()))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"set"`), string(data))
	assert.Contains(t, string(data), `"name":"Agent"`)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("plain")))
	assert.Equal(t, 2, exitCode(types.ErrArgument))
	assert.Equal(t, 3, exitCode(fmt.Errorf("wrapped: %w", errUserMismatch)))
	assert.Equal(t, 4, exitCode(types.NewAccessError("WS042", "Remote Registry", nil)))
	assert.Equal(t, 5, exitCode(types.ErrNotFound))
	assert.Equal(t, 1, exitCode(types.ErrUnsupported))
}

func TestRootCommand_Registered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "get", "set", "remove", "export", "import", "verify-user", "version"} {
		assert.True(t, names[want], want)
	}
}
