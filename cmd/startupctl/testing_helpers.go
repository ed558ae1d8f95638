package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/startupkit/internal/regview"
	"github.com/joshuapare/startupkit/internal/sysinfo"
)

const (
	testMachine = "WS01"
	testAccount = `WS01\alice`
	runKey      = `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`
)

// useMemory points the commands at an in-memory registry, resets every flag
// and restores the real backend when the test ends.
func useMemory(t *testing.T) *regview.Memory {
	t.Helper()

	mem := regview.NewMemory(testMachine)
	origBackend, origServices, origIdentity := backend, services, identity
	backend, services = mem, mem
	identity = func() (sysinfo.Identity, error) {
		return sysinfo.Identity{MachineName: testMachine, Account: testAccount}, nil
	}
	t.Setenv("STARTUPCTL_CONFIG", "")
	resetFlags()

	t.Cleanup(func() {
		backend, services, identity = origBackend, origServices, origIdentity
		resetFlags()
	})
	return mem
}

func resetFlags() {
	verbose, quiet, jsonOut, noColor, logOn = false, false, false, true, false
	hostFlag, storeFlag, skipFlag, skipFile, configPath = "", "", "", "", ""
	startService = false
	listView, listShowView = "", false
	getShowType = false
	exportEncoding, exportBOM, exportStdout = "utf16le", true, false
	importDryRun = false
	verifyObserved = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
