package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "startup.reg")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer"), 0o644))

	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteReg([]byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file removed")
}

func TestFileWriter_MissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "absent", "startup.reg")}
	assert.Error(t, w.WriteReg([]byte("x")))
}

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &StreamWriter{W: &buf}
	require.NoError(t, w.WriteReg([]byte("REGEDIT")))
	assert.Equal(t, "REGEDIT", buf.String())
}
