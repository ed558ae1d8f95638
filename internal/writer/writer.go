// Package writer exposes sinks for exported .reg documents.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives one encoded .reg document.
type Sink interface {
	WriteReg(data []byte) error
}

// FileWriter writes a document to a filesystem path atomically, so an
// interrupted export never leaves a truncated .reg file behind.
type FileWriter struct {
	Path string
}

// WriteReg writes data to the configured path via temp file + rename.
func (w *FileWriter) WriteReg(data []byte) error {
	// same directory so the rename stays on one filesystem
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".startupctl-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if chmodErr := tmpFile.Chmod(0o644); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// StreamWriter writes a document to an open stream such as stdout.
type StreamWriter struct {
	W io.Writer
}

// WriteReg writes data in full.
func (w *StreamWriter) WriteReg(data []byte) error {
	_, err := w.W.Write(data)
	return err
}
