package skiplist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// EntrySource supplies externally managed skip names.
type EntrySource interface {
	Entries() ([]string, error)
}

// Static is an EntrySource over a fixed list.
type Static []string

// Entries implements EntrySource.
func (s Static) Entries() ([]string, error) { return []string(s), nil }

// FileSource reads one name per line from a text file. Blank lines and lines
// starting with '#' are ignored. The file is read on every call.
type FileSource struct {
	Path string

	// Optional makes a missing file yield no entries instead of an error.
	Optional bool
}

// Entries implements EntrySource.
func (f FileSource) Entries() ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		if f.Optional && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open skip file %s: %w", f.Path, err)
	}
	defer file.Close()

	names, err := ParseLines(file)
	if err != nil {
		return nil, fmt.Errorf("read skip file %s: %w", f.Path, err)
	}
	return names, nil
}

// ParseLines reads names from r using the FileSource format.
func ParseLines(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
