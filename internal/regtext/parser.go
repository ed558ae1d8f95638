package regtext

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/startupkit/pkg/types"
)

// Document is the result of parsing a .reg file against one key.
type Document struct {
	// Edits are the value writes and deletions found in matching sections,
	// in file order.
	Edits []types.Edit

	// Skipped lists values in matching sections that are not strings
	// (dword, binary, multi-string) and were left out of Edits.
	Skipped []string

	// IgnoredSections counts sections for other keys.
	IgnoredSections int
}

// Parse reads a .reg file and returns the edits for keyPath. A section
// matches when its path, without the HKLM/HKCU root and without a
// WOW6432Node segment, equals keyPath (case-insensitive).
func Parse(data []byte, keyPath string) (*Document, error) {
	text, err := decodeInput(data)
	if err != nil {
		return nil, fmt.Errorf("regtext: decode: %w", err)
	}

	doc := &Document{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	seenHeader := false
	inSection := false
	pending := ""

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if pending != "" {
			line = pending + strings.TrimSpace(line)
			pending = ""
		}
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, CommentPrefix) {
			continue
		}
		if !seenHeader {
			if trim != RegFileHeader && trim != RegFileHeaderV4 {
				return nil, errors.New("regtext: missing header")
			}
			seenHeader = true
			continue
		}
		if strings.HasPrefix(trim, KeyOpenBracket) {
			if !strings.HasSuffix(trim, KeyCloseBracket) {
				return nil, fmt.Errorf("regtext: malformed section %q", trim)
			}
			section := strings.TrimSuffix(strings.TrimPrefix(trim, KeyOpenBracket), KeyCloseBracket)
			if strings.HasPrefix(section, DeleteKeyPrefix) {
				// whole-key deletion is not an entry edit
				inSection = false
				doc.IgnoredSections++
				continue
			}
			inSection = sectionMatches(section, keyPath)
			if !inSection {
				doc.IgnoredSections++
			}
			continue
		}
		// hex data continues on the next line after a trailing backslash
		if strings.HasSuffix(trim, Backslash) && !strings.HasSuffix(trim, Quote) {
			pending = strings.TrimSuffix(trim, Backslash)
			continue
		}
		if !inSection {
			continue
		}
		if err := parseValueLine(doc, trim); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !seenHeader {
		return nil, errors.New("regtext: missing header")
	}
	return doc, nil
}

func parseValueLine(doc *Document, line string) error {
	if strings.HasPrefix(line, DefaultValuePrefix) {
		doc.Skipped = append(doc.Skipped, "@")
		return nil
	}
	if !strings.HasPrefix(line, Quote) {
		return fmt.Errorf("regtext: malformed value line %q", line)
	}
	end := findClosingQuote(line)
	if end < 0 {
		return fmt.Errorf("regtext: unterminated value name in %q", line)
	}
	name := unescapeRegString(line[1:end])
	rest := line[end+1:]
	if !strings.HasPrefix(rest, ValueAssignment) {
		return fmt.Errorf("regtext: missing '=' in %q", line)
	}
	payload := strings.TrimSpace(rest[len(ValueAssignment):])

	switch {
	case payload == DeleteValueToken:
		doc.Edits = append(doc.Edits, types.Edit{Name: name, Delete: true})
	case strings.HasPrefix(payload, Quote):
		if len(payload) < 2 || !strings.HasSuffix(payload, Quote) {
			return fmt.Errorf("regtext: unterminated string %q", payload)
		}
		value := unescapeRegString(payload[1 : len(payload)-1])
		doc.Edits = append(doc.Edits, types.Edit{Name: name, Value: value})
	case strings.HasPrefix(strings.ToLower(payload), HexExpandSZPrefix):
		data, err := parseHexBytes(payload)
		if err != nil {
			return fmt.Errorf("regtext: value %q: %w", name, err)
		}
		value, err := decodeUTF16LEZeroTerminated(data)
		if err != nil {
			return fmt.Errorf("regtext: value %q: %w", name, err)
		}
		doc.Edits = append(doc.Edits, types.Edit{Name: name, Value: value})
	case strings.HasPrefix(payload, DWORDPrefix), strings.HasPrefix(strings.ToLower(payload), HexPrefix):
		doc.Skipped = append(doc.Skipped, name)
	default:
		return fmt.Errorf("regtext: unsupported value %q", payload)
	}
	return nil
}

// sectionMatches compares a section path with keyPath, ignoring the root
// and the WOW6432Node redirection segment.
func sectionMatches(section, keyPath string) bool {
	path := stripRoot(section)
	parts := strings.Split(path, Backslash)
	kept := parts[:0]
	for _, p := range parts {
		if strings.EqualFold(p, WOW6432Node) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.EqualFold(strings.Join(kept, Backslash), strings.Trim(keyPath, Backslash))
}

func stripRoot(path string) string {
	for _, root := range []string{HKEYLocalMachine, HKEYLocalMachineShort, HKEYCurrentUser, HKEYCurrentUserShort} {
		prefix := root + Backslash
		if len(path) > len(prefix) && strings.EqualFold(path[:len(prefix)], prefix) {
			return path[len(prefix):]
		}
	}
	return path
}
