package regtext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/startupkit/pkg/types"
)

// ExportOptions controls .reg export.
type ExportOptions struct {
	// Section is the full key path written in the section header, e.g.
	// HKEY_LOCAL_MACHINE\SOFTWARE\Microsoft\Windows\CurrentVersion\Run.
	Section string

	// Encoding is "UTF-16LE" (default, what regedit writes) or "UTF-8".
	Encoding string

	// WithBOM prefixes the output with a byte-order mark.
	WithBOM bool
}

// Export renders entries as a version 5 .reg file with a single section.
// Entries are sorted case-insensitively by name. REG_EXPAND_SZ entries are
// written as hex(2) so the type survives a round trip.
func Export(entries []types.Entry, opts ExportOptions) ([]byte, error) {
	if opts.Section == "" {
		return nil, fmt.Errorf("regtext: export needs a section path")
	}

	sorted := make([]types.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	var b strings.Builder
	b.WriteString(RegFileHeader + CRLF + CRLF)
	b.WriteString(KeyOpenBracket + opts.Section + KeyCloseBracket + CRLF)
	for _, e := range sorted {
		emitValue(&b, e)
	}
	b.WriteString(CRLF)

	return encodeOutput(b.String(), opts.Encoding, opts.WithBOM)
}

func emitValue(b *strings.Builder, e types.Entry) {
	var prefix string
	if e.Name == "" {
		prefix = DefaultValuePrefix
	} else {
		prefix = Quote + escapeString(e.Name) + Quote + ValueAssignment
	}
	b.WriteString(prefix)

	if e.Type == types.REG_EXPAND_SZ {
		writeWrappedHex(b, HexExpandSZPrefix, encodeUTF16LEZeroTerminated(e.Command), len(prefix))
	} else {
		b.WriteString(Quote + escapeString(e.Command) + Quote)
	}
	b.WriteString(CRLF)
}

// writeWrappedHex writes hex bytes with "\" continuations, keeping lines
// near 80 columns like regedit.
func writeWrappedHex(b *strings.Builder, typePrefix string, data []byte, col int) {
	b.WriteString(typePrefix)
	col += len(typePrefix)
	for i, c := range data {
		s := fmt.Sprintf(HexByteFormat, c)
		if i < len(data)-1 {
			s += HexByteSeparator
		}
		if col+len(s) > 77 && i > 0 {
			b.WriteString(Backslash + CRLF + "  ")
			col = 2
		}
		b.WriteString(s)
		col += len(s)
	}
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}
