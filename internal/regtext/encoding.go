package regtext

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	errUnsupportedEncoding = errors.New("regtext: unsupported encoding")
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeInput converts a .reg file to UTF-8 text. A UTF-16LE BOM selects
// UTF-16, a UTF-8 BOM is stripped, and REGEDIT4 files are Windows-1252.
func decodeInput(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, UTF16LEBOM):
		out, err := utf16le.NewDecoder().Bytes(data[len(UTF16LEBOM):])
		if err != nil {
			return "", err
		}
		return string(out), nil
	case bytes.HasPrefix(data, UTF8BOM):
		return string(data[len(UTF8BOM):]), nil
	case bytes.HasPrefix(data, []byte(RegFileHeaderV4)):
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return string(data), nil
}

// encodeOutput converts UTF-8 text to the requested output encoding.
func encodeOutput(text, enc string, withBOM bool) ([]byte, error) {
	switch strings.ToUpper(enc) {
	case "", EncodingUTF16LE:
		out, err := utf16le.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, err
		}
		if withBOM {
			out = append(append([]byte{}, UTF16LEBOM...), out...)
		}
		return out, nil
	case EncodingUTF8:
		if withBOM {
			return append(append([]byte{}, UTF8BOM...), text...), nil
		}
		return []byte(text), nil
	default:
		return nil, errUnsupportedEncoding
	}
}

// encodeUTF16LEZeroTerminated encodes s the way REG_EXPAND_SZ data is stored.
func encodeUTF16LEZeroTerminated(s string) []byte {
	out, _ := utf16le.NewEncoder().Bytes([]byte(s + "\x00"))
	return out
}

// decodeUTF16LEZeroTerminated reverses encodeUTF16LEZeroTerminated.
func decodeUTF16LEZeroTerminated(data []byte) (string, error) {
	if len(data)%2 == 1 {
		data = data[:len(data)-1]
	}
	out, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\x00"), nil
}
