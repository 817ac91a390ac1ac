package tabular

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte order marks recognized on delimited-text input.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts raw file bytes to a UTF-8 string, stripping any byte
// order mark. Excel habitually exports CSV as UTF-16 or Windows-1252, so
// both are handled: UTF-16 is detected by BOM, and input that is not valid
// UTF-8 falls back to a Windows-1252 decode.
func DecodeText(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[3:]), nil

	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), data[2:])

	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), data[2:])

	case utf8.Valid(data):
		return string(data), nil

	default:
		return decodeWith(charmap.Windows1252.NewDecoder(), data)
	}
}

func decodeWith(dec transform.Transformer, data []byte) (string, error) {
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode input text: %w", err)
	}
	return string(out), nil
}
