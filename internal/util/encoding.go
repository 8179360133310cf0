package util

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts raw file bytes to a string using the declared encoding.
// Profile exports arrive as either UTF-8 or legacy single-byte encodings;
// decoding with the wrong one silently corrupts non-ASCII names, so the
// declared encoding is honored rather than sniffed.
func DecodeText(raw []byte, encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return string(bytes.TrimPrefix(raw, utf8BOM)), nil
	case "windows-1252", "cp1252":
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	case "latin-1", "iso-8859-1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s", encoding)
	}
}
