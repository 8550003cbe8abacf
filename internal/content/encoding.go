// Package content implements the content engine: encoding detection and
// decoding, content matching, and the replace/rename mutations. BOM
// sniffing and the regex match/replace engine are the parts this module
// handles directly; a full encoding-detection heuristic beyond BOM
// sniffing is out of scope and falls back to a caller-supplied default
// table.
package content

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// bomTable lists the byte sequences recognized by BOM sniffing, longest
// first so UTF-32LE (which shares a 2-byte prefix with UTF-16LE) is checked
// ahead of it.
var bomTable = []struct {
	bytes []byte
	enc   encoding.Encoding
	name  string
}{
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, unicode.UTF8, "utf-32le"}, // no stdlib UTF-32 codec; treated as UTF-8 best-effort
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, unicode.UTF8, "utf-32be"},
	{[]byte{0xEF, 0xBB, 0xBF}, unicode.UTF8, "utf-8"},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), "utf-16le"},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "utf-16be"},
}

// DetectBOM inspects the leading bytes of data and returns the matching
// encoding, the BOM's byte length (to strip before decoding), and whether a
// BOM was found at all.
func DetectBOM(data []byte) (enc encoding.Encoding, bomLen int, found bool) {
	for _, b := range bomTable {
		if bytes.HasPrefix(data, b.bytes) {
			return b.enc, len(b.bytes), true
		}
	}
	return nil, 0, false
}

// Decode detects a BOM; if present, uses it (stripping the BOM bytes);
// otherwise decodes with fallback. fallback of nil means "assume UTF-8,
// byte-for-byte" (the common case for source-code trees).
func Decode(data []byte, fallback encoding.Encoding) (string, error) {
	enc, bomLen, found := DetectBOM(data)
	if found {
		decoded, err := enc.NewDecoder().Bytes(data[bomLen:])
		if err != nil {
			return "", fmt.Errorf("decoding with detected BOM: %w", err)
		}
		return string(decoded), nil
	}

	if fallback == nil {
		return string(data), nil
	}
	decoded, err := fallback.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding with default encoding: %w", err)
	}
	return string(decoded), nil
}

// ByName resolves a user-supplied encoding name (the --encoding flag or a
// profile's encoding value) to a decoder usable as Decode's fallback. An
// empty name or "utf-8" returns nil, meaning bytes are taken as UTF-8
// verbatim.
func ByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "utf-16", "utf-16le", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be", "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}
