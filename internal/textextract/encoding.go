package textextract

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

var errInvalidEncoding = errors.New("invalid encoding")

// encodingChain is the fixed priority order for plain-text decoding.
var encodingChain = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", unicode.UTF8},
	{"latin-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"utf-32", utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)},
}

var (
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeBytes decodes raw file bytes, returning the text and the name of the
// encoding that produced it. A byte order mark short-circuits to the matching
// UTF variant: Latin-1 accepts any byte sequence, so without the sniff a
// UTF-16/32 file would decode byte-for-byte into garbage. When nothing in the
// chain decodes cleanly, decodes as UTF-8 substituting invalid bytes with the
// replacement character rather than failing.
func DecodeBytes(b []byte) (string, string) {
	switch {
	case bytes.HasPrefix(b, bomUTF32LE) || bytes.HasPrefix(b, bomUTF32BE):
		if s, err := decodeWith(utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM), b); err == nil {
			return s, "utf-32"
		}
	case bytes.HasPrefix(b, bomUTF16LE) || bytes.HasPrefix(b, bomUTF16BE):
		if s, err := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), b); err == nil {
			return s, "utf-16"
		}
	}

	for _, e := range encodingChain {
		s, err := decodeWith(e.enc, b)
		if err != nil {
			continue
		}
		return s, e.name
	}

	return strings.ToValidUTF8(string(b), string(utf8.RuneError)), "utf-8/replace"
}

// decodeWith decodes strictly: any byte the encoding cannot represent fails
// the attempt instead of silently becoming a replacement character.
func decodeWith(enc encoding.Encoding, b []byte) (string, error) {
	if enc == unicode.UTF8 {
		if !utf8.Valid(b) {
			return "", errInvalidEncoding
		}
		return string(b), nil
	}
	s, _, err := transform.String(enc.NewDecoder(), string(b))
	if err != nil {
		return "", err
	}
	// x/text decoders map undecodable input to U+FFFD instead of erroring.
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", errInvalidEncoding
	}
	return s, nil
}
