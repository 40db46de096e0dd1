package plaintext

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/extractor/placeholder"
)

type decodeFunc func([]byte) (string, bool)

// Decoder tries UTF-8, then GBK, then ISO-8859-1.
type Decoder struct {
	chain []decodeFunc
}

func NewDecoder() *Decoder {
	return &Decoder{chain: []decodeFunc{
		decodeUTF8,
		strictDecoder(simplifiedchinese.GBK),
		strictDecoder(charmap.ISO8859_1),
	}}
}

// Decode returns the first successful decoding, or a placeholder
// description when every encoding rejects the input.
func (d *Decoder) Decode(data []byte, filename, extension string) string {
	for _, decode := range d.chain {
		if text, ok := decode(data); ok {
			return text
		}
	}
	return placeholder.Undecodable(filename, int64(len(data)), extension)
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// strictDecoder treats substituted replacement runes as a decode failure,
// since x/text decoders substitute rather than error on invalid input.
func strictDecoder(enc encoding.Encoding) decodeFunc {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		text := string(out)
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", false
		}
		return text, true
	}
}
