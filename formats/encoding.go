package formats

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when no supported text encoding accepts the
// payload.
var ErrUndecodable = errors.New("content not decodable in any supported encoding")

// textDecoder is one entry in the ordered encoding fallback chain.
type textDecoder struct {
	name   string
	decode func([]byte) (string, bool)
}

// textDecoders is tried in order; the first decoder that accepts the
// payload wins. ISO 8859-1 accepts any byte sequence, so in practice the
// chain never falls through, but the order and the fall-through error are
// part of the contract.
var textDecoders = []textDecoder{
	{"utf-8", decodeUTF8},
	{"latin-1", decodeLatin1},
	{"ascii", decodeASCII},
}

// DecodeText resolves the payload's text encoding and returns the decoded
// content along with the name of the encoding that accepted it.
func DecodeText(data []byte) (string, string, error) {
	for _, d := range textDecoders {
		if text, ok := d.decode(data); ok {
			return text, d.name, nil
		}
	}
	return "", "", ErrUndecodable
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func decodeLatin1(data []byte) (string, bool) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func decodeASCII(data []byte) (string, bool) {
	for _, b := range data {
		if b > 0x7F {
			return "", false
		}
	}
	return string(data), true
}
