// Package cescape decodes C-style escape sequences into raw bytes, the
// way protobuf's compiler unescapes a bytes-field default_value string.
// Grounded on the byte-oriented unescape_c_escape_string routine in
// original_source/prost-reflect/src/descriptor/build/resolve.rs, itself
// ported from google::protobuf::UnescapeCEscapeString.
package cescape

import (
	"errors"
	"strconv"
)

var (
	// ErrMissingEscapeCharacter is returned for a trailing lone backslash.
	ErrMissingEscapeCharacter = errors.New("missing escape character")
	// ErrInvalidEscapeCharacter is returned for an unrecognized escape letter.
	ErrInvalidEscapeCharacter = errors.New("invalid escape character")
	// ErrHexEscapeTooShort is returned when fewer than two characters
	// follow \x or \X.
	ErrHexEscapeTooShort = errors.New("hex escape must contain two characters")
	// ErrInvalidHexEscape is returned when the two characters following
	// \x or \X are not valid hex digits.
	ErrInvalidHexEscape = errors.New("invalid hex escape")
)

// Unescape decodes s, which may contain C-style escape sequences, into
// its raw byte representation. Bytes not part of an escape sequence
// (including multibyte UTF-8 sequences) pass through unchanged, since
// decoding is purely byte-oriented.
func Unescape(s string) ([]byte, error) {
	src := []byte(s)
	dst := make([]byte, 0, len(src))

	p := 0
	for p < len(src) {
		if src[p] != '\\' {
			dst = append(dst, src[p])
			p++
			continue
		}
		p++
		if p == len(src) {
			return nil, ErrMissingEscapeCharacter
		}
		switch src[p] {
		case 'a':
			dst = append(dst, 0x07)
			p++
		case 'b':
			dst = append(dst, 0x08)
			p++
		case 'f':
			dst = append(dst, 0x0C)
			p++
		case 'n':
			dst = append(dst, 0x0A)
			p++
		case 'r':
			dst = append(dst, 0x0D)
			p++
		case 't':
			dst = append(dst, 0x09)
			p++
		case 'v':
			dst = append(dst, 0x0B)
			p++
		case '\\':
			dst = append(dst, 0x5C)
			p++
		case '?':
			dst = append(dst, 0x3F)
			p++
		case '\'':
			dst = append(dst, 0x27)
			p++
		case '"':
			dst = append(dst, 0x22)
			p++
		case '0', '1', '2', '3', '4', '5', '6', '7':
			var octal byte
			n := 0
			for n < 3 && p < len(src) && src[p] >= '0' && src[p] <= '7' {
				octal = octal*8 + (src[p] - '0')
				p++
				n++
			}
			dst = append(dst, octal)
		case 'x', 'X':
			if p+3 > len(src) {
				return nil, ErrHexEscapeTooShort
			}
			b, err := strconv.ParseUint(string(src[p+1:p+3]), 16, 8)
			if err != nil {
				return nil, ErrInvalidHexEscape
			}
			dst = append(dst, byte(b))
			p += 3
		default:
			return nil, ErrInvalidEscapeCharacter
		}
	}
	return dst, nil
}
