package cescape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoflow/descriptorpool/internal/cescape"
)

func TestUnescape(t *testing.T) {
	got, err := cescape.Unescape(`\0\001\a\b\f\n\r\t\v\\\'\"\xfe\?`)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x01, 0x07, 0x08, 0x0C, 0x0A, 0x0D, 0x09, 0x0B, 0x5C, 0x27, 0x22, 0xFE, 0x3F,
	}, got)
}

func TestUnescapePassthrough(t *testing.T) {
	got, err := cescape.Unescape("hello world")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), got)

	got, err = cescape.Unescape("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnescapeOctal(t *testing.T) {
	got, err := cescape.Unescape(`\012\156`)
	require.NoError(t, err)
	assert.Equal(t, []byte{0o012, 0o156}, got)
}

func TestUnescapeHexErrors(t *testing.T) {
	_, err := cescape.Unescape(`\x`)
	assert.ErrorIs(t, err, cescape.ErrHexEscapeTooShort)

	_, err = cescape.Unescape(`\x1`)
	assert.ErrorIs(t, err, cescape.ErrHexEscapeTooShort)

	_, err = cescape.Unescape(`\x__`)
	assert.ErrorIs(t, err, cescape.ErrInvalidHexEscape)
}

func TestUnescapeHexExactlyTwoDigits(t *testing.T) {
	got, err := cescape.Unescape(`\x11`)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11}, got)

	got, err = cescape.Unescape(`\x111`)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, '1'}, got)
}

func TestUnescapeInvalidEscapeCharacter(t *testing.T) {
	_, err := cescape.Unescape(`\w`)
	assert.ErrorIs(t, err, cescape.ErrInvalidEscapeCharacter)
}

func TestUnescapeMissingEscapeCharacter(t *testing.T) {
	_, err := cescape.Unescape(`\`)
	assert.ErrorIs(t, err, cescape.ErrMissingEscapeCharacter)
}
