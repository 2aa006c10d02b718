package defaultval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoflow/descriptorpool/internal/defaultval"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

func TestParseScalars(t *testing.T) {
	v, err := defaultval.Parse(poolstore.Kind{Tag: poolstore.KindInt32}, "42", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v.I32)

	v, err = defaultval.Parse(poolstore.Kind{Tag: poolstore.KindBool}, "true", nil)
	require.NoError(t, err)
	assert.True(t, v.Bool)

	_, err = defaultval.Parse(poolstore.Kind{Tag: poolstore.KindBool}, "True", nil)
	assert.Error(t, err)

	v, err = defaultval.Parse(poolstore.Kind{Tag: poolstore.KindDouble}, "nan", nil)
	require.NoError(t, err)
	assert.True(t, v.F64 != v.F64) // NaN != NaN

	v, err = defaultval.Parse(poolstore.Kind{Tag: poolstore.KindString}, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", v.Str)
}

func TestParseBytes(t *testing.T) {
	v, err := defaultval.Parse(poolstore.Kind{Tag: poolstore.KindBytes}, `\x01\x02`, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, v.Bytes)
}

func TestParseEnum(t *testing.T) {
	enum := &poolstore.Enum{
		Values: []poolstore.EnumValue{
			{Identity: poolstore.Identity{ShortName: "FOO"}, Number: 1},
			{Identity: poolstore.Identity{ShortName: "BAR"}, Number: 2},
		},
	}
	v, err := defaultval.Parse(poolstore.Kind{Tag: poolstore.KindEnum}, "BAR", enum)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v.EnumNumber)

	_, err = defaultval.Parse(poolstore.Kind{Tag: poolstore.KindEnum}, "BAZ", enum)
	assert.ErrorIs(t, err, defaultval.ErrUnknownEnumValue)
}

func TestParseMessageAlwaysErrors(t *testing.T) {
	_, err := defaultval.Parse(poolstore.Kind{Tag: poolstore.KindMessage}, "anything", nil)
	assert.ErrorIs(t, err, defaultval.ErrMessageType)

	_, err = defaultval.Parse(poolstore.Kind{Tag: poolstore.KindGroup}, "anything", nil)
	assert.ErrorIs(t, err, defaultval.ErrMessageType)
}
