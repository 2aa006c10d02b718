package protoident_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/protoflow/descriptorpool/internal/protoident"
)

func TestJoinFullName(t *testing.T) {
	assert.Equal(t, "a", protoident.JoinFullName("", "a"))
	assert.Equal(t, "a.b", protoident.JoinFullName("a", "b"))
	assert.Equal(t, "a.b.c", protoident.JoinFullName("a.b", "c"))
}

func TestParseNamespaceAndShortName(t *testing.T) {
	assert.Equal(t, "a.b", protoident.ParseNamespace("a.b.c"))
	assert.Equal(t, "c", protoident.ParseShortName("a.b.c"))
	assert.Equal(t, "", protoident.ParseNamespace("c"))
	assert.Equal(t, "c", protoident.ParseShortName("c"))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, []int32{4, 0, 2}, protoident.JoinPath([]int32{4, 0}, 2))
	assert.Equal(t, []int32{4, 0}, protoident.JoinPath([]int32{4, 0}))
}

func TestPrefixes(t *testing.T) {
	assert.Equal(t, []string{"a.b.c", "a.b", "a", ""}, protoident.Prefixes("a.b.c"))
	assert.Equal(t, []string{""}, protoident.Prefixes(""))
}
