package nametable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/nametable"
)

func TestInsertDuplicate(t *testing.T) {
	tbl := nametable.New()
	_, ok := tbl.Insert("x.A", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(0)})
	require.True(t, ok)

	existing, ok := tbl.Insert("x.A", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(1)})
	require.False(t, ok)
	assert.Equal(t, handle.Message(0), existing.Message)
}

func TestResolveAbsolute(t *testing.T) {
	tbl := nametable.New()
	tbl.Insert("x.y.P.Q", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(5)})

	resolved, def, ok := tbl.Resolve("x.y.P", ".x.y.P.Q")
	require.True(t, ok)
	assert.Equal(t, "x.y.P.Q", resolved)
	assert.Equal(t, handle.Message(5), def.Message)
}

func TestResolveRelativeNestedScope(t *testing.T) {
	// package x.y; message P { message Q {} Q q = 1; }
	tbl := nametable.New()
	tbl.Insert("x.y.P", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(0)})
	tbl.Insert("x.y.P.Q", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(1)})

	resolved, def, ok := tbl.Resolve("x.y.P", "Q")
	require.True(t, ok)
	assert.Equal(t, "x.y.P.Q", resolved)
	assert.Equal(t, handle.Message(1), def.Message)
}

func TestResolveRelativeWalksUpToRoot(t *testing.T) {
	tbl := nametable.New()
	tbl.Insert("TopLevel", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(9)})

	resolved, def, ok := tbl.Resolve("x.y.P", "TopLevel")
	require.True(t, ok)
	assert.Equal(t, "TopLevel", resolved)
	assert.Equal(t, handle.Message(9), def.Message)
}

func TestResolveNotFound(t *testing.T) {
	tbl := nametable.New()
	_, _, ok := tbl.Resolve("x.y.P", "Nope")
	assert.False(t, ok)
}

func TestResolveBaseHitButFullMiss(t *testing.T) {
	// Under scope "x.y" the pivot "Z" first hits "x.y.Z", but "x.y.Z.W"
	// does not exist; the first matching base fixes the search, so this
	// must fail rather than fall through to the root-level "Z.W".
	tbl := nametable.New()
	tbl.Insert("x.y.Z", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(2)})
	tbl.Insert("Z", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(3)})
	tbl.Insert("Z.W", nametable.Definition{Kind: nametable.KindMessage, Message: handle.Message(4)})

	_, _, ok := tbl.Resolve("x.y", "Z.W")
	assert.False(t, ok)
}
