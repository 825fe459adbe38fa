package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulang/aulang/internal/directive"
	"github.com/aulang/aulang/internal/source"
	"github.com/aulang/aulang/internal/symtab"
)

func TestDetectAggregateOpen(t *testing.T) {
	kind, name, ok := DetectAggregateOpen("struct Widget {")
	assert.True(t, ok)
	assert.Equal(t, AggStruct, kind)
	assert.Equal(t, "Widget", name)

	_, _, ok = DetectAggregateOpen("int x = 1;")
	assert.False(t, ok)
}

func TestOpenAggregatePublicStructGoesToPublicAndModule(t *testing.T) {
	f := source.NewFile("widget.au", nil)
	mods := directive.Modifiers{Public: true}
	a := NewOpenAggregate(AggStruct, "Widget", mods, 1, "public struct Widget {")
	a.Feed("int x;")
	closed := a.Feed("};")
	assert.True(t, closed)

	rep := a.Close(f)
	assert.Nil(t, rep)
	assert.False(t, f.Public.Empty())
	assert.False(t, f.Module.Empty())
	assert.True(t, f.Local.Empty())
	assert.Contains(t, f.ExportedStructs, "Widget")
	assert.True(t, f.Flags.Has("Widget", symtab.DefinedHere))
}

func TestOpenAggregatePrivateStructGoesToBodyAndLocalPost(t *testing.T) {
	f := source.NewFile("widget.au", nil)
	mods := directive.Modifiers{Private: true}
	a := NewOpenAggregate(AggStruct, "Internal", mods, 5, "private struct Internal {")
	a.Feed("int y;")
	a.Feed("};")

	a.Close(f)
	assert.False(t, f.Body.Empty())
	assert.False(t, f.LocalPost.Empty())
	assert.True(t, f.Public.Empty())
}

func TestOpenAggregatePrivateEnumForwardDeclaresAsInt(t *testing.T) {
	f := source.NewFile("color.au", nil)
	mods := directive.Modifiers{Private: true}
	a := NewOpenAggregate(AggEnum, "Color", mods, 5, "private enum Color {")
	a.Feed("RED,")
	a.Feed("};")

	a.Close(f)
	assert.Contains(t, f.LocalPost.String(), "typedef int Color;")
	assert.NotContains(t, f.LocalPost.String(), "typedef struct")
}

func TestOpenAggregateOpaquePublicEnumForwardDeclares(t *testing.T) {
	f := source.NewFile("color.au", nil)
	mods := directive.Modifiers{Opaque: true, Public: true}
	a := NewOpenAggregate(AggEnum, "Color", mods, 2, "public opaque enum Color {")
	a.Feed("RED,")
	a.Feed("};")

	a.Close(f)
	assert.Contains(t, f.PublicPost.String(), "typedef int Color;")
	assert.Contains(t, f.ModulePost.String(), "typedef int Color;")
	assert.False(t, f.Local.Empty())
}

func TestOpenAggregatePackedWrapsPragma(t *testing.T) {
	f := source.NewFile("widget.au", nil)
	mods := directive.Modifiers{Public: true, Packed: true}
	a := NewOpenAggregate(AggStruct, "Packed", mods, 1, "public packed struct Packed {")
	a.Feed("char b;")
	a.Feed("};")

	a.Close(f)
	body := f.Public.String()
	assert.Contains(t, body, "#pragma pack(push, 1)")
	assert.Contains(t, body, "#pragma pack(pop)")
}
