package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateArgPrimitives(t *testing.T) {
	sets := TypeSets{OpaqueStructs: map[string]bool{}, OpaqueEnums: map[string]bool{}}
	tests := []struct {
		in   string
		want string
	}{
		{"u8", "byte"}, {"i32", "int"}, {"u64", "ulong"}, {"f32", "float"},
		{"void*", "IntPtr"}, {"const char*", "[MarshalAs(UnmanagedType.LPStr)] string"},
		{"char*", "byte*"},
	}
	for _, tt := range tests {
		got, ok := TranslateArg(tt.in, ModePointerStruct, sets)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestTranslateArgOpaqueStructPointer(t *testing.T) {
	sets := TypeSets{OpaqueStructs: map[string]bool{"Widget": true}, OpaqueEnums: map[string]bool{}}

	got, ok := TranslateArg("Widget*", ModeOpaque, sets)
	assert.True(t, ok)
	assert.Equal(t, "Widget*", got)

	got, ok = TranslateArg("Widget*", ModePointerStruct, sets)
	assert.True(t, ok)
	assert.Equal(t, "unsafe Widget*", got)
}

func TestTranslateArgNonOpaqueStructPointerIsRef(t *testing.T) {
	sets := TypeSets{OpaqueStructs: map[string]bool{}, OpaqueEnums: map[string]bool{}}
	got, ok := TranslateArg("Widget*", ModePointerStruct, sets)
	assert.True(t, ok)
	assert.Equal(t, "ref Widget", got)
}

func TestTranslateArgOpaqueEnumIsUint(t *testing.T) {
	sets := TypeSets{OpaqueStructs: map[string]bool{}, OpaqueEnums: map[string]bool{"Color": true}}
	got, ok := TranslateArg("Color", ModePointerStruct, sets)
	assert.True(t, ok)
	assert.Equal(t, "uint", got)
}

func TestTranslateArgUnknownFails(t *testing.T) {
	sets := TypeSets{OpaqueStructs: map[string]bool{}, OpaqueEnums: map[string]bool{}}
	_, ok := TranslateArg("Mystery", ModePointerStruct, sets)
	assert.False(t, ok)
}
