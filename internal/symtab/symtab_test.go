package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips const", "const int", "int"},
		{"strips static", "static char*", "char*"},
		{"collapses pointer spacing", "Foo *", "Foo*"},
		{"collapses pointer spacing other side", "Foo* ", "Foo*"},
		{"already canonical", "int", "int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.in))
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	in := "const  Foo  * "
	once := Canonicalize(in)
	twice := Canonicalize(once)
	assert.Equal(t, once, twice)
}

func TestIsPointerAndBaseType(t *testing.T) {
	assert.True(t, IsPointer("Foo*"))
	assert.False(t, IsPointer("Foo"))
	assert.Equal(t, "Foo", BaseType("Foo*"))
	assert.Equal(t, "Foo", BaseType("Foo"))
}

func TestFlagsSetHas(t *testing.T) {
	f := NewFlags()
	f.Set("Widget", DefinedHere)
	assert.True(t, f.Has("Widget", DefinedHere))
	assert.False(t, f.Has("Widget", Referenced))

	f.Set("Widget", Referenced)
	assert.True(t, f.Has("Widget", DefinedHere))
	assert.True(t, f.Has("Widget", Referenced))
}

func TestDirectivesVendorConcatenates(t *testing.T) {
	d := NewDirectives()
	d.AddVendor("Acme")
	d.AddVendor("Co")
	assert.Equal(t, "Acme, Co", d.Vendor)
}

func TestDirectivesCopyrightConcatenates(t *testing.T) {
	d := NewDirectives()
	d.AddCopyright("Mykos Hudson-Crisp")
	d.AddCopyright("Acme Corp")
	assert.Equal(t, "Mykos Hudson-Crisp, Acme Corp", d.Copyright)
}

func TestDirectivesProductFirstWins(t *testing.T) {
	d := NewDirectives()
	d.SetProduct("First")
	d.SetProduct("Second")
	assert.Equal(t, "First", d.Product)
}

func TestDirectivesLibsAppendOrder(t *testing.T) {
	d := NewDirectives()
	d.AddLib("a.lib")
	d.AddLib("b.lib")
	assert.Equal(t, []string{"a.lib", "b.lib"}, d.Libs)
}
