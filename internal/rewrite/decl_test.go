package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeclNoArgs(t *testing.T) {
	d, ok := ParseDecl("int helper(void);")
	assert.True(t, ok)
	assert.Equal(t, "int", d.ReturnType)
	assert.Equal(t, "helper", d.Name)
	assert.Empty(t, d.Params)
}

func TestParseDeclWithArgs(t *testing.T) {
	d, ok := ParseDecl("int add(int a, Widget* w);")
	assert.True(t, ok)
	assert.Equal(t, "int", d.ReturnType)
	assert.Equal(t, "add", d.Name)
	assert.Equal(t, []Param{{Type: "int", Name: "a"}, {Type: "Widget*", Name: "w"}}, d.Params)
}

func TestParseDeclInvalid(t *testing.T) {
	_, ok := ParseDecl("not a decl")
	assert.False(t, ok)
}
