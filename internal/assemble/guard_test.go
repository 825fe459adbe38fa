package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncludeGuardDeterministic(t *testing.T) {
	g1 := IncludeGuard("widgets/Widget.au.h")
	g2 := IncludeGuard("widgets/Widget.au.h")
	assert.Equal(t, g1, g2)
	assert.Equal(t, "WIDGETS_WIDGET_AU_H_H", g1)
}

func TestIncludeGuardDiffersByPath(t *testing.T) {
	assert.NotEqual(t, IncludeGuard("a.au.h"), IncludeGuard("b.au.h"))
}

func TestWrapHeaderGuard(t *testing.T) {
	out := WrapHeaderGuard("FOO_H", []string{"int x;"})
	assert.Equal(t, []string{"#ifndef FOO_H", "#define FOO_H", "int x;", "#endif"}, out)
}
