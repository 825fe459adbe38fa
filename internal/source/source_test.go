package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lf", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines([]byte(tt.in))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeStripsBOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	assert.Equal(t, "hello", string(Normalize(in)))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "x", Trim("  \t x \n"))
	assert.Equal(t, "", Trim("   "))
}

func TestTrimIdempotent(t *testing.T) {
	s := "  mixed \t whitespace  "
	once := Trim(s)
	twice := Trim(once)
	assert.Equal(t, once, twice)
}

func TestReadIdentifierBackwards(t *testing.T) {
	assert.Equal(t, "foo", ReadIdentifierBackwards("obj.foo", 7))
	assert.Equal(t, "foo", ReadIdentifierBackwards("obj.foo  ", 9))
	assert.Equal(t, "", ReadIdentifierBackwards("obj.", 4))
}

func TestReadIdentifierForwards(t *testing.T) {
	assert.Equal(t, "bar", ReadIdentifierForwards("  bar(x)", 0))
	assert.Equal(t, "", ReadIdentifierForwards("   ", 0))
}

func TestReplaceAll(t *testing.T) {
	assert.Equal(t, "X.Y.X", ReplaceAll("a.Y.a", "a", "X"))
	assert.Equal(t, "unchanged", ReplaceAll("unchanged", "", "X"))
}

func TestReplaceAllIdentityWhenAbsent(t *testing.T) {
	s := "no match here"
	assert.Equal(t, s, ReplaceAll(s, "zzz", "q"))
}
