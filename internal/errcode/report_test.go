package errcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsFatal(t *testing.T) {
	r := New("rewrite", "MEM001", Pos{File: "a.au", Line: 3}, "bad thing: %s", "oops")
	assert.True(t, r.Fatal)
	assert.Equal(t, "MEM001", r.Code)
	assert.Equal(t, "bad thing: oops", r.Message)
}

func TestNewWarningIsNotFatal(t *testing.T) {
	pos := Pos{File: "a.au", Line: 1}
	r := NewWarning("solve", "LNK001", &pos, "did not converge")
	assert.False(t, r.Fatal)
}

func TestReportErrorFormatsWithPos(t *testing.T) {
	r := New("rewrite", "MEM001", Pos{File: "a.au", Line: 3}, "bad thing")
	err := Wrap(r)
	assert.Equal(t, "a.au:3: MEM001: bad thing", err.Error())
}

func TestAsReportRoundTrips(t *testing.T) {
	r := New("rewrite", "MEM001", Pos{File: "a.au", Line: 3}, "bad thing")
	err := Wrap(r)
	got, ok := AsReport(err)
	assert.True(t, ok)
	assert.Same(t, r, got)
}

func TestToJSONCompact(t *testing.T) {
	r := New("rewrite", "MEM001", Pos{File: "a.au", Line: 3}, "bad thing")
	out, err := r.ToJSON(true)
	assert.NoError(t, err)
	assert.Contains(t, out, `"code":"MEM001"`)
}
