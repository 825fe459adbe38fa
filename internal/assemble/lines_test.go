package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulang/aulang/internal/source"
)

func TestInterleaveLinesAddsLineDirectives(t *testing.T) {
	emissions := []source.Emission{
		{SourceLine: 3, Text: "int x;"},
		{SourceLine: 0, Text: "// synthetic"},
	}
	out := InterleaveLines("widget.au", emissions, false)
	assert.Equal(t, []string{
		`#line 3 "widget.au"`,
		"int x;",
		"// synthetic",
	}, out)
}

func TestInterleaveLinesPrettyOmitsDirectives(t *testing.T) {
	emissions := []source.Emission{{SourceLine: 3, Text: "int x;"}}
	out := InterleaveLines("widget.au", emissions, true)
	assert.Equal(t, []string{"int x;"}, out)
}
