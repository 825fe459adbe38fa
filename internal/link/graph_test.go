package link

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulang/aulang/internal/source"
)

func TestBuildExportGraph(t *testing.T) {
	user := newFileWithFlags("user.au", nil, []string{"Widget"})
	definer := newFileWithFlags("definer.au", []string{"Widget"}, nil)

	all := []*source.File{user, definer}
	BuildExportGraph(all)

	assert.Equal(t, []int{0}, definer.ExportsTo)
	assert.Equal(t, []int{1}, user.ImportsFrom)
	assert.Empty(t, user.ExportsTo)
	assert.Empty(t, definer.ImportsFrom)
}
