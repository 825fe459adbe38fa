package assemble

import (
	"fmt"

	"github.com/aulang/aulang/internal/source"
)

// InterleaveLines is the #line-directive transducer over a stream's
// emissions: in non-pretty mode, a "#line N \"path\"" directive is
// prepended before every emission attributed to a real source line
// (spec §4.9, §8 testable property). Pretty mode omits them.
func InterleaveLines(path string, emissions []source.Emission, pretty bool) []string {
	var out []string
	for _, e := range emissions {
		if !pretty && e.SourceLine > 0 {
			out = append(out, fmt.Sprintf("#line %d %q", e.SourceLine, path))
		}
		out = append(out, e.Text)
	}
	return out
}
