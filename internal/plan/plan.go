// Package plan implements the incremental-rebuild build planner (spec
// §4.8, §9 DryRun supplement). File mtime probing belongs to the
// external driver (spec §1 "out of scope"); the planner consumes a
// precomputed staleness vector rather than touching the filesystem
// itself.
package plan

import "github.com/aulang/aulang/internal/source"

// Plan is the outcome of propagating staleness across the export graph.
type Plan struct {
	Rebuild   []bool // per file index, parallel to the input files slice
	NeedsLink bool
	DryRun    bool
}

// Compute marks every file transitively reachable from an initially
// stale file (source newer than its intermediate object) along the
// ExportsTo edges as needing rebuild, then decides whether the final
// link step must re-run. initiallyStale is indexed the same way as
// files; the build driver computes it by comparing each file's source
// and object mtimes (outside the core, per spec §1/§6).
func Compute(files []*source.File, initiallyStale []bool, dryRun bool) Plan {
	n := len(files)
	rebuild := make([]bool, n)
	visited := make([]bool, n)

	var mark func(i int)
	mark = func(i int) {
		if visited[i] {
			return
		}
		visited[i] = true
		rebuild[i] = true
		for _, dependent := range files[i].ExportsTo {
			mark(dependent)
		}
	}

	for i, stale := range initiallyStale {
		if stale {
			mark(i)
		}
	}

	needsLink := false
	for i := range files {
		files[i].Rebuild = rebuild[i]
		if rebuild[i] {
			needsLink = true
		}
	}

	return Plan{Rebuild: rebuild, NeedsLink: needsLink, DryRun: dryRun}
}
