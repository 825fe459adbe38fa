package link

import "github.com/aulang/aulang/internal/source"

// BuildExportGraph populates each file's ExportsTo/ImportsFrom edges: for
// every (i, j) where j defines a symbol i references, add the edge
// j → i (j.ExportsTo += i, i.ImportsFrom += j). This is the export graph
// the build planner's rebuild propagation walks (spec §4.8).
func BuildExportGraph(files []*source.File) {
	for j := range files {
		files[j].ExportsTo = nil
	}
	for i := range files {
		files[i].ImportsFrom = nil
	}
	for i, user := range files {
		for j, definer := range files {
			if i == j {
				continue
			}
			if defines(definer, user) {
				files[j].ExportsTo = append(files[j].ExportsTo, i)
				files[i].ImportsFrom = append(files[i].ImportsFrom, j)
			}
		}
	}
}
