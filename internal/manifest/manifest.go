// Package manifest defines translation acceptance fixtures: scenarios of
// input .au sources paired with their expected header/body/C# golden
// output and expected cross-file ordering. Adapted from the teacher's
// example-manifest package (same JSON/YAML schema shape, same
// documentation-stays-in-sync-with-reality intent, applied to
// translator golden fixtures instead of documented language examples).
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the current manifest schema version.
const SchemaVersion = "aulang.manifest/v1"

// Status mirrors the teacher's Status type: whether a scenario is
// expected to pass outright, is known-broken, or is still experimental.
type Status string

const (
	StatusWorking      Status = "working"
	StatusBroken       Status = "broken"
	StatusExperimental Status = "experimental"
)

// InputFile is one dialect source file belonging to a scenario, in
// command-line order.
type InputFile struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// Expected captures the golden outputs a scenario's translation run must
// match.
type Expected struct {
	ModuleHeader string   `yaml:"module_header,omitempty"`
	Body         string   `yaml:"body,omitempty"`
	PublicHeader string   `yaml:"public_header,omitempty"`
	CSharp       string   `yaml:"csharp,omitempty"`
	Order        []string `yaml:"order,omitempty"` // expected file path ordering after the solver
}

// BrokenInfo documents why a known-broken scenario is excluded from the
// acceptance run, mirroring the teacher's BrokenInfo shape.
type BrokenInfo struct {
	Reason       string `yaml:"reason"`
	ErrorCode    string `yaml:"error_code"`
	TrackedIssue string `yaml:"tracked_issue,omitempty"`
}

// Scenario is a single named translation acceptance fixture.
type Scenario struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Status      Status      `yaml:"status"`
	Inputs      []InputFile `yaml:"inputs"`
	Expected    Expected    `yaml:"expected"`
	Broken      *BrokenInfo `yaml:"broken,omitempty"`
}

// Manifest is a collection of scenarios loaded from a single YAML file.
type Manifest struct {
	Schema    string     `yaml:"schema"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and parses a manifest YAML file from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m.Schema == "" {
		m.Schema = SchemaVersion
	}
	return &m, nil
}

// Working returns every scenario whose Status is StatusWorking.
func (m *Manifest) Working() []Scenario {
	var out []Scenario
	for _, s := range m.Scenarios {
		if s.Status == StatusWorking {
			out = append(out, s)
		}
	}
	return out
}
