// Package symtab holds the per-file type lexicon and the per-file and
// process-wide symbol-flag bitsets populated as a side effect of the
// rewrite passes.
package symtab

import "strings"

// Flag is a bit in the per-symbol flag set.
type Flag uint8

const (
	UsedInTail Flag = 1 << iota
	DefinedHere
	Referenced
	AppearsInCode
	ExportedOpaqueStruct
	ExportedOpaqueEnum
)

// SolverMask selects the two bits the cross-file solver reads.
const SolverMask = DefinedHere | Referenced

// Flags is a per-file map from symbol name to its bitset.
type Flags map[string]Flag

func NewFlags() Flags { return make(Flags) }

func (f Flags) Set(name string, bit Flag) {
	f[name] |= bit
}

func (f Flags) Has(name string, bit Flag) bool {
	return f[name]&bit != 0
}

// Sentinel values for VariableTypes.
const (
	// Custom marks a destructor/constructor name as user-supplied rather
	// than synthesized by the rewriter.
	Custom = "custom"
	// Unknown marks a declarator whose type could not be determined.
	Unknown = ""
)

// VariableTypes maps an identifier to its canonical declared type.
type VariableTypes map[string]string

func NewVariableTypes() VariableTypes { return make(VariableTypes) }

// Canonicalize trims whitespace, collapses internal runs of whitespace,
// strips const/static/restrict qualifiers, and folds "T *" into "T*".
func Canonicalize(t string) string {
	fields := strings.Fields(t)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "const", "static", "restrict":
			continue
		}
		out = append(out, f)
	}
	joined := strings.Join(out, " ")
	joined = strings.ReplaceAll(joined, " *", "*")
	joined = strings.ReplaceAll(joined, "* ", "*")
	return strings.TrimSpace(joined)
}

// IsPointer reports whether a canonical type ends in "*".
func IsPointer(canonical string) bool {
	return strings.HasSuffix(canonical, "*")
}

// BaseType strips a single trailing "*" from a canonical type.
func BaseType(canonical string) string {
	return strings.TrimSuffix(canonical, "*")
}

// Directives is the process-wide accumulator populated by directive
// recognition (spec §3 "Directive state"), threaded explicitly through
// the translator rather than kept as a package-level mutable.
type Directives struct {
	Vendor    string
	Product   string
	Details   string
	Version   string
	Icon      string
	Manifest  string
	Copyright string
	Libs      []string

	productSet  bool
	detailsSet  bool
	versionSet  bool
	iconSet     bool
	manifestSet bool
}

func NewDirectives() *Directives { return &Directives{} }

// AddVendor concatenates vendor fragments in encounter order, joined by
// ", " (comma-space), matching the original #vendor accumulation.
func (d *Directives) AddVendor(v string) {
	if d.Vendor == "" {
		d.Vendor = v
		return
	}
	d.Vendor += ", " + v
}

// SetProduct applies first-wins semantics.
func (d *Directives) SetProduct(v string) {
	if !d.productSet {
		d.Product = v
		d.productSet = true
	}
}

func (d *Directives) SetDetails(v string) {
	if !d.detailsSet {
		d.Details = v
		d.detailsSet = true
	}
}

func (d *Directives) SetVersion(v string) {
	if !d.versionSet {
		d.Version = v
		d.versionSet = true
	}
}

func (d *Directives) SetIcon(v string) {
	if !d.iconSet {
		d.Icon = v
		d.iconSet = true
	}
}

func (d *Directives) SetManifest(v string) {
	if !d.manifestSet {
		d.Manifest = v
		d.manifestSet = true
	}
}

// AddLib appends a #link library in encounter order.
func (d *Directives) AddLib(lib string) {
	d.Libs = append(d.Libs, lib)
}

// AddCopyright concatenates copyright holder names in encounter order,
// joined by ", ", matching #copyright's accumulation (the attribution
// name only — the caller strips any trailing "<email>" before calling).
func (d *Directives) AddCopyright(holder string) {
	if d.Copyright == "" {
		d.Copyright = holder
		return
	}
	d.Copyright += ", " + holder
}
