package source

import (
	"strings"

	"github.com/aulang/aulang/internal/csharp"
	"github.com/aulang/aulang/internal/symtab"
)

// Emission is one unit of output text tagged with the source line it was
// derived from (0 for synthetic text with no single origin line). The
// output assembler uses SourceLine to interleave #line directives in
// non-pretty mode.
type Emission struct {
	SourceLine int
	Text       string
}

// Stream is one of the four header/body output channels (or an auxiliary
// post-header channel) accumulated per file.
type Stream struct {
	Emissions []Emission
}

// Emit appends text attributed to a 1-based source line.
func (s *Stream) Emit(line int, text string) {
	s.Emissions = append(s.Emissions, Emission{SourceLine: line, Text: text})
}

// EmitRaw appends synthetic text with no single origin line
// (SourceLine 0, so no #line directive is interleaved before it).
func (s *Stream) EmitRaw(text string) {
	s.Emissions = append(s.Emissions, Emission{SourceLine: 0, Text: text})
}

// Empty reports whether the stream has no emissions.
func (s *Stream) Empty() bool { return len(s.Emissions) == 0 }

// Lines renders the stream's emissions as plain text lines with no #line
// interleaving (pretty mode).
func (s *Stream) Lines() []string {
	out := make([]string, len(s.Emissions))
	for i, e := range s.Emissions {
		out[i] = e.Text
	}
	return out
}

// String joins the stream's text with newlines.
func (s *Stream) String() string {
	var b strings.Builder
	for i, l := range s.Lines() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
	}
	return b.String()
}

// File is the per-translation-unit record threaded through the
// translator, the solver, the planner, and the output assembler (spec
// §3 "Source file record").
type File struct {
	Path  string
	Lines []string

	TemplateName   string
	TemplateParams []string

	// Header channels.
	Public Stream // exported-to-C# / public header
	Module Stream // in-module header
	Local  Stream // local (file-private) header
	Body   Stream // translated C body

	// Auxiliary post-header accumulators for forward declarations,
	// one per header channel they feed.
	PublicPost Stream
	ModulePost Stream
	LocalPost  Stream

	CSharp []csharp.Record

	Vars  symtab.VariableTypes
	Flags symtab.Flags

	// imports_from / exports_to, represented as indices into an external
	// arena slice rather than pointers, per §9 design notes (cyclic
	// record references via an arena of records and integer indices).
	ImportsFrom []int
	ExportsTo   []int

	Rebuild        bool
	RearrangeCount int

	// ExportedStructs lists struct names closed with the public
	// modifier, consulted after translation to synthesize their C#
	// StructBegin/StructEnd records once any new/delete member
	// definitions elsewhere in the file have been seen.
	ExportedStructs []string

	// PlatformGate and BuildGate are not written by the translator;
	// conditional state is tracked by a directive.Gate local to each
	// rewrite.TranslateFile call.
	PlatformGate string
	BuildGate    string
}

// NewFile constructs a source-file record from a path and its already
// line-split, CR-stripped, NFC-normalized contents.
func NewFile(path string, lines []string) *File {
	return &File{
		Path:  path,
		Lines: lines,
		Vars:  symtab.NewVariableTypes(),
		Flags: symtab.NewFlags(),
	}
}
