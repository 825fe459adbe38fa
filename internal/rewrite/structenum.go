package rewrite

import (
	"strings"

	"github.com/aulang/aulang/internal/directive"
	"github.com/aulang/aulang/internal/errcode"
	"github.com/aulang/aulang/internal/source"
	"github.com/aulang/aulang/internal/symtab"
)

// AggKind distinguishes struct (class is treated identically) from enum.
type AggKind int

const (
	AggStruct AggKind = iota
	AggEnum
)

// OpenAggregate tracks a struct/enum/class body being accumulated across
// lines until its matching close brace is seen (spec §4.3).
type OpenAggregate struct {
	Kind      AggKind
	Name      string
	Mods      directive.Modifiers
	StartLine int
	depth     int
	Body      []string
}

// DetectAggregateOpen recognizes "struct Name {", "class Name {", or
// "enum Name {" triggers: a code line beginning with struct/class/enum
// with a { on the same line.
func DetectAggregateOpen(codeLine string) (kind AggKind, name string, ok bool) {
	trimmed := source.Trim(codeLine)
	if !strings.Contains(trimmed, "{") {
		return 0, "", false
	}
	var rest string
	switch {
	case strings.HasPrefix(trimmed, "struct "):
		kind, rest = AggStruct, strings.TrimPrefix(trimmed, "struct ")
	case strings.HasPrefix(trimmed, "class "):
		kind, rest = AggStruct, strings.TrimPrefix(trimmed, "class ")
	case strings.HasPrefix(trimmed, "enum "):
		kind, rest = AggEnum, strings.TrimPrefix(trimmed, "enum ")
	default:
		return 0, "", false
	}
	name = source.Trim(strings.SplitN(rest, "{", 2)[0])
	if name == "" {
		return 0, "", false
	}
	return kind, name, true
}

// NewOpenAggregate begins tracking a new aggregate. depth starts at the net brace
// count of the trigger line itself.
func NewOpenAggregate(kind AggKind, name string, mods directive.Modifiers, lineNo int, triggerLine string) *OpenAggregate {
	a := &OpenAggregate{Kind: kind, Name: name, Mods: mods, StartLine: lineNo}
	a.depth += netBraces(triggerLine)
	return a
}

func netBraces(s string) int {
	d := 0
	for _, c := range s {
		switch c {
		case '{':
			d++
		case '}':
			d--
		}
	}
	return d
}

// Feed processes one subsequent line. closed reports whether this line
// brought the brace depth back to zero (the matching close).
func (a *OpenAggregate) Feed(line string) (closed bool) {
	a.depth += netBraces(line)
	if a.depth <= 0 {
		return true
	}
	a.Body = append(a.Body, line)
	return false
}

// Close renders the aggregate's output per the visibility routing table
// in spec §4.3 and emits it to file's header/body streams.
func (a *OpenAggregate) Close(file *source.File) *errcode.Report {
	typeKeyword := "struct"
	if a.Kind == AggEnum {
		typeKeyword = "enum"
	}
	fullBody := a.renderFullBody(typeKeyword)
	forwardStruct := "typedef struct " + a.Name + " " + a.Name + ";"
	forwardEnum := "typedef int " + a.Name + ";"

	switch {
	case a.Mods.Private:
		if a.Kind == AggEnum {
			file.LocalPost.Emit(a.StartLine, forwardEnum)
		} else {
			file.LocalPost.Emit(a.StartLine, forwardStruct)
		}
		a.emitBody(file, &file.Body, typeKeyword+" "+a.Name+" {\n"+strings.Join(a.Body, "\n")+"\n}")

	case a.Mods.Opaque:
		if a.Mods.Public {
			if a.Kind == AggEnum {
				file.PublicPost.Emit(a.StartLine, forwardEnum)
			} else {
				file.PublicPost.Emit(a.StartLine, forwardStruct)
			}
		}
		if a.Kind == AggEnum {
			file.ModulePost.Emit(a.StartLine, forwardEnum)
		} else {
			file.ModulePost.Emit(a.StartLine, forwardStruct)
		}
		a.emitBody(file, &file.Local, fullBody)

	case a.Mods.Public:
		a.emitBody(file, &file.Public, fullBody)
		a.emitBody(file, &file.Module, fullBody)
		if a.Kind == AggStruct {
			file.ExportedStructs = append(file.ExportedStructs, a.Name)
		}

	default:
		a.emitBody(file, &file.Module, fullBody)
	}

	file.Flags.Set(a.Name, symtab.DefinedHere)
	return nil
}

func (a *OpenAggregate) renderFullBody(typeKeyword string) string {
	var b strings.Builder
	b.WriteString("typedef " + typeKeyword + " " + a.Name + " {\n")
	b.WriteString(strings.Join(a.Body, "\n"))
	b.WriteString("\n} " + a.Name + ";")
	return b.String()
}

func (a *OpenAggregate) emitBody(file *source.File, stream *source.Stream, text string) {
	if a.Mods.Packed {
		stream.Emit(a.StartLine, "#pragma pack(push, 1)")
		stream.Emit(a.StartLine, text)
		stream.Emit(a.StartLine, "#pragma pack(pop)")
		return
	}
	stream.Emit(a.StartLine, text)
}
