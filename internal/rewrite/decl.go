package rewrite

import (
	"strings"

	"github.com/aulang/aulang/internal/source"
)

// Param is one parsed "Type name" function parameter.
type Param struct {
	Type string
	Name string
}

// ParsedDecl is a function declaration split into its return type, name,
// and parameter list.
type ParsedDecl struct {
	ReturnType string
	Name       string
	Params     []Param
}

// ParseDecl parses a "[storage] RetType funcName(args);" declaration.
// Leading storage-class words (DLLEXPORT, DLLIMPORT, static) should
// already be stripped by the caller.
func ParseDecl(decl string) (ParsedDecl, bool) {
	decl = strings.TrimSuffix(source.Trim(decl), ";")
	open := strings.Index(decl, "(")
	if open < 0 {
		return ParsedDecl{}, false
	}
	close := matchingParen(decl[open:])
	if close < 0 {
		return ParsedDecl{}, false
	}
	close += open

	head := source.Trim(decl[:open])
	fields := strings.Fields(head)
	if len(fields) < 2 {
		return ParsedDecl{}, false
	}
	name := fields[len(fields)-1]
	retType := strings.Join(fields[:len(fields)-1], " ")

	argsText := source.Trim(decl[open+1 : close])
	var params []Param
	if argsText != "" && argsText != "void" {
		for _, part := range splitCommaDepth0(argsText) {
			p := source.Trim(part)
			pf := strings.Fields(p)
			if len(pf) == 0 {
				continue
			}
			if len(pf) == 1 {
				params = append(params, Param{Type: pf[0], Name: ""})
				continue
			}
			pname := pf[len(pf)-1]
			ptype := strings.Join(pf[:len(pf)-1], " ")
			for strings.HasPrefix(pname, "*") {
				ptype += "*"
				pname = pname[1:]
			}
			params = append(params, Param{Type: ptype, Name: pname})
		}
	}

	return ParsedDecl{ReturnType: retType, Name: name, Params: params}, true
}

func splitCommaDepth0(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, c := range s {
		switch c {
		case '(', '<':
			depth++
		case ')', '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
