package rewrite

import (
	"regexp"
	"strings"

	"github.com/aulang/aulang/internal/source"
	"github.com/aulang/aulang/internal/symtab"
)

// declaratorShape matches a candidate declarator: letters, digits,
// underscore, '*', and space only, with at least one space separating
// the type from the name (spec §4.5).
var declaratorShape = regexp.MustCompile(`^[A-Za-z0-9_* ]+$`)

var reservedNames = map[string]bool{
	"return": true,
	"delete": true,
	"new":    true,
}

// Declarator is one candidate variable declaration found in a line.
type Declarator struct {
	Name string
	Type string
}

// ExtractDeclarations tokenizes the code portion of a line on ; = , ( )
// and returns every token preceding one of those separators that looks
// like "Type name". Reserved names (return/delete/new) are never
// recorded — callers rewrite delete/new separately and re-run extraction
// on the result.
func ExtractDeclarations(line string) []Declarator {
	var decls []Declarator
	tokens := splitOnSeparators(line)
	for _, tok := range tokens {
		tok = source.Trim(tok)
		if tok == "" || !declaratorShape.MatchString(tok) || !strings.Contains(tok, " ") {
			continue
		}
		fields := strings.Fields(tok)
		if reservedNames[fields[0]] {
			// A leading "delete"/"new"/"return" means this token is a
			// statement keyword followed by its operand, not a "Type
			// name" declarator (e.g. "delete w", "return x").
			continue
		}
		name := fields[len(fields)-1]
		name = strings.TrimPrefix(name, "*")
		if reservedNames[name] {
			continue
		}
		typ := strings.Join(fields[:len(fields)-1], " ")
		if strings.HasPrefix(fields[len(fields)-1], "*") {
			typ += "*"
		}
		if name == "" || typ == "" {
			continue
		}
		decls = append(decls, Declarator{Name: name, Type: symtab.Canonicalize(typ)})
	}
	return decls
}

func splitOnSeparators(line string) []string {
	var toks []string
	var b strings.Builder
	for _, c := range line {
		switch c {
		case ';', '=', ',', '(', ')':
			toks = append(toks, b.String())
			b.Reset()
		default:
			b.WriteRune(c)
		}
	}
	toks = append(toks, b.String())
	return toks
}

// RecordDeclarations applies ExtractDeclarations to a line, storing the
// results into the file's variable-type table and marking each
// declarator's base type REFERENCED and APPEARS_IN_CODE — the bits the
// cross-file solver (internal/link) and diagnostics consult.
func RecordDeclarations(line string, vars symtab.VariableTypes, flags symtab.Flags) {
	for _, d := range ExtractDeclarations(line) {
		vars[d.Name] = d.Type
		base := symtab.BaseType(d.Type)
		if base == "" {
			continue
		}
		flags.Set(base, symtab.Referenced)
		flags.Set(base, symtab.AppearsInCode)
	}
}
