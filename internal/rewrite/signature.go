package rewrite

import (
	"regexp"
	"strings"

	"github.com/aulang/aulang/internal/directive"
	"github.com/aulang/aulang/internal/source"
)

var controlKeywords = map[string]bool{
	"if":     true,
	"else":   true,
	"switch": true,
	"for":    true,
	"while":  true,
}

// IsFunctionDefinition reports whether a top-level code line opens a
// function definition: its first token isn't a control keyword, and it
// contains a ")" followed (ignoring whitespace) by "{" (spec §4.6).
func IsFunctionDefinition(line string) bool {
	trimmed := source.Trim(line)
	if trimmed == "" {
		return false
	}
	first := firstIdent(trimmed)
	if controlKeywords[first] {
		return false
	}
	closeIdx := strings.LastIndex(trimmed, ")")
	if closeIdx < 0 {
		return false
	}
	afterClose := strings.TrimLeft(trimmed[closeIdx+1:], " \t")
	return strings.HasPrefix(afterClose, "{")
}

func firstIdent(s string) string {
	i := 0
	for i < len(s) && (isIdentByte(s[i])) {
		i++
	}
	return s[:i]
}

func isIdentByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}

// FunctionSignature extracts the declaration text (start through the last
// ")" before "{") from a function-definition line.
func FunctionSignature(line string) string {
	trimmed := source.Trim(line)
	closeIdx := strings.LastIndex(trimmed, ")")
	if closeIdx < 0 {
		return trimmed
	}
	return trimmed[:closeIdx+1] + ";"
}

// SignatureRouting is the result of routing a public-signature extraction
// per the visibility table in spec §4.6.
type SignatureRouting struct {
	ModulePostExport string // DLLEXPORT decl emitted to the module post-header
	PublicPostImport string // DLLIMPORT decl emitted to the public post-header
	LocalDecl        string // static decl emitted to the local header only
	ModuleDecl       string // unannotated decl emitted to the module header (default case)
	BodyPrefix       string // prefix applied to the in-body definition
	Opaque           bool   // true if the opaque C# argument-translation mode applies
	Exported         bool   // public or opaque: a DllImport C# entry is required
}

// RouteSignature applies spec §4.6's routing table to an extracted
// function declaration.
func RouteSignature(decl string, mods directive.Modifiers) SignatureRouting {
	switch {
	case mods.Public:
		return SignatureRouting{
			ModulePostExport: "DLLEXPORT " + decl,
			PublicPostImport: "DLLIMPORT " + decl,
			BodyPrefix:       "DLLEXPORT ",
			Exported:         true,
		}
	case mods.Opaque:
		return SignatureRouting{
			ModulePostExport: "DLLEXPORT " + decl,
			PublicPostImport: "DLLIMPORT " + decl,
			BodyPrefix:       "DLLEXPORT ",
			Exported:         true,
			Opaque:           true,
		}
	case mods.Private:
		return SignatureRouting{LocalDecl: "static " + decl}
	default:
		return SignatureRouting{ModuleDecl: decl}
	}
}

var funcPointerTypedef = regexp.MustCompile(`^typedef\s+.+\(\s*\*\s*(\w+)\s*\)\s*\(.*\)\s*;\s*$`)

// IsTypedefLine reports whether a line is a typedef declaration ending
// with ";", which is echoed verbatim to the module header.
func IsTypedefLine(line string) bool {
	trimmed := source.Trim(line)
	return strings.HasPrefix(trimmed, "typedef ") && strings.HasSuffix(trimmed, ";")
}

// IsFunctionPointerTypedef reports whether a typedef line declares a
// function-pointer type, returning the declared name.
func IsFunctionPointerTypedef(line string) (name string, ok bool) {
	m := funcPointerTypedef.FindStringSubmatch(source.Trim(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}
