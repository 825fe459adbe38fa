// Package directive recognizes the in-source directive and visibility
// preamble (spec §4.2) and tracks the small set of known platform/build
// conditionals well enough to gate rewriter state.
package directive

import (
	"strings"

	"github.com/aulang/aulang/internal/source"
)

// Kind classifies a logical line in the priority order spec §4.2 lists.
type Kind int

const (
	KindCopyright Kind = iota
	KindTemplate
	KindLink
	KindVendor
	KindProduct
	KindDetail
	KindVersion
	KindIcon
	KindManifest
	KindPublicDirective
	KindGlobalDirective
	KindPreprocessor // #define / #include, forwarded unchanged
	KindConditional  // #if / #ifdef / #ifndef / #else / #elif / #endif
	KindCode
)

// Classified holds the result of classifying one logical line.
type Classified struct {
	Kind    Kind
	Payload string // directive argument text, or the bare X (no '#') for #public_X/#global_X
}

var prefixTable = []struct {
	prefix string
	kind   Kind
}{
	{"#copyright", KindCopyright},
	{"#template", KindTemplate},
	{"#link", KindLink},
	{"#vendor", KindVendor},
	{"#product", KindProduct},
	{"#detail", KindDetail},
	{"#version", KindVersion},
	{"#icon", KindIcon},
	{"#manifest", KindManifest},
}

// Classify inspects a logical line (leading whitespace already present)
// and returns its directive classification.
func Classify(line string) Classified {
	trimmed := source.Trim(line)

	for _, e := range prefixTable {
		if strings.HasPrefix(trimmed, e.prefix) {
			return Classified{Kind: e.kind, Payload: source.Trim(strings.TrimPrefix(trimmed, e.prefix))}
		}
	}

	if strings.HasPrefix(trimmed, "#public_") {
		name := strings.TrimPrefix(trimmed, "#public_")
		return Classified{Kind: KindPublicDirective, Payload: name}
	}
	if strings.HasPrefix(trimmed, "#global_") {
		name := strings.TrimPrefix(trimmed, "#global_")
		return Classified{Kind: KindGlobalDirective, Payload: name}
	}
	if strings.HasPrefix(trimmed, "#define") || strings.HasPrefix(trimmed, "#include") {
		return Classified{Kind: KindPreprocessor, Payload: trimmed}
	}
	if isConditionalPrefix(trimmed) {
		return Classified{Kind: KindConditional, Payload: trimmed}
	}
	return Classified{Kind: KindCode, Payload: line}
}

func isConditionalPrefix(trimmed string) bool {
	for _, p := range []string{"#if", "#ifdef", "#ifndef", "#else", "#elif", "#endif"} {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// RewritePublicGlobal rewrites a "#public_X" line to "#X" (emitted on all
// four streams) or a "#global_X" line to "#X" (emitted on header/body but
// not the public header), per spec §4.2.
func RewritePublicGlobal(name string) string {
	return "#" + name
}

// modifierKeywords are the visibility/storage modifiers recognized at the
// start of a logical line (spec §2 component 3, §6).
var modifierKeywords = map[string]bool{
	"const":   true,
	"custom":  true,
	"opaque":  true,
	"packed":  true,
	"private": true,
	"public":  true,
	"static":  true,
}

// Modifiers is the set of visibility/storage modifiers found on a line's
// preamble.
type Modifiers struct {
	Const   bool
	Custom  bool
	Opaque  bool
	Packed  bool
	Private bool
	Public  bool
	Static  bool
}

// ParseModifiers peels leading modifier keywords off a code line and
// returns the parsed flags plus the remaining text starting at the first
// non-modifier token.
func ParseModifiers(line string) (Modifiers, string) {
	var m Modifiers
	rest := line
	for {
		trimmedRest := strings.TrimLeft(rest, " \t")
		word, tail := firstWord(trimmedRest)
		if !modifierKeywords[word] {
			return m, trimmedRest
		}
		switch word {
		case "const":
			m.Const = true
		case "custom":
			m.Custom = true
		case "opaque":
			m.Opaque = true
		case "packed":
			m.Packed = true
		case "private":
			m.Private = true
		case "public":
			m.Public = true
		case "static":
			m.Static = true
		}
		rest = tail
	}
}

func firstWord(s string) (word, rest string) {
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", s
	}
	return s[:i], s[i:]
}

func isIdentByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}
