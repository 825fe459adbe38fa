// Package assemble composes the four per-file output streams into the
// final header/body text: include guards, the embedded static prefix,
// #line interleaving, and header post-processing (spec §4.9).
package assemble

import "strings"

// IncludeGuard deterministically derives an include-guard token from a
// file path: two files with the same canonicalized path must produce the
// same guard (spec §3 invariant).
func IncludeGuard(path string) string {
	var b strings.Builder
	for _, r := range path {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.ToUpper(b.String()) + "_H"
}

// WrapHeaderGuard brackets body in "#ifndef GUARD / #define GUARD / ... /
// #endif".
func WrapHeaderGuard(guard string, body []string) []string {
	out := make([]string, 0, len(body)+3)
	out = append(out, "#ifndef "+guard, "#define "+guard)
	out = append(out, body...)
	out = append(out, "#endif")
	return out
}
