// Package source provides the lexical utilities and per-file record that
// every later translation pass reads and mutates.
package source

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a UTF-8 BOM and applies Unicode NFC normalization so
// that lexically equivalent source produces identical identifier text
// regardless of authoring editor.
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, bomUTF8)
	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}
	return src
}

// SplitLines splits normalized bytes into LF-terminated logical lines with
// any trailing CR stripped, matching the CRLF/LF tolerance a dialect file
// may arrive with.
func SplitLines(src []byte) []string {
	normalized := Normalize(src)
	raw := bytes.Split(normalized, []byte{'\n'})
	lines := make([]string, len(raw))
	for i, l := range raw {
		l = bytes.TrimSuffix(l, []byte{'\r'})
		lines[i] = string(l)
	}
	// A trailing newline in the source produces one extra empty element;
	// drop it so line counts match 1-based source coordinates exactly.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Trim removes leading and trailing ASCII whitespace.
func Trim(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// StartsWithK returns the first k characters of s, or all of s if shorter.
func StartsWithK(s string, k int) string {
	if k >= len(s) {
		return s
	}
	return s[:k]
}

func isIdentByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}

// ReadIdentifierBackwards returns the maximal [A-Za-z0-9_]+ run ending
// just before position i, after skipping whitespace.
func ReadIdentifierBackwards(s string, i int) string {
	if i > len(s) {
		i = len(s)
	}
	for i > 0 && isSpace(s[i-1]) {
		i--
	}
	end := i
	for i > 0 && isIdentByte(s[i-1]) {
		i--
	}
	return s[i:end]
}

// ReadIdentifierForwards returns the maximal [A-Za-z0-9_]+ run starting
// at position i, after skipping whitespace.
func ReadIdentifierForwards(s string, i int) string {
	n := len(s)
	for i < n && isSpace(s[i]) {
		i++
	}
	start := i
	for i < n && isIdentByte(s[i]) {
		i++
	}
	return s[start:i]
}

// ReplaceAll replaces all non-overlapping occurrences of old with new,
// scanning left-to-right. Equivalent to strings.ReplaceAll but kept as a
// named utility so every higher layer goes through one substitution path.
func ReplaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	var b bytes.Buffer
	for {
		idx := indexOf(s, old)
		if idx < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:idx])
		b.WriteString(new)
		s = s[idx+len(old):]
	}
	return b.String()
}

func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}
