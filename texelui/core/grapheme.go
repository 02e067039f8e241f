package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Cursor columns count grapheme clusters, so a caret never lands inside a
// combined character.

func graphemeCount(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// graphemePrefix returns the first n clusters of s.
func graphemePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		sb.WriteString(g.Str())
	}
	return sb.String()
}

// graphemeSplit cuts s before cluster n.
func graphemeSplit(s string, n int) (string, string) {
	head := graphemePrefix(s, n)
	return head, s[len(head):]
}
