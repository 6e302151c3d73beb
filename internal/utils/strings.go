package utils

import (
	"strings"

	"github.com/PolarWolf314/rvault/internal/ui"
)

// FormatList formats items as an indented bullet list, one per line.
func FormatList(items []string, f ui.Formatter) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("    - ")
		b.WriteString(f.Sprint(item))
		b.WriteString("\n")
	}
	return b.String()
}

// Pluralize returns word with an s appended unless n is one.
func Pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
