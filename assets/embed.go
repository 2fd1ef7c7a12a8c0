package assets

import (
	_ "embed"
	"strings"
)

// DirectivesTxt contains the scripted movement directives, one per line.
//
//go:embed directives.txt
var DirectivesTxt string

// Directives returns the non-empty directive lines in file order.
func Directives() []string {
	lines := strings.Split(strings.ReplaceAll(DirectivesTxt, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimRight(l, " \t"); l != "" {
			out = append(out, l)
		}
	}
	return out
}
