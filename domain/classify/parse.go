package classify

import (
	"strings"
	"unicode"
)

// LabelPrompt asks a generative vision model for a flat label list that
// ParseLabelList understands.
const LabelPrompt = "List the objects, vehicles, people, scenes and colours visible in this image " +
	"as a comma-separated list of short lowercase labels, most prominent first. " +
	"Answer with the list only."

// ParseLabelList turns a free-text model answer into labels. It accepts comma,
// semicolon or newline separated items, strips bullets, numbering and quotes,
// and drops empty entries. Order is preserved; duplicates are kept.
func ParseLabelList(text string) Labels {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
	out := make(Labels, 0, len(fields))
	for _, f := range fields {
		f = cleanItem(f)
		if f == "" {
			continue
		}
		out = append(out, Label(f))
	}
	return out
}

func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•·")
	s = strings.TrimSpace(s)
	// "1. " / "2) " numbering; "2.5 ton truck" is a label, not an item number
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i > 0 && i+1 < len(s) && (s[i] == '.' || s[i] == ')') && unicode.IsSpace(rune(s[i+1])) {
		s = s[i+1:]
	}
	s = strings.Trim(strings.TrimSpace(s), "\"'`.")
	return strings.TrimSpace(s)
}
