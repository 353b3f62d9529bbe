package render

import (
	"strings"

	"github.com/vovakirdan/pocket-console/internal/core"
)

// short abbreviates a binding for the narrow screen: buttons by initial,
// stick directions by arrow glyph, chords joined with '+'.
func short(b core.Binding) string {
	s := b.String()
	switch s {
	case "Stick left":
		return "<"
	case "Stick right":
		return ">"
	case "Stick up":
		return "^"
	case "Stick down":
		return "v"
	}

	parts := strings.Split(s, "+")
	for i, p := range parts {
		if p != "" {
			parts[i] = p[:1]
		}
	}
	return strings.Join(parts, "+")
}

// shortAny abbreviates alternative bindings, joined with '/'.
func shortAny(bs []core.Binding) string {
	labels := make([]string, 0, len(bs))
	for _, b := range bs {
		labels = append(labels, short(b))
	}
	return strings.Join(labels, "/")
}
