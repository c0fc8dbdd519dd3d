package task

import "strings"

// GlyphSet selects how progress markers are drawn. Some terminal fonts do
// not render the Unicode set cleanly.
type GlyphSet int

const (
	GlyphsASCII GlyphSet = iota
	GlyphsUnicode
)

// ParseGlyphSet accepts "ascii", "unicode" or "utf8". Unknown values fall
// back to ASCII.
func ParseGlyphSet(v string) GlyphSet {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return GlyphsUnicode
	default:
		return GlyphsASCII
	}
}

func (g GlyphSet) String() string {
	if g == GlyphsUnicode {
		return "unicode"
	}
	return "ascii"
}

// Marker returns the glyph for s.
func (g GlyphSet) Marker(s State) string {
	if g == GlyphsUnicode {
		switch s {
		case InProgress:
			return "◐"
		case Done:
			return "●"
		default:
			return "○"
		}
	}
	switch s {
	case InProgress:
		return "[>]"
	case Done:
		return "[x]"
	default:
		return "[ ]"
	}
}
