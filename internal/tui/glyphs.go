package tui

import (
	"strings"
	"sync"
)

// Terminal apps can't change the user's font. We choose between Unicode and
// ASCII glyph sets for UI affordances (checkboxes, bullets, icons) so the
// sidebar stays readable on terminals that render some glyphs poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphCheckboxDone() string {
	if glyphs() == glyphSetASCII {
		return "[x]"
	}
	return "☑"
}

func glyphCheckboxOpen() string {
	if glyphs() == glyphSetASCII {
		return "[ ]"
	}
	return "☐"
}

func glyphNote() string {
	if glyphs() == glyphSetASCII {
		return "#"
	}
	return "≡"
}

func glyphSelected() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "▌"
}

// glyphIcon maps the outline engine's notification icon tags.
func glyphIcon(tag string) string {
	ascii := glyphs() == glyphSetASCII
	switch tag {
	case "copy", "cut", "paste", "duplicate":
		if ascii {
			return "#"
		}
		return "⧉"
	case "delete":
		if ascii {
			return "x"
		}
		return "✕"
	case "archive":
		if ascii {
			return "v"
		}
		return "▾"
	case "restore":
		if ascii {
			return "^"
		}
		return "▴"
	case "undo", "redo":
		if ascii {
			return "~"
		}
		return "↺"
	default:
		if ascii {
			return "*"
		}
		return "•"
	}
}
