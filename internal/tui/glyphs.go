package tui

import "sync"

// Terminal apps can't change the user's font; we can only pick between
// Unicode and ASCII glyphs for UI affordances. ASCII is for terminals and
// fonts that render the Unicode set poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

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

func glyphsName() string {
	if glyphs() == glyphSetASCII {
		return "ASCII"
	}
	return "Unicode"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphDot() string {
	if glyphs() == glyphSetASCII {
		return "o"
	}
	return "●"
}

func glyphBar() string {
	if glyphs() == glyphSetASCII {
		return "="
	}
	return "█"
}

func glyphArrow() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}
