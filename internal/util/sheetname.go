package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// characters xlsx bans in sheet names; a leading/trailing apostrophe
// is also rejected.
const sheetNameBad = `\/?*[]:`

// SheetName turns an arbitrary dataset or folder name into a legal
// worksheet name: accents decomposed and stripped, banned characters
// replaced with underscores, trimmed to the 31-character limit.
func SheetName(s string) string {
	s = strings.TrimSpace(s)
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		// Strip diacritics
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if strings.ContainsRune(sheetNameBad, r) || r < 0x20 {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}

	name := strings.Trim(b.String(), "' ")
	if name == "" {
		name = "sheet"
	}
	runes := []rune(name)
	if len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}
