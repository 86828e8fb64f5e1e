package alphabet

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	zwnj    = '\u200c'
	tatweel = '\u0640'
)

// Arabic-keyboard and hamza-seated letters folded onto the Persian table.
var letterVariants = map[rune]rune{
	'ي': Ye,  // arabic yeh
	'ى': Ye,  // alef maksura
	'ئ': Ye,  // yeh with hamza
	'ك': 'ک', // arabic kaf
	'ة': 'ه', // teh marbuta
	'ۀ': 'ه', // heh with yeh above
	'أ': Alef,
	'إ': Alef,
	'ٱ': Alef,
	'ؤ': Vav,
}

func isStripped(r rune) bool {
	return r == zwnj || r == tatweel || unicode.Is(unicode.Mn, r)
}

// Normalize composes s (so alef followed by a combining madda becomes a
// single alef madda), folds common Arabic letter variants onto their
// Persian forms and strips short-vowel marks, tatweel and zero-width
// non-joiners.
func Normalize(s string) string {
	t := transform.Chain(
		norm.NFC,
		runes.Map(func(r rune) rune {
			if v, ok := letterVariants[r]; ok {
				return v
			}
			return r
		}),
		runes.Remove(runes.Predicate(isStripped)),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Validate returns a *GraphemeError for the first letter of word that no
// segmentation rule can consume.
func Validate(word string) error {
	i := 0
	for _, r := range word {
		if !IsKnown(r) {
			return &GraphemeError{Grapheme: r, Index: i}
		}
		i++
	}
	return nil
}

// Filter drops every letter of word that no segmentation rule can consume.
func Filter(word string) string {
	return runes.Remove(runes.Predicate(func(r rune) bool {
		return !IsKnown(r)
	})).String(word)
}
