package fenglish

import (
	"iter"

	"codeberg.org/snonux/fenglish/internal/alphabet"
)

// Unwritten short vowels, in enumeration order.
var shortVowels = []string{"a", "e", "o"}

var (
	longI = []string{"i", "ee"}
	longU = []string{"u", "oo", "ou"}
)

// A lone vav is the conjunction "and".
var conjunction = []Segment{
	{Tag: TagCV, Graphemes: []rune{alphabet.Vav}, Text: "va"},
	{Tag: TagV, Graphemes: []rune{alphabet.Vav}, Text: "o"},
}

// Segment is one piece of a derivation: the letters it consumed, the shape
// it was matched as and the Latin text it was spelled with.
type Segment struct {
	Tag       Tag
	Graphemes []rune
	Text      string
}

// Derivation is a complete spelling of a word together with the segments
// that produced it.
type Derivation struct {
	Text     string
	Segments []Segment
}

func (d Derivation) prepend(s Segment) Derivation {
	segs := make([]Segment, 0, len(d.Segments)+1)
	segs = append(segs, s)
	segs = append(segs, d.Segments...)
	return Derivation{Text: s.Text + d.Text, Segments: segs}
}

// completions yields every spelling of w that consumes all of it, given that
// the previous segment had shape last. Every rule whose guard holds
// contributes; rules are tried in a fixed order, which fixes output order.
func completions(w []rune, last Tag) iter.Seq[Derivation] {
	return func(yield func(Derivation) bool) {
		walk(w, last, yield)
	}
}

// extend yields seg followed by every completion of rest, or seg alone when
// nothing is left.
func extend(seg Segment, rest []rune, yield func(Derivation) bool) bool {
	if len(rest) == 0 {
		return yield(Derivation{Text: seg.Text, Segments: []Segment{seg}})
	}
	for d := range completions(rest, seg.Tag) {
		if !yield(d.prepend(seg)) {
			return false
		}
	}
	return true
}

func walk(w []rune, last Tag, yield func(Derivation) bool) bool {
	if len(w) == 0 {
		return true
	}

	emit := func(tag Tag, n int, text string) bool {
		return extend(Segment{Tag: tag, Graphemes: w[:n], Text: text}, w[n:], yield)
	}

	g := w[0]

	// Whole word of a single letter.
	if len(w) == 1 && last == TagNone {
		if g == alphabet.Vav {
			for _, s := range conjunction {
				if !yield(Derivation{Text: s.Text, Segments: []Segment{s}}) {
					return false
				}
			}
			return true
		}
		if alphabet.IsConsonant(g) {
			for _, c := range alphabet.MustConsonantSpellings(g) {
				seg := Segment{Tag: TagC, Graphemes: w[:1], Text: c}
				if !yield(Derivation{Text: c, Segments: []Segment{seg}}) {
					return false
				}
			}
		}
	}

	// v
	if alphabet.IsCarrier(g) && !last.EndsInVowel() {
		for _, v := range shortVowels {
			if !emit(TagV, 1, v) {
				return false
			}
		}
	}

	// c: a consonant with an unwritten vowel before the next consonant
	if len(w) > 1 && alphabet.IsConsonant(g) && alphabet.IsConsonant(w[1]) {
		for _, c := range alphabet.MustConsonantSpellings(g) {
			for _, v := range shortVowels {
				if !emit(TagCV, 1, c+v) {
					return false
				}
			}
		}
	}

	if len(w) < 2 {
		return true
	}

	// long vowels
	if g == alphabet.Alef && !last.EndsInVowel() {
		var long []string
		switch w[1] {
		case alphabet.Ye:
			long = longI
		case alphabet.Vav:
			long = longU
		}
		for _, v := range long {
			if !emit(TagV, 2, v) {
				return false
			}
		}
	}

	// vc: alef madda already carries its vowel and only takes the v rule
	if g == alphabet.Alef && alphabet.IsConsonant(w[1]) {
		for _, c := range alphabet.MustConsonantSpellings(w[1]) {
			for _, v := range shortVowels {
				if !emit(TagVC, 2, v+c) {
					return false
				}
			}
		}
	}

	// cv
	if match(w, "cv") {
		for _, c := range alphabet.MustConsonantSpellings(g) {
			for _, v := range alphabet.MustVowelSpellings(w[1]) {
				if !emit(TagVC, 2, c+v) {
					return false
				}
			}
		}
	}

	// cc
	if match(w, "cc") {
		for _, c1 := range alphabet.MustConsonantSpellings(g) {
			for _, c2 := range alphabet.MustConsonantSpellings(w[1]) {
				for _, v := range shortVowels {
					if !emit(TagCVC, 2, c1+v+c2) {
						return false
					}
				}
			}
		}
	}

	if len(w) < 3 {
		return true
	}

	// cvc
	if match(w, "cvc") {
		for _, c1 := range alphabet.MustConsonantSpellings(g) {
			for _, v := range alphabet.MustVowelSpellings(w[1]) {
				for _, c2 := range alphabet.MustConsonantSpellings(w[2]) {
					if !emit(TagCVC, 3, c1+v+c2) {
						return false
					}
				}
			}
		}
	}

	// ccc
	if match(w, "ccc") {
		for _, c1 := range alphabet.MustConsonantSpellings(g) {
			for _, v := range shortVowels {
				if !cluster(w[1], w[2], func(c23 string) bool {
					return emit(TagCVCC, 3, c1+v+c23)
				}) {
					return false
				}
			}
		}
	}

	if len(w) < 4 {
		return true
	}

	// cvcc
	if match(w, "cvcc") {
		for _, c1 := range alphabet.MustConsonantSpellings(g) {
			for _, v := range alphabet.MustVowelSpellings(w[1]) {
				if !cluster(w[2], w[3], func(c23 string) bool {
					return emit(TagCVCC, 4, c1+v+c23)
				}) {
					return false
				}
			}
		}
	}

	return true
}

// cluster calls fn with every spelling of the consonant pair a, b that is
// allowed to close a cluster: the two spellings differ and the pair is not
// in the exclusion set.
func cluster(a, b rune, fn func(string) bool) bool {
	for _, c2 := range alphabet.MustConsonantSpellings(a) {
		for _, c3 := range alphabet.MustConsonantSpellings(b) {
			if c2 == c3 || alphabet.IsForbiddenCluster(c2+c3) {
				continue
			}
			if !fn(c2 + c3) {
				return false
			}
		}
	}
	return true
}

// match reports whether the first len(pattern) letters of w have the given
// vowel/consonant shape.
func match(w []rune, pattern string) bool {
	if len(w) < len(pattern) {
		return false
	}
	for i, p := range pattern {
		switch p {
		case 'v':
			if !alphabet.IsVowel(w[i]) {
				return false
			}
		case 'c':
			if !alphabet.IsConsonant(w[i]) {
				return false
			}
		default:
			panic("fenglish: invalid pattern " + pattern)
		}
	}
	return true
}
