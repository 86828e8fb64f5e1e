package alphabet

import (
	"errors"
	"fmt"
	"sort"
)

// Letters with a role of their own in the segmentation rules.
const (
	Alef      = 'ا'
	AlefMadda = 'آ'
	Ye        = 'ی'
	Vav       = 'و'
)

// Class is the segmentation class of a single grapheme.
type Class int

const (
	Other Class = iota
	Vowel
	Consonant
)

func (c Class) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	default:
		return "other"
	}
}

// ErrUnknownGrapheme is returned when a letter outside the fixed tables is
// looked up or found in input.
var ErrUnknownGrapheme = errors.New("unknown grapheme")

// GraphemeError reports an out-of-alphabet letter and its rune index in the
// word it came from (-1 when the position is not known).
type GraphemeError struct {
	Grapheme rune
	Index    int
}

func (e *GraphemeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %q (U+%04X)", ErrUnknownGrapheme, e.Grapheme, e.Grapheme)
	}
	return fmt.Sprintf("%v: %q (U+%04X) at position %d", ErrUnknownGrapheme, e.Grapheme, e.Grapheme, e.Index)
}

func (e *GraphemeError) Unwrap() error {
	return ErrUnknownGrapheme
}

// Letter order matters: the spelling lists below are zipped against it.
const (
	consonantLetters = "بپتثجچحخدذرزژسشصضطظعغفقکگلمنوهی"
	vowelLetters     = "اوی"
)

var consonantTable = [][]string{
	{"b"}, {"p"}, {"t"}, {"s"}, {"j"}, {"ch"}, {"h"},
	{"kh"}, {"d"}, {"z"}, {"r"}, {"z"}, {"zh", "j"}, {"s"},
	{"sh"}, {"s"}, {"z"}, {"t"}, {"z"}, {""}, {"gh", "q"}, {"f"},
	{"gh", "q"}, {"k"}, {"g"}, {"l"}, {"m"}, {"n"}, {"v"}, {"h"},
	{"y"},
}

var vowelTable = [][]string{
	{"a"}, {"oo", "o", "ou"}, {"i", "ee"},
}

// Pairs of consonant spellings that may not sit next to each other at the
// end of a three or four letter cluster.
var forbiddenClusterList = []string{
	"bp", "bm", "bv", "by",
	"pb", "pm", "pv", "py",
	"tj", "tch", "tj", "tzh", "tsh", "t", "th", "ty",
	"jp", "jch", "chkh", "chsh", "ch", "chgh", "chg", "chhf", "chy",
	"chp", "chj", "chkh", "chsh", "ch", "chv", "chh", "chy",
	"sz", "ssh", "sh", "sy",
	"dr",
}

var (
	consonants       = zipTable(consonantLetters, consonantTable)
	vowels           = zipTable(vowelLetters, vowelTable)
	forbiddenCluster = make(map[string]struct{}, len(forbiddenClusterList))
)

func init() {
	for _, pair := range forbiddenClusterList {
		forbiddenCluster[pair] = struct{}{}
	}
}

func zipTable(letters string, spellings [][]string) map[rune][]string {
	m := make(map[rune][]string, len(spellings))
	i := 0
	for _, r := range letters {
		m[r] = spellings[i]
		i++
	}
	if i != len(spellings) {
		panic(fmt.Sprintf("alphabet: %d letters but %d spelling lists", i, len(spellings)))
	}
	return m
}

// Classify reports whether r is a vowel, a consonant or neither. Vav and ye
// belong to both sets; they classify as vowels here, and the rules that need
// them as consonants use IsConsonant directly.
func Classify(r rune) Class {
	switch {
	case IsVowel(r):
		return Vowel
	case IsConsonant(r):
		return Consonant
	default:
		return Other
	}
}

// IsVowel reports whether r is one of the three written vowel letters.
func IsVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}

// IsConsonant reports whether r is in the consonant table.
func IsConsonant(r rune) bool {
	_, ok := consonants[r]
	return ok
}

// IsCarrier reports whether r is a bare vowel carrier (alef or alef madda).
func IsCarrier(r rune) bool {
	return r == Alef || r == AlefMadda
}

// IsKnown reports whether r takes part in any segmentation rule.
func IsKnown(r rune) bool {
	return IsCarrier(r) || IsVowel(r) || IsConsonant(r)
}

// ConsonantSpellings returns the ordered Latin spellings for consonant r.
func ConsonantSpellings(r rune) ([]string, error) {
	s, ok := consonants[r]
	if !ok {
		return nil, &GraphemeError{Grapheme: r, Index: -1}
	}
	return append([]string(nil), s...), nil
}

// VowelSpellings returns the ordered Latin spellings for vowel r.
func VowelSpellings(r rune) ([]string, error) {
	s, ok := vowels[r]
	if !ok {
		return nil, &GraphemeError{Grapheme: r, Index: -1}
	}
	return append([]string(nil), s...), nil
}

// MustConsonantSpellings is like ConsonantSpellings but panics on a letter
// outside the table. The returned slice is shared and must not be modified.
func MustConsonantSpellings(r rune) []string {
	s, ok := consonants[r]
	if !ok {
		panic(&GraphemeError{Grapheme: r, Index: -1})
	}
	return s
}

// MustVowelSpellings is like VowelSpellings but panics on a letter outside
// the table. The returned slice is shared and must not be modified.
func MustVowelSpellings(r rune) []string {
	s, ok := vowels[r]
	if !ok {
		panic(&GraphemeError{Grapheme: r, Index: -1})
	}
	return s
}

// IsForbiddenCluster reports whether the spelled consonant pair is excluded.
func IsForbiddenCluster(pair string) bool {
	_, ok := forbiddenCluster[pair]
	return ok
}

// ForbiddenClusters returns the exclusion set in sorted order.
func ForbiddenClusters() []string {
	out := make([]string, 0, len(forbiddenCluster))
	for pair := range forbiddenCluster {
		out = append(out, pair)
	}
	sort.Strings(out)
	return out
}

// Consonants returns the consonant letters in table order.
func Consonants() []rune {
	return []rune(consonantLetters)
}

// Vowels returns the vowel letters in table order.
func Vowels() []rune {
	return []rune(vowelLetters)
}
