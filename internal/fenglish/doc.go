// Package fenglish enumerates the informal Latin spellings ("Fenglish") of
// Persian words and phrases.
//
// A word is split into syllable-shaped segments (v, c, vc, cv, cc, cvc, ccc,
// cvcc) in every way the rules allow, each segment is spelled with every
// candidate from the alphabet tables, and the full-word spellings are
// returned de-duplicated in generation order. Generation is lazy: the
// recursive rules are composed as iter.Seq values and only the caller decides
// how much of the stream to materialize. Phrases are the Cartesian product of
// their words' spellings.
package fenglish
