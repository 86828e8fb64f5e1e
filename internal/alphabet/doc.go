// Package alphabet holds the fixed Persian letter inventory used by the
// Fenglish engine: which letters act as vowels and consonants, the Latin
// spellings each letter may take, and the consonant pairs that are never
// allowed to meet inside a spelled cluster. It also normalizes raw input
// so that common Arabic-keyboard variants map onto the Persian letters.
package alphabet
