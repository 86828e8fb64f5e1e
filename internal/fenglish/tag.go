package fenglish

// Tag is the shape of the segment emitted last. Only EndsInVowel is consulted
// by the rules; the rest is kept for traces.
type Tag int

const (
	TagNone Tag = iota
	TagV
	TagC
	TagVC
	TagCV
	TagCVC
	TagCVCC
)

var tagNames = [...]string{"", "v", "c", "vc", "cv", "cvc", "cvcc"}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "?"
	}
	return tagNames[t]
}

// EndsInVowel reports whether the segment closed on a spoken vowel, in which
// case a bare vowel segment may not follow it.
func (t Tag) EndsInVowel() bool {
	return t == TagV || t == TagCV
}
