package fenglish

import (
	"iter"
	"math"
	"slices"
	"strings"

	"codeberg.org/snonux/fenglish/internal/alphabet"
)

// Options controls how input is prepared before segmentation.
type Options struct {
	// Strict rejects letters outside the alphabet with an
	// *alphabet.GraphemeError. When false such letters are dropped.
	Strict bool

	// Memoize keeps the spellings of every word seen in an in-memory
	// Cache.
	Memoize bool
}

// DefaultOptions returns the options used by the package-level functions.
func DefaultOptions() Options {
	return Options{Strict: true}
}

// Engine spells words and phrases. The zero value is a lenient engine.
type Engine struct {
	opts  Options
	cache *Cache
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	e := &Engine{opts: opts}
	if opts.Memoize {
		e.cache = NewCache()
	}
	return e
}

// Cache returns the engine's word cache, or nil if it does not memoize.
func (e *Engine) Cache() *Cache {
	return e.cache
}

var defaultEngine = New(DefaultOptions())

// prepare normalizes word and turns it into the letter sequence the rules
// operate on.
func (e *Engine) prepare(word string) ([]rune, error) {
	word = alphabet.Normalize(word)
	if e.opts.Strict {
		if err := alphabet.Validate(word); err != nil {
			return nil, err
		}
	} else {
		word = alphabet.Filter(word)
	}
	return []rune(word), nil
}

// Derive returns the raw stream of derivations for word, duplicates
// included. An empty word yields nothing.
func (e *Engine) Derive(word string) (iter.Seq[Derivation], error) {
	w, err := e.prepare(word)
	if err != nil {
		return nil, err
	}
	return completions(w, TagNone), nil
}

// SpellingsForWord returns every distinct spelling of word in the order it
// was first generated.
func (e *Engine) SpellingsForWord(word string) ([]string, error) {
	spellings, err := e.spell(word)
	if err != nil {
		return nil, err
	}
	return slices.Clone(spellings), nil
}

// spell is SpellingsForWord without the copy; the result may be shared with
// the cache. Words are cached by their prepared form, so the same word typed
// with different letter variants shares one entry.
func (e *Engine) spell(word string) ([]string, error) {
	w, err := e.prepare(word)
	if err != nil {
		return nil, err
	}
	key := string(w)

	if e.cache != nil {
		if spellings, ok := e.cache.Get(key); ok {
			return spellings, nil
		}
	}

	spellings := Unique(func(yield func(string) bool) {
		for d := range completions(w, TagNone) {
			if !yield(d.Text) {
				return
			}
		}
	})

	if e.cache != nil {
		e.cache.Add(key, spellings)
	}
	return spellings, nil
}

// Phrase holds the spellings of each word of a phrase. The spellings may be
// shared with the engine's cache and must not be modified.
type Phrase struct {
	Words     []string
	Spellings [][]string
}

// SpellPhrase splits phrase on whitespace and spells every word.
func (e *Engine) SpellPhrase(phrase string) (*Phrase, error) {
	words := strings.Fields(phrase)
	p := &Phrase{
		Words:     words,
		Spellings: make([][]string, 0, len(words)),
	}
	for _, word := range words {
		s, err := e.spell(word)
		if err != nil {
			return nil, err
		}
		p.Spellings = append(p.Spellings, s)
	}
	return p, nil
}

// Count returns how many tuples All yields, without enumerating them. The
// result saturates at math.MaxInt.
func (p *Phrase) Count() int {
	if len(p.Spellings) == 0 {
		return 0
	}
	for _, s := range p.Spellings {
		if len(s) == 0 {
			return 0
		}
	}

	n := 1
	for _, s := range p.Spellings {
		if n > math.MaxInt/len(s) {
			return math.MaxInt
		}
		n *= len(s)
	}
	return n
}

// All yields the Cartesian product of the words' spellings, first word
// varying slowest.
func (p *Phrase) All() iter.Seq[[]string] {
	return Product(p.Spellings)
}

// SpellingsForPhrase splits phrase on whitespace and returns the lazy
// Cartesian product of the words' spellings, first word varying slowest.
// Each tuple holds one spelling per word. A phrase without words yields no
// tuples.
func (e *Engine) SpellingsForPhrase(phrase string) (iter.Seq[[]string], error) {
	p, err := e.SpellPhrase(phrase)
	if err != nil {
		return nil, err
	}
	return p.All(), nil
}

// Count returns how many tuples SpellingsForPhrase would yield for phrase.
func (e *Engine) Count(phrase string) (int, error) {
	p, err := e.SpellPhrase(phrase)
	if err != nil {
		return 0, err
	}
	return p.Count(), nil
}

// SpellingsForWord spells word with a strict engine.
func SpellingsForWord(word string) ([]string, error) {
	return defaultEngine.SpellingsForWord(word)
}

// SpellingsForPhrase spells phrase with a strict engine.
func SpellingsForPhrase(phrase string) (iter.Seq[[]string], error) {
	return defaultEngine.SpellingsForPhrase(phrase)
}

// Unique collects seq, keeping the first occurrence of each string.
func Unique(seq iter.Seq[string]) []string {
	seen := make(map[string]struct{})
	var out []string
	for s := range seq {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Product yields the Cartesian product of sets in row-major order: the last
// set varies fastest. Each yielded slice is freshly allocated. Zero sets, or
// any empty set, yield nothing.
func Product(sets [][]string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if len(sets) == 0 {
			return
		}
		for _, s := range sets {
			if len(s) == 0 {
				return
			}
		}

		idx := make([]int, len(sets))
		for {
			tuple := make([]string, len(sets))
			for i, j := range idx {
				tuple[i] = sets[i][j]
			}
			if !yield(tuple) {
				return
			}

			k := len(idx) - 1
			for ; k >= 0; k-- {
				idx[k]++
				if idx[k] < len(sets[k]) {
					break
				}
				idx[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// Join renders a phrase tuple for display.
func Join(tuple []string) string {
	return strings.Join(tuple, " ")
}
