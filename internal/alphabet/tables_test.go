package alphabet

import (
	"errors"
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{'ا', Vowel},
		{'و', Vowel},
		{'ی', Vowel},
		{'ب', Consonant},
		{'ژ', Consonant},
		{'ع', Consonant},
		{'آ', Other},
		{'a', Other},
		{' ', Other},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := Classify(tt.r); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestGlidesAreBothVowelAndConsonant(t *testing.T) {
	for _, r := range []rune{Vav, Ye} {
		if !IsVowel(r) || !IsConsonant(r) {
			t.Errorf("%q should be in both the vowel and the consonant set", r)
		}
	}
	if IsConsonant(Alef) {
		t.Error("alef must not be a consonant")
	}
}

func TestTableSizes(t *testing.T) {
	if got := len(Consonants()); got != 31 {
		t.Errorf("len(Consonants()) = %d, want 31", got)
	}
	if got := len(Vowels()); got != 3 {
		t.Errorf("len(Vowels()) = %d, want 3", got)
	}
	for _, r := range Consonants() {
		s := MustConsonantSpellings(r)
		if len(s) < 1 || len(s) > 3 {
			t.Errorf("%q has %d spellings", r, len(s))
		}
	}
}

func TestConsonantSpellings(t *testing.T) {
	tests := []struct {
		r    rune
		want []string
	}{
		{'ب', []string{"b"}},
		{'چ', []string{"ch"}},
		{'ژ', []string{"zh", "j"}},
		{'ع', []string{""}},
		{'غ', []string{"gh", "q"}},
		{'ق', []string{"gh", "q"}},
		{'و', []string{"v"}},
		{'ی', []string{"y"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got, err := ConsonantSpellings(tt.r)
			if err != nil {
				t.Fatalf("ConsonantSpellings(%q) error: %v", tt.r, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ConsonantSpellings(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestVowelSpellings(t *testing.T) {
	tests := []struct {
		r    rune
		want []string
	}{
		{'ا', []string{"a"}},
		{'و', []string{"oo", "o", "ou"}},
		{'ی', []string{"i", "ee"}},
	}

	for _, tt := range tests {
		got, err := VowelSpellings(tt.r)
		if err != nil {
			t.Fatalf("VowelSpellings(%q) error: %v", tt.r, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("VowelSpellings(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestSpellingsReturnCopy(t *testing.T) {
	got, _ := ConsonantSpellings('ق')
	got[0] = "xx"
	if again := MustConsonantSpellings('ق'); again[0] != "gh" {
		t.Errorf("table was modified through returned slice: %v", again)
	}
}

func TestDomainErrors(t *testing.T) {
	if _, err := ConsonantSpellings('ا'); !errors.Is(err, ErrUnknownGrapheme) {
		t.Errorf("ConsonantSpellings(alef) error = %v, want ErrUnknownGrapheme", err)
	}
	if _, err := VowelSpellings('ب'); !errors.Is(err, ErrUnknownGrapheme) {
		t.Errorf("VowelSpellings(be) error = %v, want ErrUnknownGrapheme", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustVowelSpellings did not panic")
		}
		var ge *GraphemeError
		if err, ok := r.(error); !ok || !errors.As(err, &ge) || ge.Grapheme != 'x' {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	MustVowelSpellings('x')
}

func TestIsForbiddenCluster(t *testing.T) {
	tests := []struct {
		pair string
		want bool
	}{
		{"bp", true},
		{"tj", true},
		{"t", true},
		{"chkh", true},
		{"dr", true},
		{"rd", false},
		{"st", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsForbiddenCluster(tt.pair); got != tt.want {
			t.Errorf("IsForbiddenCluster(%q) = %v, want %v", tt.pair, got, tt.want)
		}
	}
}

func TestForbiddenClustersDeduplicated(t *testing.T) {
	list := ForbiddenClusters()
	seen := make(map[string]bool)
	for i, pair := range list {
		if seen[pair] {
			t.Errorf("duplicate pair %q", pair)
		}
		seen[pair] = true
		if i > 0 && list[i-1] > pair {
			t.Errorf("list not sorted at %d: %q > %q", i, list[i-1], pair)
		}
	}
	if len(list) >= len(forbiddenClusterList) {
		t.Errorf("expected duplicates in the source list to collapse, got %d of %d", len(list), len(forbiddenClusterList))
	}
}
