package alphabet

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain persian", "سلام", "سلام"},
		{"arabic yeh and kaf", "كتاب علي", "کتاب علی"},
		{"teh marbuta", "مدرسة", "مدرسه"},
		{"combining madda composes", "\u0627\u0653\u0628", "\u0622\u0628"},
		{"harakat stripped", "\u06a9\u0650\u062a\u0627\u0628", "کتاب"},
		{"zwnj stripped", "\u0645\u06cc\u200c\u0631\u0648\u0645", "میروم"},
		{"tatweel stripped", "\u0633\u0640\u0644\u0627\u0645", "سلام"},
		{"hamza on alef", "أب", "اب"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("سلام"); err != nil {
		t.Errorf("Validate(سلام) = %v", err)
	}
	if err := Validate("آب"); err != nil {
		t.Errorf("Validate(آب) = %v", err)
	}

	err := Validate("بxد")
	var ge *GraphemeError
	if !errors.As(err, &ge) {
		t.Fatalf("Validate(بxد) = %v, want *GraphemeError", err)
	}
	if ge.Grapheme != 'x' || ge.Index != 1 {
		t.Errorf("got grapheme %q at %d, want 'x' at 1", ge.Grapheme, ge.Index)
	}
	if !errors.Is(err, ErrUnknownGrapheme) {
		t.Error("GraphemeError should unwrap to ErrUnknownGrapheme")
	}
}

func TestFilter(t *testing.T) {
	if got := Filter("ب1x د"); got != "بد" {
		t.Errorf("Filter = %q, want %q", got, "بد")
	}
}
