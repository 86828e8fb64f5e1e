package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Display styles for Render
const (
	StyleLines = "lines"
	StyleList  = "list"
	StyleJSON  = "json"
)

type jsonResult struct {
	Phrase    string   `json:"phrase"`
	Note      string   `json:"note,omitempty"`
	Total     int      `json:"total"`
	Spellings []string `json:"spellings"`
}

// Render writes r to w in the given style: one spelling per line, a single
// "phrase: a, b, c" line, or one JSON object per line
func Render(w io.Writer, r Result, style string) error {
	var err error
	switch style {
	case StyleList:
		_, err = fmt.Fprintf(w, "%s: %s\n", r.Phrase, strings.Join(r.Variants, ", "))
	case StyleJSON:
		variants := r.Variants
		if variants == nil {
			variants = []string{}
		}
		err = json.NewEncoder(w).Encode(jsonResult{
			Phrase:    r.Phrase,
			Note:      r.Note,
			Total:     r.Total,
			Spellings: variants,
		})
	default:
		for _, v := range r.Variants {
			if _, err = fmt.Fprintln(w, v); err != nil {
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
