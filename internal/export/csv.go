package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes one row per spelling: phrase, note, rank, spelling
func (e *Exporter) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"Phrase", "Note", "Rank", "Spelling"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, r := range e.results {
		for i, v := range r.Variants {
			record := []string{r.Phrase, r.Note, strconv.Itoa(i + 1), v}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
