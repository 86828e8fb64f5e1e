package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Result holds the spellings generated for one phrase
type Result struct {
	Phrase   string   // The Persian phrase as given
	Note     string   // Optional note from the batch file
	Variants []string // Spellings, possibly truncated to the display limit
	Total    int      // Number of spellings before truncation
}

// Format is an export file format
type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
	FormatXLSX   Format = "xlsx"
)

// FormatFromPath picks the export format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".sqlite", ".sqlite3", ".db":
		return FormatSQLite, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export file extension: %q", filepath.Ext(path))
	}
}

// Exporter collects results and writes them in one of the export formats
type Exporter struct {
	runID   string
	results []Result
}

// NewExporter creates an exporter; runID tags rows written to SQLite
func NewExporter(runID string) *Exporter {
	return &Exporter{
		runID:   runID,
		results: make([]Result, 0),
	}
}

// Add appends a result
func (e *Exporter) Add(r Result) {
	e.results = append(e.results, r)
}

// Results returns the collected results
func (e *Exporter) Results() []Result {
	return e.results
}

// Write writes all results to path in the format implied by its extension
func (e *Exporter) Write(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		return e.WriteCSV(path)
	case FormatSQLite:
		return e.WriteSQLite(path)
	case FormatXLSX:
		return e.WriteXLSX(path)
	}
	return nil
}
