package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/fenglish/internal"
	"codeberg.org/snonux/fenglish/internal/batch"
	"codeberg.org/snonux/fenglish/internal/cli"
	"codeberg.org/snonux/fenglish/internal/export"
	"codeberg.org/snonux/fenglish/internal/fenglish"
)

// Prompt is printed before each line in interactive mode
const Prompt = "persian> "

// Processor handles the main phrase processing logic
type Processor struct {
	flags    *cli.Flags
	engine   *fenglish.Engine
	exporter *export.Exporter
	log      *zap.SugaredLogger
	out      io.Writer
	shown    int
}

// NewProcessor creates a new phrase processor writing results to out
func NewProcessor(flags *cli.Flags, log *zap.SugaredLogger, out io.Writer) *Processor {
	return &Processor{
		flags:    flags,
		engine:   fenglish.New(fenglish.Options{Strict: flags.Strict, Memoize: true}),
		exporter: export.NewExporter(internal.GenerateRunID(flags.BatchFile + time.Now().String())),
		log:      log,
		out:      out,
	}
}

// ProcessPhrase spells a phrase, prints the result and keeps it for export
func (p *Processor) ProcessPhrase(phrase, note string) (export.Result, error) {
	start := time.Now()

	spelled, err := p.engine.SpellPhrase(phrase)
	if err != nil {
		return export.Result{}, fmt.Errorf("invalid phrase '%s': %w", phrase, err)
	}

	result := export.Result{
		Phrase: phrase,
		Note:   note,
		Total:  spelled.Count(),
	}

	if !p.flags.CountOnly {
		for tuple := range spelled.All() {
			if p.flags.Limit > 0 && len(result.Variants) >= p.flags.Limit {
				break
			}
			result.Variants = append(result.Variants, fenglish.Join(tuple))
		}
	}

	p.log.Debugw("spelled phrase",
		"phrase", phrase,
		"words", len(spelled.Words),
		"spellings", result.Total,
		"shown", len(result.Variants),
		"elapsed", time.Since(start),
	)
	if p.flags.Limit > 0 && result.Total > p.flags.Limit && !p.flags.CountOnly {
		p.log.Infow("output truncated", "phrase", phrase, "limit", p.flags.Limit, "total", result.Total)
	}

	p.exporter.Add(result)

	if err := p.print(result); err != nil {
		return result, err
	}
	return result, nil
}

func (p *Processor) print(result export.Result) error {
	defer func() { p.shown++ }()

	if p.flags.CountOnly {
		_, err := fmt.Fprintf(p.out, "%s\t%d\n", result.Phrase, result.Total)
		return err
	}

	// Separate consecutive results when each spelling gets its own line
	if p.shown > 0 && p.flags.Format == export.StyleLines {
		if _, err := fmt.Fprintln(p.out); err != nil {
			return err
		}
	}
	return export.Render(p.out, result, p.flags.Format)
}

// ProcessBatch processes every phrase of the batch file. Phrases that fail
// are logged and skipped.
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		p.log.Debugw("processing", "index", i+1, "of", len(entries), "phrase", entry.Phrase)

		if _, err := p.ProcessPhrase(entry.Phrase, entry.Note); err != nil {
			p.log.Errorw("failed to process phrase", "line", entry.Line, "phrase", entry.Phrase, "error", err)
			errorCount++
			continue
		}
		processedCount++
	}

	p.log.Infow("batch finished",
		"file", p.flags.BatchFile,
		"total", len(entries),
		"processed", processedCount,
		"errors", errorCount,
		"cached_words", p.engine.Cache().Len(),
	)

	if processedCount == 0 && errorCount > 0 {
		return fmt.Errorf("no phrase in %s could be processed (%d errors)", p.flags.BatchFile, errorCount)
	}
	return nil
}

// RunInteractive reads phrases from in, one per line, until EOF, "exit" or
// cancellation of ctx. Invalid phrases are reported and the loop continues.
// Cancellation returns at once even while a read is pending; the reading
// goroutine then exits with the next line or when in is closed.
func (p *Processor) RunInteractive(ctx context.Context, in io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines, reader := readLines(in)
	defer close(reader.done)

	for {
		if _, err := fmt.Fprint(p.out, Prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(p.out)
				return reader.err
			}
			line = strings.TrimSpace(l)
		}

		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if _, err := p.ProcessPhrase(line, ""); err != nil {
			p.log.Warnw("skipping phrase", "phrase", line, "error", err)
			fmt.Fprintf(p.out, "error: %v\n", err)
		}
	}
}

// lineReader tells the reading goroutine to stop and carries its final
// scanner error, which is set before the lines channel is closed.
type lineReader struct {
	done chan struct{}
	err  error
}

// readLines scans in on its own goroutine so that callers can select on
// the lines alongside a context.
func readLines(in io.Reader) (<-chan string, *lineReader) {
	lines := make(chan string)
	r := &lineReader{done: make(chan struct{})}

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-r.done:
				return
			}
		}
		r.err = scanner.Err()
	}()

	return lines, r
}

// Results returns everything processed so far
func (p *Processor) Results() []export.Result {
	return p.exporter.Results()
}

// Export writes the collected results to the export file, if one was
// requested, and returns its path
func (p *Processor) Export() (string, error) {
	if p.flags.ExportFile == "" {
		return "", nil
	}

	path := cli.ResolveExportPath(p.flags.OutputDir, p.exportName())

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := p.exporter.Write(path); err != nil {
		return "", fmt.Errorf("export to %s failed: %w", path, err)
	}

	p.log.Infow("exported results", "path", path, "phrases", len(p.exporter.Results()))
	return path, nil
}

// exportName expands a bare format name such as "csv" into a file name
// derived from the batch file or the first phrase
func (p *Processor) exportName() string {
	name := p.flags.ExportFile
	switch export.Format(strings.ToLower(name)) {
	case export.FormatCSV, export.FormatSQLite, export.FormatXLSX:
	default:
		return name
	}

	base := "fenglish"
	if p.flags.BatchFile != "" {
		base = strings.TrimSuffix(filepath.Base(p.flags.BatchFile), filepath.Ext(p.flags.BatchFile))
	} else if results := p.exporter.Results(); len(results) > 0 {
		base = results[0].Phrase
	}

	return internal.SanitizeFilename(base) + "." + strings.ToLower(name)
}
