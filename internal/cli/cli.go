// Package cli implements zsample's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsample/internal/customer"
	"github.com/zarlcorp/zsample/internal/sheet"
	"golang.org/x/term"
)

// ErrInvalidFile is returned by CmdCheck when the workbook fails validation.
var ErrInvalidFile = errors.New("file failed validation")

// GenerateOptions controls one generate run.
type GenerateOptions struct {
	Count   int
	Output  string
	Seed    uint64
	HasSeed bool
	JSON    bool
	Now     func() time.Time
}

// NewGenerator builds a customer generator from the seed settings.
func NewGenerator(seed uint64, hasSeed bool, now func() time.Time) *customer.Generator {
	var opts []customer.Option
	if hasSeed {
		opts = append(opts, customer.WithSeed(seed))
	}
	if now != nil {
		opts = append(opts, customer.WithClock(now))
	}
	return customer.New(opts...)
}

// CmdGenerate generates a batch and writes it as a spreadsheet, or as JSON
// to w when opts.JSON is set.
func CmdGenerate(ctx context.Context, w io.Writer, opts GenerateOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	g := NewGenerator(opts.Seed, opts.HasSeed, now)
	if !opts.JSON {
		fmt.Fprintf(w, "generating %d sample customers...\n", opts.Count)
	}

	records, err := g.Batch(opts.Count)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	slog.Debug("batch generated", "count", len(records), "seed", g.Seed())

	if opts.JSON {
		return printJSON(w, records)
	}

	meta := sheet.NewMeta(g.Seed(), now())
	if err := sheet.WriteFile(opts.Output, records, meta); err != nil {
		return err
	}
	slog.Debug("workbook written", "path", opts.Output, "batch", meta.BatchID)

	PrintSummary(w, opts.Output, customer.Summarize(records), g.Seed())
	PrintGuide(w)
	return nil
}

// CmdCheck reads a workbook and validates every row. The consent window is
// anchored at the workbook's creation time when recorded, else now.
func CmdCheck(w io.Writer, path string, now time.Time) error {
	records, meta, err := sheet.ReadFile(path)
	if err != nil {
		return err
	}

	ref := now
	if !meta.Created.IsZero() {
		ref = meta.Created
	}
	slog.Debug("checking workbook", "path", path, "rows", len(records), "batch", meta.BatchID)

	if err := customer.ValidateBatch(records, ref); err != nil {
		fmt.Fprintf(w, "%s\n", err)
		return fmt.Errorf("%s: %w", path, ErrInvalidFile)
	}

	PrintSummary(w, path, customer.Summarize(records), meta.Seed)
	fmt.Fprintln(w, "\nall rows valid")
	return nil
}

// PrintSummary writes the human-readable batch report.
func PrintSummary(w io.Writer, path string, s customer.Summary, seed uint64) {
	heading := headingFunc(w)

	fmt.Fprintf(w, "\n%s\n", heading(fmt.Sprintf("%d customers", s.Total)))
	line(w, "file", path)
	fmt.Fprintf(w, "\n%s\n", heading("summary"))
	line(w, "total customers", s.Total)
	line(w, "with email", s.WithEmail)
	line(w, "with consent date", s.WithConsent)
	line(w, "unique phone numbers", s.UniquePhones)
	line(w, "seed", seed)
}

// PrintGuide explains the columns and how to use the file.
func PrintGuide(w io.Writer) {
	heading := headingFunc(w)

	fmt.Fprintf(w, "\n%s\n", heading("column format"))
	fmt.Fprintln(w, "  name:          customer full name")
	fmt.Fprintln(w, "  phoneE164:     10-digit phone number (converted to +91XXXXXXXXXX on upload)")
	fmt.Fprintln(w, "  email:         email address (optional)")
	fmt.Fprintln(w, "  whatsappE164:  whatsapp number (optional, defaults to phoneE164)")
	fmt.Fprintln(w, "  tags:          comma-separated tags (optional)")
	fmt.Fprintln(w, "  consentAt:     ISO date YYYY-MM-DD (optional)")

	fmt.Fprintf(w, "\n%s\n", heading("usage"))
	fmt.Fprintln(w, "  1. open the file and review the data")
	fmt.Fprintln(w, "  2. use the bulk upload feature in the CRM")
	fmt.Fprintln(w, "  3. select this file for upload")
	fmt.Fprintln(w, "  4. phone numbers are converted to E.164 on import")
}

func line(w io.Writer, label string, v any) {
	fmt.Fprintf(w, "  %-22s %v\n", label+":", v)
}

// headingFunc styles headings only when w is a terminal.
func headingFunc(w io.Writer) func(string) string {
	if isTerminal(w) {
		return func(s string) string { return zstyle.Title.Render(s) }
	}
	return func(s string) string { return s + ":" }
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
