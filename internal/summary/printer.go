package summary

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bft-labs/tabsum/internal/tabs"
)

const (
	// DefaultSampleSize is used when a non-positive sample size is requested.
	DefaultSampleSize = 3

	// DefaultPreviewRows is used when a non-positive preview length is requested.
	DefaultPreviewRows = 5

	ruleWidth    = 60
	maxCellRunes = 48
)

// Printer writes summaries of a table to an output stream. It holds no state
// between calls, so each view can be printed independently.
type Printer struct {
	out  io.Writer
	seed uint64
}

// NewPrinter creates a Printer writing to out and sampling with seed.
func NewPrinter(out io.Writer, seed uint64) *Printer {
	return &Printer{out: out, seed: seed}
}

// CategoryBreakdown prints each category, most populous first, followed by up
// to sampleSize sampled rows rendered as "title | domain". Categories are
// separated by a blank line.
func (p *Printer) CategoryBreakdown(t *tabs.Table, sampleSize int) error {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	w := &lineWriter{w: p.out}
	for _, g := range ByFrequency(t) {
		w.printf("%s: %d tabs\n", g.Label, len(g.Records))
		for _, r := range Sample(g.Records, sampleSize, p.seed) {
			w.printf("    - %s | %s\n", orDefault(r.Title, "No title"), orDefault(r.Domain, "No domain"))
		}
		w.printf("\n")
	}
	return w.err
}

// SortedCategoryList prints every category with its count in label order,
// then the grand total.
func (p *Printer) SortedCategoryList(t *tabs.Table) error {
	counts := SortedCounts(t)

	w := &lineWriter{w: p.out}
	w.printf("%s\n", strings.Repeat("=", ruleWidth))
	w.printf("SORTED CATEGORY LIST\n")
	w.printf("%s\n", strings.Repeat("=", ruleWidth))
	for _, c := range counts {
		w.printf("%s: %d tabs\n", c.Label, c.Count)
	}
	w.printf("%s\n", strings.Repeat("-", ruleWidth))
	w.printf("TOTAL: %d tabs across %d categories\n", t.Len(), len(counts))
	w.printf("%s\n", strings.Repeat("=", ruleWidth))
	return w.err
}

// Preview prints the first n records as aligned columns.
func (p *Printer) Preview(t *tabs.Table, n int) error {
	if n <= 0 {
		n = DefaultPreviewRows
	}
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	w := &lineWriter{w: tw}

	w.printf("\t%s\n", strings.Join(tabs.Columns[:], "\t"))
	for i, r := range t.Head(n) {
		cells := make([]string, tabs.NumFields)
		for j := range cells {
			cells[j] = truncate(orDefault(r.Field(j), "-"), maxCellRunes)
		}
		w.printf("%d\t%s\n", i, strings.Join(cells, "\t"))
	}
	if w.err != nil {
		return w.err
	}
	return tw.Flush()
}

// Overview prints the record count and the number of non-empty values per
// column.
func (p *Printer) Overview(t *tabs.Table) error {
	var nonEmpty [tabs.NumFields]int
	for _, r := range t.Records() {
		for j := range nonEmpty {
			if r.Field(j) != "" {
				nonEmpty[j]++
			}
		}
	}

	w := &lineWriter{w: p.out}
	w.printf("Source: %s\n", t.Source())
	w.printf("Records: %d\n", t.Len())
	if t.Skipped() > 0 {
		w.printf("Skipped lines: %d\n", t.Skipped())
	}
	if w.err != nil {
		return w.err
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	cw := &lineWriter{w: tw}
	cw.printf("Column\tNon-empty\n")
	for j, name := range tabs.Columns {
		cw.printf("%s\t%s\n", name, strconv.Itoa(nonEmpty[j]))
	}
	if cw.err != nil {
		return cw.err
	}
	return tw.Flush()
}

// lineWriter keeps the first write error so callers can check it once.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
