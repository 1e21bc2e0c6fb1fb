package app

import (
	"fmt"
	"io"

	"github.com/bft-labs/tabsum/internal/ports"
	"github.com/bft-labs/tabsum/pkg/log"
)

// ReportConfig controls which views are printed.
type ReportConfig struct {
	SampleSize  int
	PreviewRows int
	NoPreview   bool
}

// Reporter reads a mapping and prints every configured view of it.
type Reporter struct {
	config  ReportConfig
	reader  ports.TableReader
	printer ports.SummaryPrinter
	out     io.Writer
	logger  log.Logger
}

// NewReporter creates a Reporter. Section headings are written to out.
func NewReporter(
	config ReportConfig,
	reader ports.TableReader,
	printer ports.SummaryPrinter,
	out io.Writer,
	logger log.Logger,
) *Reporter {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Reporter{
		config:  config,
		reader:  reader,
		printer: printer,
		out:     out,
		logger:  logger,
	}
}

// Run reads path and prints the preview, the overview, the category
// breakdown and the sorted category list. If the table cannot be read,
// nothing is printed and the read error is returned.
func (r *Reporter) Run(path string) error {
	table, err := r.reader.ReadFile(path)
	if err != nil {
		return err
	}

	if !r.config.NoPreview {
		if err := r.section("First rows", func() error {
			return r.printer.Preview(table, r.config.PreviewRows)
		}); err != nil {
			return err
		}
		if err := r.section("Overview", func() error {
			return r.printer.Overview(table)
		}); err != nil {
			return err
		}
	}

	if err := r.section("Category Summary with Samples", func() error {
		return r.printer.CategoryBreakdown(table, r.config.SampleSize)
	}); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(r.out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := r.printer.SortedCategoryList(table); err != nil {
		return fmt.Errorf("print sorted category list: %w", err)
	}

	r.logger.Debug("report printed", log.String("path", path), log.Int("records", table.Len()))
	return nil
}

func (r *Reporter) section(title string, print func() error) error {
	if _, err := fmt.Fprintf(r.out, "\n--- %s ---\n", title); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := print(); err != nil {
		return fmt.Errorf("print %s: %w", title, err)
	}
	return nil
}
