package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/tillbook"
	"github.com/etnz/tillbook/chart"
	"github.com/etnz/tillbook/date"
	"github.com/etnz/tillbook/pdf"
	"github.com/etnz/tillbook/renderer"
	"github.com/etnz/tillbook/spreadsheet"
	"github.com/google/subcommands"
)

var errNoShift = errors.New("no shift report to export, run tb shift generate first")

func exportGroup() *group {
	return &group{
		name:     "export",
		synopsis: "export the book to spreadsheets, PDF, Word and PNG files",
		commands: []subcommands.Command{
			&exportCmd{name: "workbook", synopsis: "export every record to a workbook", output: "AllRecords.xlsx",
				write: toFile(func(w io.Writer, b *tillbook.Book, _ string) error { return spreadsheet.WriteWorkbook(w, b) })},
			&exportCmd{name: "stock-xlsx", synopsis: "export the stock and its history to a workbook", output: "StockReport.xlsx",
				write: toFile(func(w io.Writer, b *tillbook.Book, _ string) error { return spreadsheet.WriteStockWorkbook(w, b) })},
			&exportCmd{name: "stock-pdf", synopsis: "export the stock report to PDF", output: "StockReport.pdf",
				write: toFile(func(w io.Writer, b *tillbook.Book, cur string) error { return pdf.Stock(w, b, cur, date.Today()) })},
			&exportCmd{name: "shift-pdf", synopsis: "export the latest shift report to PDF", output: "Shift_Report.pdf",
				write: toFile(writeShiftPDF)},
			&exportCmd{name: "shift-doc", synopsis: "export the latest shift report to a Word document", output: "Shift_Report.doc",
				write: toFile(writeShiftWord)},
			&exportCmd{name: "charts", synopsis: "export the pie charts as PNG files", output: "charts",
				write: writeChartDir},
			&exportCmd{name: "charts-pdf", synopsis: "export the pie charts to PDF", output: "AllCharts.pdf",
				write: toFile(writeChartsPDF)},
			&exportCmd{name: "sales-pdf", synopsis: "export the sales sheet to PDF", output: "StockPro_EndOfShift_Report.pdf",
				write: toFile(func(w io.Writer, b *tillbook.Book, cur string) error { return pdf.Sales(w, b.Sales, cur, date.Today()) })},
		},
	}
}

// exportCmd writes the book to an output file or directory.
type exportCmd struct {
	name     string
	synopsis string
	output   string
	write    func(b *tillbook.Book, currency, out string) error

	out string
}

func (c *exportCmd) Name() string     { return c.name }
func (c *exportCmd) Synopsis() string { return c.synopsis }
func (c *exportCmd) Usage() string {
	return fmt.Sprintf("tb export %s [-o <output>]\n\n  %s. Defaults to %s.\n", c.name, c.synopsis, c.output)
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", c.output, "Output path.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.out == "" {
		failf("-o cannot be empty.")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := c.write(book, currencyCode(), c.out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Exported %s to %s\n", c.name, c.out)
	return subcommands.ExitSuccess
}

// toFile adapts a writer based export to a file output.
func toFile(write func(w io.Writer, b *tillbook.Book, currency string) error) func(*tillbook.Book, string, string) error {
	return func(b *tillbook.Book, currency, out string) (err error) {
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		return write(file, b, currency)
	}
}

func writeShiftPDF(w io.Writer, b *tillbook.Book, currency string) error {
	if b.Shift.IsZero() {
		return errNoShift
	}
	return pdf.Shift(w, b.Shift, currency)
}

func writeShiftWord(w io.Writer, b *tillbook.Book, currency string) error {
	if b.Shift.IsZero() {
		return errNoShift
	}
	doc, err := renderer.ShiftWord(b.Shift, currency)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

func writeChartsPDF(w io.Writer, b *tillbook.Book, _ string) error {
	images, err := chart.Book(b)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return chart.ErrEmpty
	}
	return pdf.Charts(w, images)
}

// writeChartDir writes one PNG file per chart in the out directory.
func writeChartDir(b *tillbook.Book, _ string, out string) error {
	images, err := chart.Book(b)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return chart.ErrEmpty
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	for _, img := range images {
		if err := os.WriteFile(filepath.Join(out, img.Name), img.PNG, 0o644); err != nil {
			return fmt.Errorf("cannot write chart %q: %w", img.Title, err)
		}
	}
	return nil
}
