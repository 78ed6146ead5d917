// Package pdf prints the stock, shift and sales reports and the charts as A4
// PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/tillbook"
	"github.com/etnz/tillbook/chart"
	"github.com/etnz/tillbook/date"
	"github.com/go-pdf/fpdf"
)

const (
	font       = "Helvetica"
	lineHeight = 7.0
	pageWidth  = 210.0
	margin     = 10.0
)

// document wraps fpdf with the few layouts the reports need.
type document struct {
	*fpdf.Fpdf
	tr       func(string) string
	currency string
}

func newDocument(title, currency string) *document {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetTitle(title, true)
	p.SetMargins(margin, margin, margin)
	p.SetAutoPageBreak(true, margin)
	p.AddPage()
	return &document{Fpdf: p, tr: p.UnicodeTranslatorFromDescriptor(""), currency: currency}
}

func (d *document) title(s string) {
	d.SetFont(font, "B", 14)
	d.CellFormat(0, 10, d.tr(s), "", 1, "L", false, 0, "")
	d.SetFont(font, "", 11)
}

func (d *document) heading(s string) {
	d.Ln(3)
	d.SetFont(font, "B", 12)
	d.CellFormat(0, 8, d.tr(s), "", 1, "L", false, 0, "")
	d.SetFont(font, "", 10)
}

func (d *document) line(s string) {
	d.CellFormat(0, lineHeight, d.tr(s), "", 1, "L", false, 0, "")
}

func (d *document) money(m tillbook.Money) string { return m.Format(d.currency) }

// table draws a grid with a shaded header. widths are in mm; columns after
// the first are right aligned.
func (d *document) table(widths []float64, header []string, rows [][]string) {
	d.SetFont(font, "B", 10)
	d.SetFillColor(230, 230, 230)
	for i, h := range header {
		d.CellFormat(widths[i], lineHeight, d.tr(h), "1", 0, "C", true, 0, "")
	}
	d.Ln(-1)
	d.SetFont(font, "", 10)
	for _, row := range rows {
		for i, c := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			d.CellFormat(widths[i], lineHeight, d.tr(c), "1", 0, align, false, 0, "")
		}
		d.Ln(-1)
	}
}

func (d *document) write(w io.Writer) error {
	if err := d.Output(w); err != nil {
		return fmt.Errorf("cannot write pdf: %w", err)
	}
	return nil
}

// Stock prints the stock items with their total value, then the closing
// history, newest first.
func Stock(w io.Writer, b *tillbook.Book, currency string, on date.Date) error {
	d := newDocument("Stock Report", currency)
	d.title("Stock Report")
	d.line("Date: " + on.String())

	d.heading("Items")
	var rows [][]string
	for _, it := range b.Stock.Items() {
		last := "N/A"
		if it.LastClosing != nil {
			last = it.LastClosing.String()
		}
		rows = append(rows, []string{it.Name, it.Quantity.String(), d.money(it.UnitPrice), last, d.money(it.Value())})
	}
	d.table([]float64{60, 30, 35, 30, 35}, []string{"Item", "Opening", "Unit Price", "Closing", "Value"}, rows)
	s := b.Summary()
	d.Ln(2)
	d.line(fmt.Sprintf("Items: %d    Total value: %s", s.Items, d.money(s.StockValue)))

	d.heading("Working out (newest first)")
	rows = nil
	for _, h := range b.Stock.NewestFirst() {
		rows = append(rows, []string{
			h.Item, h.Date.String(), h.Opening.String(), h.Closing.String(), h.Consumed.String(),
			d.money(h.ValueOpening), d.money(h.ValueClosing),
		})
	}
	d.table([]float64{40, 25, 20, 20, 22, 31, 32}, []string{"Item", "Date", "Opening", "Closing", "Consumed", "Value open", "Value close"}, rows)
	return d.write(w)
}

// Shift prints the latest shift reconciliation, one field per line.
func Shift(w io.Writer, r tillbook.ShiftReport, currency string) error {
	d := newDocument("Shift Report", currency)
	d.title("End-of-Shift Cash Reconciliation")
	for _, l := range [][2]string{
		{"Date", r.Date.String()},
		{"Shift", r.Shift},
		{"Employee", r.Employee},
		{"Opening Cash (Float)", d.money(r.OpeningCash)},
		{"Total Cash Receipts/Sales", d.money(r.Sales)},
		{"Total Cash Disbursements/Payments", d.money(r.Payments)},
		{"Expected Cash on Hand", d.money(r.ExpectedCash)},
		{"Actual Cash on Hand", d.money(r.ActualCash)},
		{"Variance", d.money(r.Variance)},
		{"Notes/Comments", "____________________________"},
	} {
		d.SetFont(font, "B", 11)
		d.CellFormat(80, lineHeight, d.tr(l[0]+":"), "", 0, "L", false, 0, "")
		d.SetFont(font, "", 11)
		d.CellFormat(0, lineHeight, d.tr(l[1]), "", 1, "L", false, 0, "")
	}
	return d.write(w)
}

// Sales prints the sales sheet as a grid followed by the totals.
func Sales(w io.Writer, s *tillbook.SalesSheet, currency string, on date.Date) error {
	d := newDocument("Sales Sheet", currency)
	d.title("End-of-Shift Sales Sheet")
	d.line("Date: " + on.String())
	d.Ln(2)
	var rows [][]string
	for _, l := range s.Lines() {
		rows = append(rows, []string{
			l.Product, l.OpeningStock.String(), l.QuantitySold.String(), l.ClosingStock().String(),
			d.money(l.Price), d.money(l.Revenue()),
		})
	}
	t := s.Totals()
	rows = append(rows, []string{"Total", t.Opening.String(), t.Sold.String(), t.Closing.String(), "", d.money(t.Revenue)})
	d.table([]float64{55, 25, 25, 25, 30, 30}, []string{"Product", "Opening", "Sold", "Closing", "Price", "Revenue"}, rows)

	d.heading("Summary")
	d.line(fmt.Sprintf("Products: %d", s.Len()))
	d.line(fmt.Sprintf("Units sold: %s", t.Sold))
	d.line(fmt.Sprintf("Total revenue: %s", d.money(t.Revenue)))
	return d.write(w)
}

// Charts places each image under the previous one, starting a new page when
// the next image does not fit.
func Charts(w io.Writer, images []chart.Image) error {
	d := newDocument("Charts", tillbook.DefaultCurrency)
	d.title("Charts")
	width := pageWidth - 2*margin
	height := width * chart.Height / chart.Width
	_, pageHeight := d.GetPageSize()
	for i, img := range images {
		if d.GetY()+height+lineHeight > pageHeight-margin {
			d.AddPage()
		}
		d.heading(img.Title)
		name := fmt.Sprintf("chart-%d", i)
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		d.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.PNG))
		d.ImageOptions(name, margin, d.GetY(), width, height, true, opts, 0, "")
	}
	return d.write(w)
}
