package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tillbook"
	md "github.com/nao1215/markdown"
)

// StockMarkdown renders the stock items and the stock summary. With
// workingOut it also renders the closings of every item, newest first.
func StockMarkdown(s *tillbook.Stock, currency string, workingOut bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Stock")

	items := s.Items()
	if len(items) == 0 {
		doc.PlainText("No stock items yet.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Item", "Opening (current)", "Unit Price", "Closing (last)", "Value"},
		Rows:      [][]string{},
	}
	for _, it := range items {
		last := "N/A"
		if it.LastClosing != nil {
			last = it.LastClosing.String()
		}
		table.Rows = append(table.Rows, []string{
			it.Name, it.Quantity.String(), it.UnitPrice.Format(currency), last, it.Value().Format(currency),
		})
	}
	doc.Table(table)

	doc.H2("Summary")
	doc.PlainText(fmt.Sprintf("Items: %d, total stock value: %s", len(items), s.TotalValue().Format(currency)))

	groups := s.HistoryByItem()
	if !workingOut || len(groups) == 0 {
		return doc.String()
	}
	doc.H2("Working Out")
	for _, g := range groups {
		doc.H3(g.Item)
		t := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Date", "Opening", "Closing", "Consumed", "Value Opening", "Value Closing"},
			Rows:      [][]string{},
		}
		for _, h := range g.Entries {
			t.Rows = append(t.Rows, []string{
				h.Date.String(), h.Opening.String(), h.Closing.String(), h.Consumed.String(),
				h.ValueOpening.Format(currency), h.ValueClosing.Format(currency),
			})
		}
		doc.Table(t)
	}
	return doc.String()
}

// AvailableMarkdown renders the availability of an item.
func AvailableMarkdown(it tillbook.StockItem, currency string) string {
	return fmt.Sprintf("Available: %s units of %s (Unit price: %s)\n", it.Quantity, it.Name, it.UnitPrice.Format(currency))
}

// SalesMarkdown renders the sales sheet with its totals.
func SalesMarkdown(s *tillbook.SalesSheet, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sales Sheet")
	lines := s.Lines()
	if len(lines) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"#", "Product", "Opening", "Sold", "Closing", "Price", "Revenue"},
		Rows:      [][]string{},
	}
	for i, l := range lines {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i), l.Product, l.OpeningStock.String(), l.QuantitySold.String(), l.ClosingStock().String(),
			l.Price.Format(currency), l.Revenue().Format(currency),
		})
	}
	t := s.Totals()
	table.Rows = append(table.Rows, []string{"", "Total", t.Opening.String(), t.Sold.String(), t.Closing.String(), "", t.Revenue.Format(currency)})
	doc.Table(table)
	return doc.String()
}
