// Package chart draws pie charts as PNG images.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/etnz/tillbook"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmpty is returned when a pie has nothing to draw.
var ErrEmpty = errors.New("chart has no positive value")

// Size of the rendered images, in pixels.
const (
	Width  = 600
	Height = 400
)

// RenderPie writes the pie as a PNG image. Slices are labelled with their
// share of the total.
func RenderPie(w io.Writer, pie tillbook.Pie) error {
	if !pie.Total().IsPositive() {
		return fmt.Errorf("cannot draw %q: %w", pie.Title, ErrEmpty)
	}
	values := make([]gochart.Value, 0, len(pie.Slices))
	for i, s := range pie.Slices {
		if !s.Value.IsPositive() {
			continue
		}
		values = append(values, gochart.Value{
			Value: s.Value.Float64(),
			Label: fmt.Sprintf("%s %.1f%%", s.Label, pie.Percent(i)),
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	c := gochart.PieChart{
		Title:  pie.Title,
		Width:  Width,
		Height: Height,
		Values: values,
	}
	if err := c.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("cannot draw %q: %w", pie.Title, err)
	}
	return nil
}

// PNG returns the pie as PNG bytes.
func PNG(pie tillbook.Pie) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderPie(&buf, pie); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image is a rendered chart.
type Image struct {
	Title string
	// Name is a file name for the image, without directory.
	Name string
	PNG  []byte
}

// Book renders the all-time pie then one pie per transaction day. Pies with
// nothing to draw are skipped.
func Book(b *tillbook.Book) ([]Image, error) {
	var images []Image
	add := func(name string, pie tillbook.Pie) error {
		data, err := PNG(pie)
		if errors.Is(err, ErrEmpty) {
			return nil
		}
		if err != nil {
			return err
		}
		images = append(images, Image{Title: pie.Title, Name: name, PNG: data})
		return nil
	}
	if err := add("all-time.png", tillbook.AllTimePie(b.Accounts, b.Ledger)); err != nil {
		return nil, err
	}
	days := b.Ledger.ByDay()
	for i, pie := range tillbook.DailyPies(b.Accounts, b.Ledger) {
		if err := add(fmt.Sprintf("day-%s.png", days[i].Date), pie); err != nil {
			return nil, err
		}
	}
	return images, nil
}
