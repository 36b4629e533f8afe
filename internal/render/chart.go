package render

import (
	"bytes"
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"vgsales/backend/internal/query"
)

// ErrNoData is returned when a chart would have no bars.
var ErrNoData = errors.New("no data to chart")

// Series is one labeled set of bar values.
type Series struct {
	Title      string
	Label      string // axis label of the values
	Categories []string
	Values     []float64
	Horizontal bool
}

// CountBy counts rows per category, in first-appearance order.
func CountBy[T any](rows []T, category func(T) string) ([]string, []float64) {
	index := make(map[string]int)
	var names []string
	var counts []float64
	for _, r := range rows {
		c := category(r)
		i, ok := index[c]
		if !ok {
			i = len(names)
			index[c] = i
			names = append(names, c)
			counts = append(counts, 0)
		}
		counts[i]++
	}
	return names, counts
}

// PlatformCounts is the genre chart series: releases per platform.
func PlatformCounts(title string, rows []query.GameRow) Series {
	names, counts := CountBy(rows, func(r query.GameRow) string { return r.PlatformName })
	return Series{Title: title, Label: "games", Categories: names, Values: counts}
}

// SalesBars is the top-sales chart series: total sales per game.
func SalesBars(title string, rows []query.SalesRow) Series {
	s := Series{Title: title, Label: "sales (millions)", Horizontal: true}
	for _, r := range rows {
		s.Categories = append(s.Categories, r.GameName)
		s.Values = append(s.Values, r.TotalSales)
	}
	return s
}

// PublisherBars is the publisher chart series: distinct games per publisher.
func PublisherBars(title string, rows []query.PublisherRow) Series {
	s := Series{Title: title, Label: "games", Horizontal: true}
	for _, r := range rows {
		s.Categories = append(s.Categories, r.PublisherName)
		s.Values = append(s.Values, float64(r.GameCount))
	}
	return s
}

// PNG draws s as a bar chart. Horizontal charts list the first category at
// the top.
func PNG(s Series) ([]byte, error) {
	if len(s.Values) == 0 {
		return nil, ErrNoData
	}

	categories := s.Categories
	values := plotter.Values(s.Values)
	if s.Horizontal {
		categories = reversed(s.Categories)
		values = plotter.Values(reversed(s.Values))
	}

	p := plot.New()
	p.Title.Text = s.Title

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	bars.Horizontal = s.Horizontal
	p.Add(bars)

	width := vg.Points(float64(60 + 40*len(values)))
	height := 4 * vg.Inch
	if s.Horizontal {
		p.X.Label.Text = s.Label
		p.NominalY(categories...)
		width, height = 8*vg.Inch, vg.Points(float64(60+30*len(values)))
	} else {
		p.Y.Label.Text = s.Label
		p.NominalX(categories...)
		if width < 4*vg.Inch {
			width = 4 * vg.Inch
		}
	}

	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return buf.Bytes(), nil
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
