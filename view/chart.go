package view

import (
	"fmt"
	"math"

	"school-meal-api/nutrition"
)

const (
	chartWidth  = 480.0
	chartHeight = 300.0
	chartMargin = 20.0
	labelSpace  = 24.0

	pieRadius = 110.0
)

const barColor = "#FF4B4B"

// Same palette as plotly's qualitative Pastel set.
var pastel = []string{
	"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F",
	"#9EB9F3", "#FE88B1", "#C9DB74", "#8BE0A4", "#B497E7", "#B3B3B3",
}

type Bar struct {
	Label  string
	Value  float64
	Unit   string
	X, Y   float64
	Width  float64
	Height float64
	LabelX float64
}

type BarChart struct {
	Width, Height float64
	BaseY         float64
	Color         string
	Bars          []Bar
}

// NewBarChart lays out one bar per entry, energy included, scaled to the
// largest value.
func NewBarChart(entries nutrition.Entries) BarChart {
	c := BarChart{
		Width:  chartWidth,
		Height: chartHeight,
		BaseY:  chartHeight - chartMargin - labelSpace,
		Color:  barColor,
	}
	if len(entries) == 0 {
		return c
	}

	plotW := chartWidth - 2*chartMargin
	plotH := c.BaseY - chartMargin - labelSpace
	slot := plotW / float64(len(entries))
	top := entries.Max()

	for i, e := range entries {
		h := 0.0
		if top > 0 {
			h = e.Value / top * plotH
		}
		x := chartMargin + float64(i)*slot + slot*0.2
		c.Bars = append(c.Bars, Bar{
			Label:  e.Label,
			Value:  e.Value,
			Unit:   e.Unit,
			X:      round2(x),
			Y:      round2(c.BaseY - h),
			Width:  round2(slot * 0.6),
			Height: round2(h),
			LabelX: round2(x + slot*0.3),
		})
	}
	return c
}

type Slice struct {
	Label   string
	Value   float64
	Percent float64
	Color   string
	Path    string
	Full    bool // the only non-zero slice; drawn as a circle
	LabelX  float64
	LabelY  float64
}

type PieChart struct {
	Width, Height float64
	CX, CY, R     float64
	Slices        []Slice
}

// NewPieChart builds a pie of the entries' shares. The energy entry is left
// out, and so are zero values.
func NewPieChart(entries nutrition.Entries) PieChart {
	c := PieChart{
		Width:  chartWidth,
		Height: chartHeight,
		CX:     chartWidth / 2,
		CY:     chartHeight / 2,
		R:      pieRadius,
	}

	parts := make(nutrition.Entries, 0, len(entries))
	for _, e := range entries.WithoutEnergy() {
		if e.Value > 0 {
			parts = append(parts, e)
		}
	}
	total := parts.Total()
	if total <= 0 {
		return c
	}

	// Angles start at 12 o'clock and run clockwise.
	angle := -math.Pi / 2
	for i, e := range parts {
		frac := e.Value / total
		sweep := frac * 2 * math.Pi
		mid := angle + sweep/2

		s := Slice{
			Label:   e.Label,
			Value:   e.Value,
			Percent: round2(frac * 100),
			Color:   pastel[i%len(pastel)],
			LabelX:  round2(c.CX + 0.65*c.R*math.Cos(mid)),
			LabelY:  round2(c.CY + 0.65*c.R*math.Sin(mid)),
		}
		if len(parts) == 1 {
			s.Full = true
		} else {
			s.Path = arcPath(c.CX, c.CY, c.R, angle, angle+sweep)
		}
		c.Slices = append(c.Slices, s)
		angle += sweep
	}
	return c
}

func arcPath(cx, cy, r, from, to float64) string {
	x1, y1 := cx+r*math.Cos(from), cy+r*math.Sin(from)
	x2, y2 := cx+r*math.Cos(to), cy+r*math.Sin(to)
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		cx, cy, x1, y1, r, r, large, x2, y2)
}

type TableRow struct {
	Label    string
	Value    float64
	Unit     string
	WidthPct float64
}

// NewTable returns one row per entry with an inline bar width relative to
// the largest value.
func NewTable(entries nutrition.Entries) []TableRow {
	top := entries.Max()
	rows := make([]TableRow, 0, len(entries))
	for _, e := range entries {
		w := 0.0
		if top > 0 {
			w = round2(e.Value / top * 100)
		}
		rows = append(rows, TableRow{Label: e.Label, Value: e.Value, Unit: e.Unit, WidthPct: w})
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
