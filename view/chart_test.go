package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-meal-api/nutrition"
)

var sample = nutrition.Entries{
	{Label: "탄수화물", Value: 50, Unit: "g"},
	{Label: "단백질", Value: 150, Unit: "g"},
	{Label: nutrition.EnergyLabel, Value: 700, Unit: nutrition.EnergyUnit},
}

func TestBarChartIncludesEnergy(t *testing.T) {
	c := NewBarChart(sample)
	require.Len(t, c.Bars, 3)

	energy := c.Bars[2]
	assert.Equal(t, nutrition.EnergyLabel, energy.Label)
	assert.Equal(t, c.BaseY, energy.Y+energy.Height, "bars stand on the baseline")

	// The largest value fills the plot height; the others scale linearly.
	assert.InDelta(t, energy.Height*50/700, c.Bars[0].Height, 0.02)
	assert.InDelta(t, energy.Height*150/700, c.Bars[1].Height, 0.02)

	assert.Less(t, c.Bars[0].X+c.Bars[0].Width, c.Bars[1].X, "bars don't overlap")
}

func TestBarChartLayout(t *testing.T) {
	c := NewBarChart(nutrition.Entries{
		{Label: "a", Value: 50},
		{Label: "b", Value: 100},
	})
	require.Len(t, c.Bars, 2)

	assert.Equal(t, 256.0, c.BaseY)
	assert.Equal(t, Bar{Label: "a", Value: 50, X: 64, Y: 150, Width: 132, Height: 106, LabelX: 130}, c.Bars[0])
	assert.Equal(t, 212.0, c.Bars[1].Height)
	assert.Equal(t, 44.0, c.Bars[1].Y)
}

func TestBarChartAllZero(t *testing.T) {
	c := NewBarChart(nutrition.Entries{{Label: "a"}, {Label: "b"}})
	require.Len(t, c.Bars, 2)
	for _, b := range c.Bars {
		assert.Zero(t, b.Height)
		assert.Equal(t, c.BaseY, b.Y)
	}
	assert.Empty(t, NewBarChart(nil).Bars)
}

func TestPieChartExcludesEnergy(t *testing.T) {
	c := NewPieChart(sample)
	require.Len(t, c.Slices, 2)

	assert.Equal(t, "탄수화물", c.Slices[0].Label)
	assert.Equal(t, 25.0, c.Slices[0].Percent)
	assert.Equal(t, 75.0, c.Slices[1].Percent)
	assert.NotEqual(t, c.Slices[0].Color, c.Slices[1].Color)

	// First slice starts at 12 o'clock.
	assert.True(t, strings.HasPrefix(c.Slices[0].Path, "M 240.00 150.00 L 240.00 40.00 A"), c.Slices[0].Path)
	// Only the 75% slice needs the large-arc flag.
	assert.Contains(t, c.Slices[0].Path, " 0 0 1 ")
	assert.Contains(t, c.Slices[1].Path, " 0 1 1 ")
}

func TestPieChartPercentagesSumTo100(t *testing.T) {
	c := NewPieChart(nutrition.Entries{
		{Label: "a", Value: 1}, {Label: "b", Value: 1}, {Label: "c", Value: 1},
	})
	var sum float64
	for _, s := range c.Slices {
		sum += s.Percent
	}
	assert.InDelta(t, 100, sum, 0.05)
}

func TestPieChartSingleSlice(t *testing.T) {
	c := NewPieChart(nutrition.Entries{
		{Label: "지방", Value: 12, Unit: "g"},
		{Label: "단백질", Value: 0, Unit: "g"},
	})
	require.Len(t, c.Slices, 1)
	assert.True(t, c.Slices[0].Full)
	assert.Empty(t, c.Slices[0].Path)
	assert.Equal(t, 100.0, c.Slices[0].Percent)
}

func TestPieChartOnlyEnergy(t *testing.T) {
	c := NewPieChart(nutrition.Entries{{Label: nutrition.EnergyLabel, Value: 800, Unit: nutrition.EnergyUnit}})
	assert.Empty(t, c.Slices)
}

func TestTableRows(t *testing.T) {
	rows := NewTable(sample)
	require.Len(t, rows, 3)
	assert.Equal(t, TableRow{Label: "단백질", Value: 150, Unit: "g", WidthPct: 21.43}, rows[1])
	assert.Equal(t, 100.0, rows[2].WidthPct)

	zero := NewTable(nutrition.Entries{{Label: "a"}})
	assert.Zero(t, zero[0].WidthPct)
}
