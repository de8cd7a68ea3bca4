// Package view renders the meal page: one card per meal with the dishes
// and the nutrition data as a bar chart, pie chart or table.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"school-meal-api/neis"
	"school-meal-api/nutrition"
)

const (
	NoMealWarning      = "해당 날짜에는 급식 정보가 없습니다."
	FetchFailedWarning = "급식 정보를 불러오지 못했습니다. 잠시 후 다시 시도해 주세요."
	NoNutritionCaption = "영양정보를 불러오지 못했습니다."
)

type Mode string

const (
	ModeBar   Mode = "bar"
	ModePie   Mode = "pie"
	ModeTable Mode = "table"
)

type ModeOption struct {
	Mode  Mode
	Title string
}

var Modes = []ModeOption{
	{ModeBar, "막대그래프"},
	{ModePie, "원 그래프"},
	{ModeTable, "표"},
}

// ParseMode maps a query value to a Mode, falling back to the bar chart.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModePie, ModeTable:
		return Mode(s)
	default:
		return ModeBar
	}
}

type Card struct {
	Index        int
	MealName     string
	Dishes       string
	Entries      nutrition.Entries
	HasNutrition bool
	Mode         Mode
}

func NewCard(index int, rec neis.MealRecord, mode Mode) Card {
	entries, ok := nutrition.Parse(rec.NutritionRaw, rec.CalorieRaw)
	return Card{
		Index:        index,
		MealName:     rec.MealName,
		Dishes:       rec.Dishes,
		Entries:      entries,
		HasNutrition: ok,
		Mode:         mode,
	}
}

// Param is the query parameter holding this card's view mode.
func (c Card) Param() string {
	return fmt.Sprintf("view%d", c.Index)
}

func (c Card) Bar() BarChart     { return NewBarChart(c.Entries) }
func (c Card) Pie() PieChart     { return NewPieChart(c.Entries) }
func (c Card) Table() []TableRow { return NewTable(c.Entries) }

type Page struct {
	Title   string
	Date    string // YYYY-MM-DD, the date input's value
	Cards   []Card
	Warning string
}

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html").
		Funcs(template.FuncMap{
			"num":         func(v float64) string { return fmt.Sprintf("%.1f", v) },
			"modes":       func() []ModeOption { return Modes },
			"noNutrition": func() string { return NoNutritionCaption },
		}).
		ParseFS(templateFS, "templates/page.html"),
)

func Render(w io.Writer, p Page) error {
	return pageTemplate.Execute(w, p)
}
