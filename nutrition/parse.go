// Package nutrition extracts nutrient rows from the semi-structured
// NTR_INFO and CAL_INFO strings the NEIS meal service returns.
package nutrition

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	EnergyLabel = "에너지"
	EnergyUnit  = "Kcal"
)

var (
	tokenPattern   = regexp.MustCompile(`^(.+?)\((.+?)\)\s*:\s*([\d.]+)`)
	caloriePattern = regexp.MustCompile(`^([\d.]+)`)

	separators = strings.NewReplacer("<br/>", "/", "\n", "/")
)

// Entry is one nutrient row, e.g. 탄수화물 60.0 g.
type Entry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Entries []Entry

// Parse returns the entries found in the nutrition and calorie strings.
// Tokens that don't match "label(unit): value" are skipped. The energy
// entry, if any, comes last. ok is false when nothing could be extracted.
func Parse(nutritionRaw, calorieRaw string) (entries Entries, ok bool) {
	for _, token := range strings.Split(separators.Replace(nutritionRaw), "/") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if e, matched := parseToken(token); matched {
			entries = append(entries, e)
		}
	}

	if calorieRaw != "" {
		if v, matched := parseCalories(calorieRaw); matched {
			entries = append(entries, Entry{Label: EnergyLabel, Value: v, Unit: EnergyUnit})
		}
	}

	if len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

func parseToken(token string) (Entry, bool) {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return Entry{}, false
	}
	v, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Entry{}, false
	}
	return Entry{
		Label: strings.TrimSpace(m[1]),
		Value: v,
		Unit:  strings.TrimSpace(m[2]),
	}, true
}

func parseCalories(raw string) (float64, bool) {
	m := caloriePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsEnergy reports whether e is the synthesized calorie entry.
func (e Entry) IsEnergy() bool {
	return e.Label == EnergyLabel && e.Unit == EnergyUnit
}

// WithoutEnergy drops the calorie entry, which would dwarf the other
// nutrients in a proportional chart.
func (es Entries) WithoutEnergy() Entries {
	out := make(Entries, 0, len(es))
	for _, e := range es {
		if !e.IsEnergy() {
			out = append(out, e)
		}
	}
	return out
}

// Max returns the largest value, or 0 for an empty slice.
func (es Entries) Max() float64 {
	var top float64
	for _, e := range es {
		if e.Value > top {
			top = e.Value
		}
	}
	return top
}

// Total sums all values.
func (es Entries) Total() float64 {
	var sum float64
	for _, e := range es {
		sum += e.Value
	}
	return sum
}
