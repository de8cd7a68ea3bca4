package nutrition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWellFormedToken(t *testing.T) {
	entries, ok := Parse("탄수화물(g) : 60.5", "")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Label: "탄수화물", Value: 60.5, Unit: "g"}, entries[0])
}

func TestParseTrailingEmptySegment(t *testing.T) {
	entries, ok := Parse("탄수화물(g):  60.0/단백질(g): 15/", "")
	require.True(t, ok)

	want := Entries{
		{Label: "탄수화물", Value: 60.0, Unit: "g"},
		{Label: "단백질", Value: 15, Unit: "g"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMixedSeparators(t *testing.T) {
	br := "탄수화물(g) : 60.0<br/>단백질(g) : 15.2<br/>지방(g) : 12.1"
	nl := "탄수화물(g) : 60.0\n단백질(g) : 15.2\n지방(g) : 12.1"
	mixed := "탄수화물(g) : 60.0<br/>단백질(g) : 15.2\n지방(g) : 12.1"

	fromBr, ok := Parse(br, "")
	require.True(t, ok)
	fromNl, ok := Parse(nl, "")
	require.True(t, ok)
	fromMixed, ok := Parse(mixed, "")
	require.True(t, ok)

	assert.Len(t, fromBr, 3)
	assert.Empty(t, cmp.Diff(fromBr, fromNl))
	assert.Empty(t, cmp.Diff(fromBr, fromMixed))
}

func TestParseSkipsMalformedToken(t *testing.T) {
	entries, ok := Parse("탄수화물(g) : 60<br/>지방 15g<br/>단백질(g) : 15", "")
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "탄수화물", entries[0].Label)
	assert.Equal(t, "단백질", entries[1].Label)
}

func TestParseSkipsUnparsableNumber(t *testing.T) {
	entries, ok := Parse("철분(mg) : 1.2.3/칼슘(mg) : 310.5", "")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Label: "칼슘", Value: 310.5, Unit: "mg"}, entries[0])
}

func TestParseUnitWithDots(t *testing.T) {
	entries, ok := Parse("비타민A(R.E) : 120.3", "")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "비타민A", entries[0].Label)
	assert.Equal(t, "R.E", entries[0].Unit)
	assert.Equal(t, 120.3, entries[0].Value)
}

func TestParseUnitStopsAtFirstClosingParenthesisFollowedByColon(t *testing.T) {
	entries, ok := Parse("칼슘(Ca)(mg) : 5", "")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Label: "칼슘", Value: 5, Unit: "Ca)(mg"}, entries[0])
}

func TestParseTrimsLabelAndUnit(t *testing.T) {
	entries, ok := Parse("탄수화물 ( g ) : 1", "")
	require.True(t, ok)
	assert.Equal(t, Entries{{Label: "탄수화물", Value: 1, Unit: "g"}}, entries)
}

func TestParseCalorieOnly(t *testing.T) {
	entries, ok := Parse("", "250.5 Kcal 기준")
	require.True(t, ok)
	assert.Equal(t, Entries{{Label: EnergyLabel, Value: 250.5, Unit: EnergyUnit}}, entries)
}

func TestParseCalorieComesLast(t *testing.T) {
	entries, ok := Parse("단백질(g) : 30.1<br/>지방(g) : 20", "812.4 Kcal")
	require.True(t, ok)
	require.Len(t, entries, 3)
	assert.Equal(t, "단백질", entries[0].Label)
	assert.Equal(t, "지방", entries[1].Label)
	assert.True(t, entries[2].IsEnergy())
	assert.Equal(t, 812.4, entries[2].Value)
}

func TestParseCalorieWithoutLeadingNumber(t *testing.T) {
	entries, ok := Parse("단백질(g) : 30", "Kcal 812")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsEnergy())
}

func TestParseAbsent(t *testing.T) {
	tests := []struct {
		name      string
		nutrition string
		calorie   string
	}{
		{"both empty", "", ""},
		{"only unmatched tokens", "지방 15g/단백질 많음", ""},
		{"separators only", "<br/>\n/ / ", ""},
		{"unmatched calorie", "지방 15g", "약 800"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, ok := Parse(tt.nutrition, tt.calorie)
			assert.False(t, ok)
			assert.Nil(t, entries)
		})
	}
}

func TestParseZeroValuesArePresent(t *testing.T) {
	entries, ok := Parse("지방(g) : 0<br/>단백질(g) : 0.0", "0 Kcal")
	require.True(t, ok)
	assert.Len(t, entries, 3)
	assert.Zero(t, entries.Total())
}

func TestParseKeepsDuplicateLabels(t *testing.T) {
	entries, ok := Parse("지방(g) : 1/지방(g) : 2", "")
	require.True(t, ok)
	assert.Len(t, entries, 2)
}

func TestEntriesHelpers(t *testing.T) {
	entries := Entries{
		{Label: "탄수화물", Value: 90, Unit: "g"},
		{Label: "단백질", Value: 30, Unit: "g"},
		{Label: EnergyLabel, Value: 700, Unit: EnergyUnit},
	}

	assert.Equal(t, 700.0, entries.Max())
	assert.Equal(t, 820.0, entries.Total())

	rest := entries.WithoutEnergy()
	assert.Len(t, rest, 2)
	assert.Equal(t, 90.0, rest.Max())
	assert.Len(t, entries, 3, "WithoutEnergy must not modify the receiver")

	assert.Zero(t, Entries(nil).Max())
}
