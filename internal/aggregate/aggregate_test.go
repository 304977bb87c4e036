// ABOUTME: Tests for gender and BMI-category means and the distribution data.
// ABOUTME: Uses the shared 10-row fixture through the filter engine.
package aggregate

import (
	"strings"
	"testing"

	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/filter"
	"github.com/harperreed/genzhealth/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filtered(t *testing.T, sel filter.Selection) dataset.View {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(testutil.SampleCSV))
	require.NoError(t, err)
	return filter.Apply(table.All(), sel)
}

func TestByGender(t *testing.T) {
	groups := ByGender(filtered(t, filter.Selection{}))

	require.Len(t, groups, 2)
	assert.Equal(t, "Female", groups[0].Key)
	assert.Equal(t, 6, groups[0].Count)
	require.NotNil(t, groups[0].Mean)
	assert.InDelta(t, 61.0/6.0, *groups[0].Mean, 1e-9)
	assert.Equal(t, "10.17", groups[0].Label())

	assert.Equal(t, "Male", groups[1].Key)
	assert.Equal(t, 2, groups[1].Count)
	assert.InDelta(t, 5.0, *groups[1].Mean, 1e-9)
}

func TestByBMICategory(t *testing.T) {
	groups := ByBMICategory(filtered(t, filter.Selection{}))

	want := []struct {
		key   string
		count int
		mean  float64
	}{
		{"Underweight", 1, 5},
		{"Normal", 3, 17.0 / 3.0},
		{"Overweight", 2, 5.5},
		{"Obese", 2, 18.5},
	}

	require.Len(t, groups, 4)
	for i, w := range want {
		assert.Equal(t, w.key, groups[i].Key)
		assert.Equal(t, w.count, groups[i].Count, w.key)
		require.NotNil(t, groups[i].Mean, w.key)
		assert.InDelta(t, w.mean, *groups[i].Mean, 1e-9, w.key)
	}
}

func TestByBMICategoryKeepsEmptyCategories(t *testing.T) {
	groups := ByBMICategory(filtered(t, filter.Selection{Gender: "Male"}))

	require.Len(t, groups, 4)
	assert.Equal(t, []string{"Underweight", "Normal", "Overweight", "Obese"},
		[]string{groups[0].Key, groups[1].Key, groups[2].Key, groups[3].Key})
	assert.Nil(t, groups[0].Mean)
	assert.Equal(t, "n/a", groups[0].Label())
	assert.Nil(t, groups[2].Mean, "the only male Overweight row has no MENTHLTH")
	assert.InDelta(t, 3.0, *groups[1].Mean, 1e-9)
	assert.InDelta(t, 7.0, *groups[3].Mean, 1e-9)
}

func TestAggregationsOnEmptyView(t *testing.T) {
	empty := filtered(t, filter.Selection{Gender: "Male", Smoker: "Yes"})
	require.Equal(t, 0, empty.Len())

	assert.Empty(t, ByGender(empty))

	bmi := ByBMICategory(empty)
	require.Len(t, bmi, 4)
	assert.False(t, HasData(bmi))

	assert.True(t, NewHistogram(empty, DefaultBins).IsEmpty())
	assert.Empty(t, Rug(empty))
}

func TestByBMICategorySkipsMissingCategory(t *testing.T) {
	// Row 5 is Female without BMI; it counts for gender but not for BMI.
	view := filtered(t, filter.Selection{Gender: "Female"})
	total := 0
	for _, g := range ByBMICategory(view) {
		total += g.Count
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 6, ByGender(view)[0].Count)
}

func TestNewHistogram(t *testing.T) {
	h := NewHistogram(filtered(t, filter.Selection{}), DefaultBins)

	assert.Equal(t, 30, h.Bins())
	assert.Equal(t, []string{"Female", "Male"}, h.Groups)
	assert.Equal(t, 8, h.Total(), "row without GENDER is not plotted")
	assert.InDelta(t, 0.0, h.Edges[0], 1e-9)
	assert.InDelta(t, 30.0, h.Edges[30], 1e-9)

	// 30 falls into the closed last bin, 0 into the first.
	assert.Equal(t, 1, h.Counts["Female"][29])
	assert.Equal(t, 1, h.Counts["Female"][0])
	assert.Equal(t, 1, h.Counts["Male"][7])
}

func TestNewHistogramSingleValue(t *testing.T) {
	view := filtered(t, filter.Selection{Gender: "Female", Smoker: "Yes", Exercise: "No"})
	require.Equal(t, 2, view.Len())

	h := NewHistogram(view, 0)
	assert.Equal(t, 30, h.Bins())
	assert.Equal(t, 2, h.Total())

	one := NewHistogram(filtered(t, filter.Selection{Gender: "Male", Exercise: "Yes", Drinker: "No"}), 10)
	assert.Equal(t, 1, one.Bins())
	assert.Equal(t, []int{1}, one.Counts["Male"])
}

func TestRug(t *testing.T) {
	points := Rug(filtered(t, filter.Selection{Gender: "Female"}))

	require.Len(t, points, 6)
	assert.Equal(t, 5.0, points[0].MentHlth)
	assert.Equal(t, "Female", points[0].Gender)
	require.NotNil(t, points[0].BMI)
	assert.Equal(t, 17.2, *points[0].BMI)
	assert.Equal(t, "Yes", *points[0].Exercise)
	assert.Equal(t, "Yes", *points[0].Drinker)
	assert.Nil(t, points[4].BMI)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, 3.14, RoundTo2(3.14159))
	assert.Equal(t, 2.68, RoundTo2(2.675000001))
	m := 10.0
	assert.Equal(t, "10.00", FormatMean(&m))
	assert.Equal(t, "n/a", FormatMean(nil))
}
