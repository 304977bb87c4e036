// ABOUTME: Group-wise means of poor-mental-health days by gender and BMI category.
// ABOUTME: The BMI grouping always yields the four categories in fixed order.
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/models"
)

// GroupMean is the mean MENTHLTH of one group.
// Mean is nil when the group has no rows.
type GroupMean struct {
	Key   string   `json:"key" yaml:"key"`
	Count int      `json:"count" yaml:"count"`
	Mean  *float64 `json:"mean" yaml:"mean"`
}

// Label returns the mean rounded to 2 decimals, or "n/a" when absent.
func (g GroupMean) Label() string {
	return FormatMean(g.Mean)
}

type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a accumulator) result(key string) GroupMean {
	g := GroupMean{Key: key, Count: a.count}
	if a.count > 0 {
		m := a.sum / float64(a.count)
		g.Mean = &m
	}
	return g
}

// ByGender groups rows by GENDER and averages MENTHLTH per group.
// Rows without GENDER or MENTHLTH are skipped. Keys are sorted.
func ByGender(v dataset.View) []GroupMean {
	groups := make(map[string]*accumulator)
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.Gender == nil || r.MentHlth == nil {
			continue
		}
		acc, ok := groups[*r.Gender]
		if !ok {
			acc = &accumulator{}
			groups[*r.Gender] = acc
		}
		acc.add(*r.MentHlth)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]GroupMean, 0, len(keys))
	for _, k := range keys {
		out = append(out, groups[k].result(k))
	}
	return out
}

// ByBMICategory averages MENTHLTH per BMI category. The result always has
// one entry per category in models.BMICategories order; categories
// without rows carry a nil Mean.
func ByBMICategory(v dataset.View) []GroupMean {
	groups := make(map[models.BMICategory]*accumulator, len(models.BMICategories))
	for _, c := range models.BMICategories {
		groups[c] = &accumulator{}
	}

	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.BMICategory.IsMissing() || r.MentHlth == nil {
			continue
		}
		if acc, ok := groups[r.BMICategory]; ok {
			acc.add(*r.MentHlth)
		}
	}

	out := make([]GroupMean, 0, len(models.BMICategories))
	for _, c := range models.BMICategories {
		out = append(out, groups[c].result(string(c)))
	}
	return out
}

// HasData reports whether any group carries a mean.
func HasData(groups []GroupMean) bool {
	for _, g := range groups {
		if g.Mean != nil {
			return true
		}
	}
	return false
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMean renders a mean with 2 decimals, or "n/a" when absent.
func FormatMean(m *float64) string {
	if m == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *m)
}
