// ABOUTME: Histogram and rug data for the MENTHLTH distribution chart.
// ABOUTME: Bins are equal-width over the observed range, counted per gender.
package aggregate

import (
	"math"
	"sort"

	"github.com/harperreed/genzhealth/internal/dataset"
)

// DefaultBins matches the bin count of the distribution chart.
const DefaultBins = 30

// Histogram counts MENTHLTH values per equal-width bin, split by gender.
type Histogram struct {
	// Edges has len(bins)+1 entries; bin i covers [Edges[i], Edges[i+1]),
	// the last bin is closed on the right.
	Edges  []float64
	Groups []string
	// Counts[group][bin]
	Counts map[string][]int
}

// Bins returns the number of bins.
func (h Histogram) Bins() int {
	if len(h.Edges) == 0 {
		return 0
	}
	return len(h.Edges) - 1
}

// Total returns the number of values counted.
func (h Histogram) Total() int {
	n := 0
	for _, counts := range h.Counts {
		for _, c := range counts {
			n += c
		}
	}
	return n
}

// IsEmpty reports whether no value was counted.
func (h Histogram) IsEmpty() bool {
	return h.Total() == 0
}

// NewHistogram bins the MENTHLTH values of v per gender. Rows without
// GENDER or MENTHLTH are skipped. When every value is equal a single bin
// is produced.
func NewHistogram(v dataset.View, bins int) Histogram {
	if bins <= 0 {
		bins = DefaultBins
	}

	type point struct {
		group string
		value float64
	}
	points := make([]point, 0, v.Len())
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.Gender == nil || r.MentHlth == nil {
			continue
		}
		x := *r.MentHlth
		points = append(points, point{group: *r.Gender, value: x})
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	h := Histogram{Counts: make(map[string][]int)}
	if len(points) == 0 {
		return h
	}
	if hi == lo {
		bins = 1
		hi = lo + 1
	}

	width := (hi - lo) / float64(bins)
	h.Edges = make([]float64, bins+1)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	for _, p := range points {
		counts, ok := h.Counts[p.group]
		if !ok {
			counts = make([]int, bins)
			h.Counts[p.group] = counts
			h.Groups = append(h.Groups, p.group)
		}
		b := int((p.value - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	sort.Strings(h.Groups)
	return h
}

// RugPoint is one respondent on the rug strip, with the tooltip fields.
type RugPoint struct {
	MentHlth float64  `json:"menthlth"`
	Gender   string   `json:"gender"`
	BMI      *float64 `json:"bmi,omitempty"`
	Exercise *string  `json:"exercise,omitempty"`
	Drinker  *string  `json:"drinker,omitempty"`
}

// Rug returns one point per row with GENDER and MENTHLTH present, in view order.
func Rug(v dataset.View) []RugPoint {
	points := make([]RugPoint, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.Gender == nil || r.MentHlth == nil {
			continue
		}
		points = append(points, RugPoint{
			MentHlth: *r.MentHlth,
			Gender:   *r.Gender,
			BMI:      r.BMI,
			Exercise: r.Exercise,
			Drinker:  r.Drinker,
		})
	}
	return points
}
