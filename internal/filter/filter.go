// ABOUTME: Filter engine: equality predicates over the four categorical fields.
// ABOUTME: Predicates are AND-combined; rows without MENTHLTH are always dropped.
package filter

import (
	"net/url"
	"strings"

	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/models"
)

// All is the wildcard selection: the field is not constrained.
const All = "All"

// Selection holds the chosen value for each filter field.
// Empty values are treated as All.
type Selection struct {
	Gender   string `json:"gender" yaml:"gender"`
	Smoker   string `json:"smoker" yaml:"smoker"`
	Drinker  string `json:"drinker" yaml:"drinker"`
	Exercise string `json:"exercise" yaml:"exercise"`
}

// Normalize replaces empty values with All.
func (s Selection) Normalize() Selection {
	for _, v := range []*string{&s.Gender, &s.Smoker, &s.Drinker, &s.Exercise} {
		if *v == "" {
			*v = All
		}
	}
	return s
}

// Get returns the selected value for a filter field.
func (s Selection) Get(f models.Field) string {
	var v string
	switch f {
	case models.FieldGender:
		v = s.Gender
	case models.FieldSmoker:
		v = s.Smoker
	case models.FieldDrinker:
		v = s.Drinker
	case models.FieldExercise:
		v = s.Exercise
	}
	if v == "" {
		return All
	}
	return v
}

// Set returns a copy of the selection with field f set to value.
func (s Selection) Set(f models.Field, value string) Selection {
	switch f {
	case models.FieldGender:
		s.Gender = value
	case models.FieldSmoker:
		s.Smoker = value
	case models.FieldDrinker:
		s.Drinker = value
	case models.FieldExercise:
		s.Exercise = value
	}
	return s
}

// IsAll reports whether no field is constrained.
func (s Selection) IsAll() bool {
	return len(s.Predicates()) == 0
}

// Predicates returns one equality predicate per non-wildcard field, in
// models.FilterFields order.
func (s Selection) Predicates() []Predicate {
	var preds []Predicate
	for _, f := range models.FilterFields {
		if v := s.Get(f); v != All {
			preds = append(preds, Predicate{Field: f, Value: v})
		}
	}
	return preds
}

// Query encodes the non-wildcard fields as URL query parameters.
func (s Selection) Query() url.Values {
	q := url.Values{}
	for _, p := range s.Predicates() {
		q.Set(strings.ToLower(string(p.Field)), p.Value)
	}
	return q
}

// ParseSelection reads a selection from URL query parameters named after
// the lowercase field ("gender", "smoker", "drinker", "exercise").
func ParseSelection(q url.Values) Selection {
	var s Selection
	for _, f := range models.FilterFields {
		s = s.Set(f, q.Get(strings.ToLower(string(f))))
	}
	return s.Normalize()
}

// Predicate keeps rows whose field equals Value exactly.
// Absent values never match.
type Predicate struct {
	Field models.Field
	Value string
}

// Match reports whether the respondent satisfies the predicate.
func (p Predicate) Match(r *models.Respondent) bool {
	v := r.Value(p.Field)
	return v != nil && *v == p.Value
}

// Narrow keeps the rows of v that satisfy every predicate.
func Narrow(v dataset.View, preds ...Predicate) dataset.View {
	if len(preds) == 0 {
		return v
	}
	return v.Where(func(r *models.Respondent) bool {
		for _, p := range preds {
			if !p.Match(r) {
				return false
			}
		}
		return true
	})
}

// DropMissingMentHlth removes rows without a MENTHLTH value.
func DropMissingMentHlth(v dataset.View) dataset.View {
	return v.Where(func(r *models.Respondent) bool {
		return r.HasMentHlth()
	})
}

// Apply narrows v by the selection, then drops rows without MENTHLTH
// regardless of the selection. The source view is never modified.
func Apply(v dataset.View, sel Selection) dataset.View {
	return DropMissingMentHlth(Narrow(v, sel.Predicates()...))
}
