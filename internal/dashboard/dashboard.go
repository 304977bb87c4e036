// ABOUTME: Read-only dashboard service consumed by the web, CLI, and MCP layers.
// ABOUTME: Selection in, Snapshot out; every call recomputes from the immutable base.
package dashboard

import (
	"github.com/harperreed/genzhealth/internal/aggregate"
	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/filter"
	"github.com/harperreed/genzhealth/internal/models"
)

// FilterOption lists the choices of one filter control.
type FilterOption struct {
	Field  models.Field `json:"field"`
	Label  string       `json:"label"`
	Values []string     `json:"values"`
}

// Snapshot is everything rendered for one selection.
type Snapshot struct {
	Selection     filter.Selection
	View          dataset.View
	SampleSize    int
	ByGender      []aggregate.GroupMean
	ByBMICategory []aggregate.GroupMean
	Histogram     aggregate.Histogram
	Rug           []aggregate.RugPoint
}

// IsEmpty reports whether no row matched the selection.
func (s *Snapshot) IsEmpty() bool {
	return s.SampleSize == 0
}

// Service answers dashboard queries over one loaded table.
type Service struct {
	table   *dataset.Table
	options []FilterOption
}

// New builds a Service. Filter options are computed once from the base
// table so they do not change with the selection.
func New(table *dataset.Table) *Service {
	options := make([]FilterOption, 0, len(models.FilterFields))
	for _, f := range models.FilterFields {
		values := append([]string{filter.All}, table.Distinct(f)...)
		options = append(options, FilterOption{Field: f, Label: f.Label(), Values: values})
	}
	return &Service{table: table, options: options}
}

// Options returns the filter controls, each starting with All.
func (s *Service) Options() []FilterOption {
	out := make([]FilterOption, len(s.options))
	for i, o := range s.options {
		o.Values = append([]string(nil), o.Values...)
		out[i] = o
	}
	return out
}

// Total returns the number of rows in the base table.
func (s *Service) Total() int {
	return s.table.Len()
}

// Filter returns the filtered view for a selection.
func (s *Service) Filter(sel filter.Selection) dataset.View {
	return filter.Apply(s.table.All(), sel)
}

// Snapshot filters the base table and computes every aggregation.
func (s *Service) Snapshot(sel filter.Selection) *Snapshot {
	sel = sel.Normalize()
	view := s.Filter(sel)
	return &Snapshot{
		Selection:     sel,
		View:          view,
		SampleSize:    view.Len(),
		ByGender:      aggregate.ByGender(view),
		ByBMICategory: aggregate.ByBMICategory(view),
		Histogram:     aggregate.NewHistogram(view, aggregate.DefaultBins),
		Rug:           aggregate.Rug(view),
	}
}
