// ABOUTME: Immutable respondent table and the index-based views derived from it.
// ABOUTME: Views never copy or mutate records; they select rows of the base table.
package dataset

import (
	"sort"

	"github.com/harperreed/genzhealth/internal/models"
)

// Table is the loaded survey extract. It is never modified after load.
type Table struct {
	columns []string
	rows    []models.Respondent
}

// Columns returns the column names in export order. The derived
// BMI_CATEGORY column is always last.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// All returns a view over every row of the table.
func (t *Table) All() View {
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i
	}
	return View{table: t, idx: idx}
}

// Distinct returns the sorted distinct non-missing values of a field
// across the whole table.
func (t *Table) Distinct(f models.Field) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for i := range t.rows {
		v := t.rows[i].Value(f)
		if v == nil || seen[*v] {
			continue
		}
		seen[*v] = true
		values = append(values, *v)
	}
	sort.Strings(values)
	return values
}

// View is an ordered selection of rows of a Table.
// The zero View is empty.
type View struct {
	table *Table
	idx   []int
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	return len(v.idx)
}

// Row returns a copy of the i-th respondent of the view.
// The Raw slice is shared with the table and must not be modified.
func (v View) Row(i int) models.Respondent {
	return v.table.rows[v.idx[i]]
}

// Columns returns the column names of the underlying table.
func (v View) Columns() []string {
	if v.table == nil {
		return nil
	}
	return v.table.Columns()
}

// Cells returns the display cells of the i-th row in column order,
// including the derived BMI_CATEGORY.
func (v View) Cells(i int) []string {
	r := &v.table.rows[v.idx[i]]
	cells := make([]string, 0, len(r.Raw)+1)
	cells = append(cells, r.Raw...)
	return append(cells, string(r.BMICategory))
}

// Where returns a new view holding the rows for which keep returns true.
// Row order is preserved.
func (v View) Where(keep func(r *models.Respondent) bool) View {
	idx := make([]int, 0, len(v.idx))
	for _, i := range v.idx {
		if keep(&v.table.rows[i]) {
			idx = append(idx, i)
		}
	}
	return View{table: v.table, idx: idx}
}

// Page returns at most limit rows starting at offset.
func (v View) Page(offset, limit int) View {
	if offset < 0 {
		offset = 0
	}
	if offset > len(v.idx) {
		offset = len(v.idx)
	}
	end := len(v.idx)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return View{table: v.table, idx: v.idx[offset:end]}
}

// Equal reports whether two views select the same rows of the same table
// in the same order.
func (v View) Equal(other View) bool {
	if v.table != other.table && v.Len() > 0 {
		return false
	}
	if len(v.idx) != len(other.idx) {
		return false
	}
	for i := range v.idx {
		if v.idx[i] != other.idx[i] {
			return false
		}
	}
	return true
}
