// ABOUTME: CSV export of a view: header row, no index column, UTF-8.
// ABOUTME: Missing cells are written empty so the output re-parses to the same table.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// ExportFileName is the download name of a filtered export.
const ExportFileName = "genz_filtered.csv"

// WriteCSV writes the view as comma-separated text with a header row.
// An empty view produces a header-only file.
func WriteCSV(w io.Writer, v View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(v.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < v.Len(); i++ {
		if err := cw.Write(v.Cells(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// EncodeCSV returns the view serialized by WriteCSV.
func EncodeCSV(v View) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
