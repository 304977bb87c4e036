// ABOUTME: CSV loader for the BRFSS Gen Z extract, backed by a gota dataframe.
// ABOUTME: Validates required columns, parses numerics, derives BMI_CATEGORY.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/harperreed/genzhealth/internal/models"
)

// DefaultDataFile is the file name the dashboard loads when none is configured.
const DefaultDataFile = "GenZ_Health_Insights_BRFFS2023.csv"

var (
	// ErrMissingColumn is returned when the source lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrInvalidNumber is returned when a BMI or MENTHLTH cell is not numeric.
	ErrInvalidNumber = errors.New("invalid numeric value")
	// ErrNoRows is returned when the source has a header but no records.
	ErrNoRows = errors.New("dataset has no rows")
)

// missingValues are the cell spellings treated as absent.
var missingValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "<NA>"}

// Load reads the CSV file at path into a Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Parse reads CSV from r into a Table. A header row is required.
func Parse(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse csv: %w", df.Err)
	}
	return fromDataFrame(df)
}

func fromDataFrame(df dataframe.DataFrame) (*Table, error) {
	names := df.Names()
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	for _, f := range models.RequiredFields {
		if !present[string(f)] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, f)
		}
	}

	// A BMI_CATEGORY column in the source is replaced by the derived one.
	source := make([]string, 0, len(names))
	for _, n := range names {
		if n != string(models.FieldBMICategory) {
			source = append(source, n)
		}
	}

	cols := make([]series.Series, len(source))
	pos := make(map[models.Field]int, len(models.RequiredFields))
	for i, n := range source {
		cols[i] = df.Col(n)
		pos[models.Field(n)] = i
	}

	nrows := df.Nrow()
	if nrows == 0 {
		return nil, ErrNoRows
	}
	rows := make([]models.Respondent, nrows)
	for i := 0; i < nrows; i++ {
		raw := make([]string, len(cols))
		for j := range cols {
			if el := cols[j].Elem(i); !el.IsNA() {
				raw[j] = el.String()
			}
		}

		r := models.Respondent{
			Gender:   optString(raw[pos[models.FieldGender]]),
			Smoker:   optString(raw[pos[models.FieldSmoker]]),
			Drinker:  optString(raw[pos[models.FieldDrinker]]),
			Exercise: optString(raw[pos[models.FieldExercise]]),
			Raw:      raw,
		}

		var err error
		if r.BMI, err = optFloat(raw[pos[models.FieldBMI]]); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", i+1, models.FieldBMI, err)
		}
		if r.MentHlth, err = optFloat(raw[pos[models.FieldMentHlth]]); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", i+1, models.FieldMentHlth, err)
		}
		r.BMICategory = models.ClassifyBMI(r.BMI)

		rows[i] = r
	}

	columns := append(source, string(models.FieldBMICategory))
	return &Table{columns: columns, rows: rows}, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	return &v, nil
}
