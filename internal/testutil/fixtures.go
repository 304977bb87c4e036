// ABOUTME: Shared survey fixtures for tests across packages.
// ABOUTME: Provides a small CSV extract and helpers to place it on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleCSV is a 10-row extract: 6 Female rows (all with MENTHLTH),
// 3 Male rows (one without MENTHLTH) and one row without GENDER or EXERCISE.
//
// Derived BMI categories by row: Underweight, Normal, Overweight, Obese,
// missing, Normal, Normal, Overweight, Obese, Overweight.
const SampleCSV = `AGE,GENDER,SMOKER,DRINKER,EXERCISE,BMI,MENTHLTH
19,Female,No,Yes,Yes,17.2,5
21,Female,No,No,Yes,22.4,0
23,Female,Yes,Yes,No,27.1,10
24,Female,No,Yes,Yes,31.5,30
20,Female,Yes,No,No,,2
22,Female,No,No,Yes,18.5,14
25,Male,No,Yes,Yes,24.9,3
26,Male,Yes,Yes,No,29.9,
18,Male,No,No,Yes,30.0,7
23,,No,Yes,,25.0,1
`

// WriteFile writes content to a file in a fresh temp directory and
// returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteSample writes SampleCSV to a temp file and returns its path.
func WriteSample(t *testing.T) string {
	t.Helper()
	return WriteFile(t, "sample.csv", SampleCSV)
}
