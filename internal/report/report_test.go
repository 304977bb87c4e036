// ABOUTME: Tests for summary report formats.
// ABOUTME: Verifies JSON, YAML, and Markdown output.
package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/genzhealth/internal/dashboard"
	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/filter"
	"github.com/harperreed/genzhealth/internal/testutil"
	"gopkg.in/yaml.v3"
)

func summaryFor(t *testing.T, sel filter.Selection) *Summary {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(testutil.SampleCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return New(dashboard.New(table).Snapshot(sel))
}

func TestSummaryJSON(t *testing.T) {
	s := summaryFor(t, filter.Selection{Gender: "Female"})

	data, err := s.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var back struct {
		Tool          string `json:"tool"`
		SampleSize    int    `json:"sample_size"`
		ByBMICategory []struct {
			Key  string   `json:"key"`
			Mean *float64 `json:"mean"`
		} `json:"by_bmi_category"`
		Selection filter.Selection `json:"selection"`
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if back.Tool != "genzhealth" {
		t.Errorf("Tool = %q, want genzhealth", back.Tool)
	}
	if back.SampleSize != 6 {
		t.Errorf("SampleSize = %d, want 6", back.SampleSize)
	}
	if back.Selection.Gender != "Female" || back.Selection.Smoker != filter.All {
		t.Errorf("Selection = %+v", back.Selection)
	}
	if len(back.ByBMICategory) != 4 {
		t.Fatalf("len(ByBMICategory) = %d, want 4", len(back.ByBMICategory))
	}
	if back.ByBMICategory[1].Key != "Normal" || back.ByBMICategory[1].Mean == nil || *back.ByBMICategory[1].Mean != 7 {
		t.Errorf("Normal group = %+v", back.ByBMICategory[1])
	}
}

func TestSummaryRoundsMeans(t *testing.T) {
	s := summaryFor(t, filter.Selection{})

	if got := *s.ByGender[0].Mean; got != 10.17 {
		t.Errorf("Female mean = %v, want 10.17", got)
	}
}

func TestSummaryEmptyJSONUsesArrays(t *testing.T) {
	s := summaryFor(t, filter.Selection{Gender: "Male", Smoker: "Yes"})

	data, err := s.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"by_gender": []`) {
		t.Errorf("expected empty by_gender array, got:\n%s", data)
	}
	if !strings.Contains(string(data), `"mean": null`) {
		t.Errorf("expected null means for empty categories, got:\n%s", data)
	}
}

func TestSummaryYAML(t *testing.T) {
	s := summaryFor(t, filter.Selection{})

	data, err := s.YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}

	var back map[string]interface{}
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if back["tool"] != "genzhealth" {
		t.Errorf("tool = %v, want genzhealth", back["tool"])
	}
	if back["sample_size"] != 9 {
		t.Errorf("sample_size = %v, want 9", back["sample_size"])
	}
	groups, ok := back["by_bmi_category"].([]interface{})
	if !ok || len(groups) != 4 {
		t.Errorf("by_bmi_category = %v, want 4 entries", back["by_bmi_category"])
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := summaryFor(t, filter.Selection{Gender: "Male"}).Markdown()

	for _, want := range []string{
		"# Gen Z Health Habits Summary",
		"| Gender | Male |",
		"**Sample Size:** 2",
		"| Male | 2 | 5.00 |",
		"| Underweight | 0 | n/a |",
		"| Obese | 1 | 7.00 |",
		Attribution,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q\n%s", want, md)
		}
	}
}

func TestSummaryMarkdownNoData(t *testing.T) {
	md := summaryFor(t, filter.Selection{Gender: "Male", Smoker: "Yes"}).Markdown()

	if !strings.Contains(md, "No data.") {
		t.Errorf("expected No data marker:\n%s", md)
	}
}
