// ABOUTME: Summary report of a dashboard snapshot.
// ABOUTME: Supports JSON, YAML, and Markdown output formats.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/genzhealth/internal/aggregate"
	"github.com/harperreed/genzhealth/internal/dashboard"
	"github.com/harperreed/genzhealth/internal/filter"
	"gopkg.in/yaml.v3"
)

// Attribution credits the data source.
const Attribution = "Data source: CDC BRFSS 2023 (Behavioral Risk Factor Surveillance System)"

// Summary is the export format of a snapshot's aggregates.
type Summary struct {
	Version       string                `json:"version" yaml:"version"`
	GeneratedAt   time.Time             `json:"generated_at" yaml:"generated_at"`
	Tool          string                `json:"tool" yaml:"tool"`
	Selection     filter.Selection      `json:"selection" yaml:"selection"`
	SampleSize    int                   `json:"sample_size" yaml:"sample_size"`
	ByGender      []aggregate.GroupMean `json:"by_gender" yaml:"by_gender"`
	ByBMICategory []aggregate.GroupMean `json:"by_bmi_category" yaml:"by_bmi_category"`
	Source        string                `json:"source" yaml:"source"`
}

// New builds a Summary from a snapshot.
func New(snap *dashboard.Snapshot) *Summary {
	byGender := snap.ByGender
	if byGender == nil {
		byGender = []aggregate.GroupMean{}
	}
	return &Summary{
		Version:       "1.0",
		GeneratedAt:   time.Now(),
		Tool:          "genzhealth",
		Selection:     snap.Selection,
		SampleSize:    snap.SampleSize,
		ByGender:      roundAll(byGender),
		ByBMICategory: roundAll(snap.ByBMICategory),
		Source:        Attribution,
	}
}

func roundAll(groups []aggregate.GroupMean) []aggregate.GroupMean {
	out := make([]aggregate.GroupMean, len(groups))
	for i, g := range groups {
		if g.Mean != nil {
			m := aggregate.RoundTo2(*g.Mean)
			g.Mean = &m
		}
		out[i] = g
	}
	return out
}

// JSON encodes the summary as indented JSON.
func (s *Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML encodes the summary as YAML.
func (s *Summary) YAML() ([]byte, error) {
	yamlData := struct {
		Version       string                `yaml:"version"`
		GeneratedAt   string                `yaml:"generated_at"`
		Tool          string                `yaml:"tool"`
		Selection     filter.Selection      `yaml:"selection"`
		SampleSize    int                   `yaml:"sample_size"`
		ByGender      []aggregate.GroupMean `yaml:"by_gender"`
		ByBMICategory []aggregate.GroupMean `yaml:"by_bmi_category"`
		Source        string                `yaml:"source"`
	}{
		Version:       s.Version,
		GeneratedAt:   s.GeneratedAt.Format(time.RFC3339),
		Tool:          s.Tool,
		Selection:     s.Selection,
		SampleSize:    s.SampleSize,
		ByGender:      s.ByGender,
		ByBMICategory: s.ByBMICategory,
		Source:        s.Source,
	}
	return yaml.Marshal(yamlData)
}

// Markdown renders the summary as Markdown tables.
func (s *Summary) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Gen Z Health Habits Summary\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04")))

	sb.WriteString("## Filters\n\n")
	sb.WriteString("| Filter | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Gender | %s |\n", s.Selection.Gender))
	sb.WriteString(fmt.Sprintf("| Smoker | %s |\n", s.Selection.Smoker))
	sb.WriteString(fmt.Sprintf("| Drinker | %s |\n", s.Selection.Drinker))
	sb.WriteString(fmt.Sprintf("| Exercise | %s |\n", s.Selection.Exercise))
	sb.WriteString(fmt.Sprintf("\n**Sample Size:** %d\n\n", s.SampleSize))

	writeGroups(&sb, "Avg Poor Mental Health Days by Gender", "Gender", s.ByGender)
	writeGroups(&sb, "Avg Mental Health by BMI Category", "BMI Category", s.ByBMICategory)

	sb.WriteString(fmt.Sprintf("_%s_\n", s.Source))
	return sb.String()
}

func writeGroups(sb *strings.Builder, title, keyHeader string, groups []aggregate.GroupMean) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(groups) == 0 {
		sb.WriteString("No data.\n\n")
		return
	}
	sb.WriteString(fmt.Sprintf("| %s | Respondents | Avg Days |\n", keyHeader))
	sb.WriteString("|------|-------------|----------|\n")
	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", g.Key, g.Count, g.Label()))
	}
	sb.WriteString("\n")
}
