// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/genzhealth/internal/dashboard"
	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupTestServer builds a server over the sample survey extract.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	table, err := dataset.Parse(strings.NewReader(testutil.SampleCSV))
	if err != nil {
		t.Fatalf("Failed to parse sample: %v", err)
	}

	server, err := NewServer(dashboard.New(table))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.svc == nil {
		t.Error("Expected non-nil svc")
	}
}

func TestNewServerRequiresService(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Error("Expected error for nil service")
	}
}

func TestHandleListFilterOptions(t *testing.T) {
	server := setupTestServer(t)

	_, output, err := server.handleListFilterOptions(context.Background(), &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleListFilterOptions failed: %v", err)
	}

	if len(output.Options) != 4 {
		t.Fatalf("Expected 4 filter options, got %d", len(output.Options))
	}
	gender := output.Options[0]
	want := []string{"All", "Female", "Male"}
	if strings.Join(gender.Values, ",") != strings.Join(want, ",") {
		t.Errorf("Gender values = %v, want %v", gender.Values, want)
	}
}

func TestHandleSummarize(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		input      selectionInput
		sampleSize int
		genders    int
	}{
		{"all", selectionInput{}, 9, 2},
		{"female", selectionInput{Gender: "Female"}, 6, 1},
		{"explicit all", selectionInput{Gender: "All", Smoker: "All"}, 9, 2},
		{"no match", selectionInput{Gender: "Male", Smoker: "Yes"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleSummarize(ctx, &mcp.CallToolRequest{}, tt.input)
			if err != nil {
				t.Fatalf("handleSummarize failed: %v", err)
			}
			if output.SampleSize != tt.sampleSize {
				t.Errorf("SampleSize = %d, want %d", output.SampleSize, tt.sampleSize)
			}
			if len(output.ByGender) != tt.genders {
				t.Errorf("len(ByGender) = %d, want %d", len(output.ByGender), tt.genders)
			}
			if len(output.ByBMICategory) != 4 {
				t.Errorf("len(ByBMICategory) = %d, want 4", len(output.ByBMICategory))
			}
		})
	}
}

func TestHandleSummarizeRoundsMeans(t *testing.T) {
	server := setupTestServer(t)

	_, output, err := server.handleSummarize(context.Background(), &mcp.CallToolRequest{}, selectionInput{})
	if err != nil {
		t.Fatalf("handleSummarize failed: %v", err)
	}

	female := output.ByGender[0]
	if female.Key != "Female" || female.Mean == nil || *female.Mean != 10.17 {
		t.Errorf("Female mean = %+v, want 10.17", female)
	}
}

func TestHandleClassifyBMI(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		bmi  float64
		want string
	}{
		{17.2, "Underweight"},
		{18.5, "Normal"},
		{25.0, "Overweight"},
		{30.0, "Obese"},
	}

	for _, tt := range tests {
		_, output, err := server.handleClassifyBMI(ctx, &mcp.CallToolRequest{}, classifyInput{BMI: tt.bmi})
		if err != nil {
			t.Fatalf("handleClassifyBMI(%v) failed: %v", tt.bmi, err)
		}
		if output.Category != tt.want {
			t.Errorf("handleClassifyBMI(%v) = %q, want %q", tt.bmi, output.Category, tt.want)
		}
	}
}

func TestHandleExportCSV(t *testing.T) {
	server := setupTestServer(t)

	_, output, err := server.handleExportCSV(context.Background(), &mcp.CallToolRequest{}, selectionInput{Gender: "Male"})
	if err != nil {
		t.Fatalf("handleExportCSV failed: %v", err)
	}

	if output.FileName != "genz_filtered.csv" {
		t.Errorf("FileName = %q", output.FileName)
	}
	if output.Rows != 2 {
		t.Errorf("Rows = %d, want 2", output.Rows)
	}
	lines := strings.Split(strings.TrimSpace(output.CSV), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], ",BMI_CATEGORY") {
		t.Errorf("Header missing BMI_CATEGORY: %s", lines[0])
	}
}

func TestHandleSummaryResource(t *testing.T) {
	server := setupTestServer(t)

	result, err := server.handleSummaryResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content, got %d", len(result.Contents))
	}
	if result.Contents[0].URI != "genz://summary" {
		t.Errorf("URI = %q", result.Contents[0].URI)
	}

	var summary struct {
		SampleSize int `json:"sample_size"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &summary); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if summary.SampleSize != 9 {
		t.Errorf("sample_size = %d, want 9", summary.SampleSize)
	}
}

func TestHandleOptionsResource(t *testing.T) {
	server := setupTestServer(t)

	result, err := server.handleOptionsResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleOptionsResource failed: %v", err)
	}

	var options []dashboard.FilterOption
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &options); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(options) != 4 {
		t.Errorf("Expected 4 options, got %d", len(options))
	}
	if options[3].Field != "EXERCISE" {
		t.Errorf("options[3].Field = %q, want EXERCISE", options[3].Field)
	}
}
