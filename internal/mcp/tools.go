// ABOUTME: MCP tool implementations for the survey dashboard.
// ABOUTME: Filter options, summaries, BMI classification, and CSV export.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/genzhealth/internal/aggregate"
	"github.com/harperreed/genzhealth/internal/dashboard"
	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/filter"
	"github.com/harperreed/genzhealth/internal/models"
	"github.com/harperreed/genzhealth/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_filter_options
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_filter_options",
		Description: "List the values available for each filter (gender, smoker, drinker, exercise)",
	}, s.handleListFilterOptions)

	// summarize
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "summarize",
		Description: "Sample size and mean poor mental health days by gender and BMI category for a filter selection",
	}, s.handleSummarize)

	// classify_bmi
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "classify_bmi",
		Description: "Classify a BMI value as Underweight, Normal, Overweight, or Obese",
	}, s.handleClassifyBMI)

	// export_csv
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_csv",
		Description: "Export the filtered respondents as CSV text",
	}, s.handleExportCSV)
}

// Tool input/output types

type emptyInput struct{}

type optionsOutput struct {
	Options []dashboard.FilterOption `json:"options"`
}

type selectionInput struct {
	Gender   string `json:"gender,omitempty" jsonschema:"Gender to filter by, or All (default)"`
	Smoker   string `json:"smoker,omitempty" jsonschema:"Smoker status to filter by, or All (default)"`
	Drinker  string `json:"drinker,omitempty" jsonschema:"Drinker status to filter by, or All (default)"`
	Exercise string `json:"exercise,omitempty" jsonschema:"Exercise status to filter by, or All (default)"`
}

func (in selectionInput) selection() filter.Selection {
	return filter.Selection{
		Gender:   in.Gender,
		Smoker:   in.Smoker,
		Drinker:  in.Drinker,
		Exercise: in.Exercise,
	}.Normalize()
}

type summaryOutput struct {
	Selection     filter.Selection      `json:"selection"`
	SampleSize    int                   `json:"sample_size"`
	ByGender      []aggregate.GroupMean `json:"by_gender"`
	ByBMICategory []aggregate.GroupMean `json:"by_bmi_category"`
	Source        string                `json:"source"`
}

type classifyInput struct {
	BMI float64 `json:"bmi" jsonschema:"Body mass index value"`
}

type classifyOutput struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type exportOutput struct {
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
	CSV      string `json:"csv"`
}

// Tool handlers

func (s *Server) handleListFilterOptions(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, optionsOutput, error) {
	return nil, optionsOutput{Options: s.svc.Options()}, nil
}

func (s *Server) handleSummarize(ctx context.Context, req *mcp.CallToolRequest, input selectionInput) (*mcp.CallToolResult, summaryOutput, error) {
	sum := report.New(s.svc.Snapshot(input.selection()))
	return nil, summaryOutput{
		Selection:     sum.Selection,
		SampleSize:    sum.SampleSize,
		ByGender:      sum.ByGender,
		ByBMICategory: sum.ByBMICategory,
		Source:        sum.Source,
	}, nil
}

func (s *Server) handleClassifyBMI(ctx context.Context, req *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	bmi := input.BMI
	cat := models.ClassifyBMI(&bmi)
	if cat.IsMissing() {
		return nil, classifyOutput{}, fmt.Errorf("cannot classify BMI %v", input.BMI)
	}
	return nil, classifyOutput{BMI: bmi, Category: string(cat)}, nil
}

func (s *Server) handleExportCSV(ctx context.Context, req *mcp.CallToolRequest, input selectionInput) (*mcp.CallToolResult, exportOutput, error) {
	view := s.svc.Filter(input.selection())
	data, err := dataset.EncodeCSV(view)
	if err != nil {
		return nil, exportOutput{}, fmt.Errorf("failed to export csv: %w", err)
	}

	return nil, exportOutput{
		FileName: dataset.ExportFileName,
		Rows:     view.Len(),
		CSV:      string(data),
	}, nil
}
