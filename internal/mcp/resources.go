// ABOUTME: MCP resource implementations for the survey dashboard.
// ABOUTME: Provides genz://summary and genz://options resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/genzhealth/internal/filter"
	"github.com/harperreed/genzhealth/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	summaryURI = "genz://summary"
	optionsURI = "genz://options"
)

func (s *Server) registerResources() {
	// genz://summary - aggregations over every respondent
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Survey Summary",
		Description: "Sample size and mean poor mental health days by gender and BMI category, unfiltered",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// genz://options - filter values
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         optionsURI,
		Name:        "Filter Options",
		Description: "Values available for each filter control",
		MIMEType:    "application/json",
	}, s.handleOptionsResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sum := report.New(s.svc.Snapshot(filter.Selection{}))
	data, err := sum.JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return jsonResource(summaryURI, data), nil
}

func (s *Server) handleOptionsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.svc.Options(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options: %w", err)
	}
	return jsonResource(optionsURI, data), nil
}

func jsonResource(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}
