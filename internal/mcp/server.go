// ABOUTME: MCP server setup for the Gen Z survey dashboard.
// ABOUTME: Wraps the MCP server around the read-only dashboard service.
package mcp

import (
	"context"
	"errors"

	"github.com/harperreed/genzhealth/internal/dashboard"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with dashboard access.
type Server struct {
	mcpServer *mcp.Server
	svc       *dashboard.Service
}

// NewServer creates a new MCP server over the given dashboard service.
func NewServer(svc *dashboard.Service) (*Server, error) {
	if svc == nil {
		return nil, errors.New("dashboard service is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "genzhealth",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
