// ABOUTME: MCP server setup for the lifedash store.
// ABOUTME: Wraps the MCP server with a storage Repository and the local time zone.
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifedash/internal/storage"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	loc       *time.Location
	now       func() time.Time
}

// NewServer creates a new MCP server over repo. loc decides what "today" means; nil uses time.Local.
func NewServer(repo storage.Repository, loc *time.Location) (*Server, error) {
	if loc == nil {
		loc = time.Local
	}
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lifedash",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		loc:       loc,
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) localNow() time.Time {
	return s.now().In(s.loc)
}
