package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	catalogsvc "github.com/calvine/marketplace-mcp/internal/service/catalog"
)

// Server wraps the mark3labs/mcp-go MCPServer and its StreamableHTTPServer.
// Tool registration lives in tools.go; this file is lifecycle only.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

// New creates the MCP transport server and registers the offer tool.
func New(catalogSvc *catalogsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"marketplace-offers",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	RegisterTools(mcpSrv, catalogSvc)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler serving the streamable MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
