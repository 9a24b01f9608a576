package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// ImageClient is the subset of the provider the tools need.
type ImageClient interface {
	Generate(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error)
	Edit(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error)
	Describe(ctx context.Context, req *core.DescribeRequest) (string, error)
}

// Server wires an ImageClient into an MCP stdio server.
type Server struct {
	client  ImageClient
	logger  *zap.Logger
	name    string
	version string
	mcp     *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger. It must write to stderr;
// stdout carries the protocol.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersion sets the version advertised to the host during initialize.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// New creates an MCP server exposing the generate_image, edit_image,
// and describe_image tools backed by the given client.
func New(client ImageClient, opts ...Option) *Server {
	s := &Server{
		client:  client,
		logger:  zap.NewNop(),
		name:    "nano-banana-pro",
		version: "dev",
	}

	for _, opt := range opts {
		opt(s)
	}

	s.mcp = server.NewMCPServer(
		s.name,
		s.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(loggingMiddleware(s.logger)),
	)

	s.mcp.AddTool(generateTool(), s.handleGenerate)
	s.mcp.AddTool(editTool(), s.handleEdit)
	s.mcp.AddTool(describeTool(), s.handleDescribe)

	return s
}

// ServeStdio serves requests over stdin/stdout until the host closes
// the stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
