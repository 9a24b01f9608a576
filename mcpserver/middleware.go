package mcpserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// loggingMiddleware logs one line per tool invocation with a unique id
// and the elapsed time. Arguments and results are never logged:
// prompts, image payloads, and the credential stay out of the logs.
func loggingMiddleware(logger *zap.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			id := uuid.NewString()
			tool := request.Params.Name

			logger.Info("tool call start",
				zap.String("invocation_id", id),
				zap.String("tool", tool),
			)
			start := time.Now()

			result, err := next(ctx, request)

			duration := time.Since(start)
			switch {
			case err != nil:
				logger.Error("tool call failed",
					zap.String("invocation_id", id),
					zap.String("tool", tool),
					zap.Duration("duration", duration),
					zap.Error(err),
				)
			case result != nil && result.IsError:
				logger.Warn("tool call returned error result",
					zap.String("invocation_id", id),
					zap.String("tool", tool),
					zap.Duration("duration", duration),
				)
			default:
				logger.Info("tool call success",
					zap.String("invocation_id", id),
					zap.String("tool", tool),
					zap.Duration("duration", duration),
				)
			}

			return result, err
		}
	}
}
