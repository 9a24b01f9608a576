package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	req := &core.GenerateRequest{
		Prompt:      cast.ToString(args["prompt"]),
		Model:       core.ModelID(cast.ToString(args["model"])),
		AspectRatio: core.AspectRatio(cast.ToString(args["aspectRatio"])),
		Size:        core.ImageSize(cast.ToString(args["imageSize"])),
		Images:      decodeAttachments(args["images"]),
	}

	result, err := s.client.Generate(ctx, req)
	if err != nil {
		return mcp.NewToolResultError("Failed to generate image: " + err.Error()), nil
	}

	return imageToolResult(result), nil
}

func (s *Server) handleEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	req := &core.EditRequest{
		Prompt: cast.ToString(args["prompt"]),
		Model:  core.ModelID(cast.ToString(args["model"])),
		Images: decodeAttachments(args["images"]),
	}

	// The schema marks images as required, but hosts are not obliged to
	// enforce that. Catch it here rather than letting the request reach
	// the API without a subject to edit.
	if len(req.Images) == 0 {
		return mcp.NewToolResultError("Failed to edit image: " + core.ErrNoImages.Error()), nil
	}

	result, err := s.client.Edit(ctx, req)
	if err != nil {
		return mcp.NewToolResultError("Failed to edit image: " + err.Error()), nil
	}

	return imageToolResult(result), nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	req := &core.DescribeRequest{
		Prompt: cast.ToString(args["prompt"]),
		Model:  core.ModelID(cast.ToString(args["model"])),
		Images: decodeAttachments(args["images"]),
	}

	description, err := s.client.Describe(ctx, req)
	if err != nil {
		return mcp.NewToolResultError("Failed to describe image: " + err.Error()), nil
	}

	return mcp.NewToolResultText(description), nil
}

// decodeAttachments coerces the host's images argument into typed
// attachments. Entries without a payload are skipped; a missing MIME
// type defaults to image/png. Payloads pass through verbatim.
func decodeAttachments(v any) []core.Attachment {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]core.Attachment, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		att := core.Attachment{
			Data:     cast.ToString(m["data"]),
			MIMEType: cast.ToString(m["mimeType"]),
		}
		if att.Data == "" {
			continue
		}
		if att.MIMEType == "" {
			att.MIMEType = "image/png"
		}

		out = append(out, att)
	}
	return out
}

// imageToolResult maps a successful generate/edit into the host's
// content sequence: the image block first, then a text block only when
// a description is present.
func imageToolResult(result *core.ImageResult) *mcp.CallToolResult {
	content := []mcp.Content{
		mcp.NewImageContent(result.Data, result.MIMEType),
	}
	if result.Description != "" {
		content = append(content, mcp.NewTextContent(result.Description))
	}
	return &mcp.CallToolResult{Content: content}
}
