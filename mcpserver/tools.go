package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
	"github.com/mrafaeldie12/nano-banana-pro-mcp/providers/gemini"
)

// modelEnum lists the allow-listed model IDs for tool schemas.
func modelEnum() []string {
	ids := gemini.AllowedModels()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// attachmentSchema describes one input image. Only the payload is
// required; the MIME type defaults to image/png.
func attachmentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"data": map[string]any{
				"type":        "string",
				"description": "Base64-encoded image payload.",
			},
			"mimeType": map[string]any{
				"type":        "string",
				"description": "Image MIME type such as image/png or image/jpeg. Defaults to image/png.",
			},
		},
		"required": []string{"data"},
	}
}

func generateTool() mcp.Tool {
	return mcp.NewTool("generate_image",
		mcp.WithDescription("Generate an image from a text prompt using Google's Nano Banana (Gemini) image models. Returns the image inline, followed by any accompanying text from the model."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("Text description of the image to generate."),
		),
		mcp.WithString("model",
			mcp.Description("Model to use. Defaults to "+string(gemini.DefaultModel)+"."),
			mcp.Enum(modelEnum()...),
		),
		mcp.WithString("aspectRatio",
			mcp.Description("Aspect ratio of the generated image. Ignored by models without image output."),
			mcp.Enum(string(core.AspectRatio1x1), string(core.AspectRatio3x4), string(core.AspectRatio4x3), string(core.AspectRatio9x16), string(core.AspectRatio16x9)),
		),
		mcp.WithString("imageSize",
			mcp.Description("Resolution of the generated image. Ignored by models without image output."),
			mcp.Enum(string(core.ImageSize1K), string(core.ImageSize2K), string(core.ImageSize4K)),
		),
		mcp.WithArray("images",
			mcp.Description("Optional guidance images to steer the generation."),
			mcp.Items(attachmentSchema()),
		),
	)
}

func editTool() mcp.Tool {
	return mcp.NewTool("edit_image",
		mcp.WithDescription("Edit one or more images according to a text prompt using Google's Nano Banana (Gemini) image models. Returns the edited image inline."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("Instructions describing how to transform the input images."),
		),
		mcp.WithArray("images",
			mcp.Required(),
			mcp.Description("Images to edit, in order."),
			mcp.Items(attachmentSchema()),
		),
		mcp.WithString("model",
			mcp.Description("Model to use. Defaults to "+string(gemini.DefaultModel)+"."),
			mcp.Enum(modelEnum()...),
		),
	)
}

func describeTool() mcp.Tool {
	return mcp.NewTool("describe_image",
		mcp.WithDescription("Describe the contents of one or more images using Google's Gemini models. Returns a text description."),
		mcp.WithArray("images",
			mcp.Required(),
			mcp.Description("Images to describe, in order."),
			mcp.Items(attachmentSchema()),
		),
		mcp.WithString("prompt",
			mcp.Description("Optional question or instruction about the images. Defaults to a general description request."),
		),
		mcp.WithString("model",
			mcp.Description("Model to use. Defaults to "+string(gemini.DefaultModel)+"."),
			mcp.Enum(modelEnum()...),
		),
	)
}
