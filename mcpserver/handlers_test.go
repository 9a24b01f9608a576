package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// fakeClient simulates the image provider for handler tests.
type fakeClient struct {
	GenerateFunc func(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error)
	EditFunc     func(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error)
	DescribeFunc func(ctx context.Context, req *core.DescribeRequest) (string, error)
}

func (f *fakeClient) Generate(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error) {
	if f.GenerateFunc != nil {
		return f.GenerateFunc(ctx, req)
	}
	return nil, errors.New("GenerateFunc not implemented")
}

func (f *fakeClient) Edit(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error) {
	if f.EditFunc != nil {
		return f.EditFunc(ctx, req)
	}
	return nil, errors.New("EditFunc not implemented")
}

func (f *fakeClient) Describe(ctx context.Context, req *core.DescribeRequest) (string, error) {
	if f.DescribeFunc != nil {
		return f.DescribeFunc(ctx, req)
	}
	return "", errors.New("DescribeFunc not implemented")
}

func callRequest(tool string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	return req
}

func TestHandleGenerateSuccess(t *testing.T) {
	var got *core.GenerateRequest
	srv := New(&fakeClient{
		GenerateFunc: func(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error) {
			got = req
			return &core.ImageResult{
				MIMEType:    "image/png",
				Data:        "base64encodedimage",
				Description: "A beautiful sunset",
			}, nil
		},
	})

	result, err := srv.handleGenerate(context.Background(), callRequest("generate_image", map[string]any{
		"prompt":      "a sunset",
		"model":       "gemini-2.5-flash-image",
		"aspectRatio": "16:9",
		"imageSize":   "2K",
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, "a sunset", got.Prompt)
	assert.Equal(t, core.ModelID("gemini-2.5-flash-image"), got.Model)
	assert.Equal(t, core.AspectRatio16x9, got.AspectRatio)
	assert.Equal(t, core.ImageSize2K, got.Size)

	require.Len(t, result.Content, 2)
	img, ok := result.Content[0].(mcp.ImageContent)
	require.True(t, ok, "first content block must be the image")
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, "base64encodedimage", img.Data)

	text, ok := result.Content[1].(mcp.TextContent)
	require.True(t, ok, "second content block must be the caption")
	assert.Equal(t, "A beautiful sunset", text.Text)
}

func TestHandleGenerateWithoutDescription(t *testing.T) {
	srv := New(&fakeClient{
		GenerateFunc: func(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error) {
			return &core.ImageResult{MIMEType: "image/png", Data: "payload"}, nil
		},
	})

	result, err := srv.handleGenerate(context.Background(), callRequest("generate_image", map[string]any{
		"prompt": "a sunset",
	}))
	require.NoError(t, err)

	require.Len(t, result.Content, 1, "no text block when the model sent no caption")
	_, ok := result.Content[0].(mcp.ImageContent)
	assert.True(t, ok)
}

func TestHandleGenerateFailure(t *testing.T) {
	srv := New(&fakeClient{
		GenerateFunc: func(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error) {
			return nil, errors.New("gemini: no image data in response")
		},
	})

	result, err := srv.handleGenerate(context.Background(), callRequest("generate_image", map[string]any{
		"prompt": "a sunset",
	}))
	require.NoError(t, err, "handler failures surface as error results, not protocol faults")
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Failed to generate image: gemini: no image data in response", text.Text)
}

func TestHandleEditCoercesAttachments(t *testing.T) {
	var got *core.EditRequest
	srv := New(&fakeClient{
		EditFunc: func(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error) {
			got = req
			return &core.ImageResult{MIMEType: "image/png", Data: "edited"}, nil
		},
	})

	result, err := srv.handleEdit(context.Background(), callRequest("edit_image", map[string]any{
		"prompt": "make the sky purple",
		"images": []any{
			map[string]any{"data": "Zmlyc3Q=", "mimeType": "image/jpeg"},
			map[string]any{"data": "c2Vjb25k"},
		},
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	require.NotNil(t, got)
	require.Len(t, got.Images, 2)
	assert.Equal(t, core.Attachment{MIMEType: "image/jpeg", Data: "Zmlyc3Q="}, got.Images[0])
	assert.Equal(t, core.Attachment{MIMEType: "image/png", Data: "c2Vjb25k"}, got.Images[1], "missing MIME type defaults to image/png")
}

func TestHandleEditFailure(t *testing.T) {
	srv := New(&fakeClient{
		EditFunc: func(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error) {
			return nil, errors.New("gemini: empty response")
		},
	})

	result, err := srv.handleEdit(context.Background(), callRequest("edit_image", map[string]any{
		"prompt": "make the sky purple",
		"images": []any{map[string]any{"data": "b3JpZ2luYWw="}},
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text := result.Content[0].(mcp.TextContent)
	assert.Contains(t, text.Text, "Failed to edit image: ")
}

func TestHandleEditNoImages(t *testing.T) {
	called := false
	srv := New(&fakeClient{
		EditFunc: func(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error) {
			called = true
			return &core.ImageResult{MIMEType: "image/png", Data: "edited"}, nil
		},
	})

	// Hosts do not reliably enforce required arguments, so the handler
	// must reject the call itself.
	result, err := srv.handleEdit(context.Background(), callRequest("edit_image", map[string]any{
		"prompt": "make the sky purple",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.False(t, called, "provider must not be called without images")

	text := result.Content[0].(mcp.TextContent)
	assert.Equal(t, "Failed to edit image: no images: supply at least one image attachment", text.Text)
}

func TestHandleDescribeSuccess(t *testing.T) {
	var got *core.DescribeRequest
	srv := New(&fakeClient{
		DescribeFunc: func(ctx context.Context, req *core.DescribeRequest) (string, error) {
			got = req
			return "A golden retriever on a beach.", nil
		},
	})

	result, err := srv.handleDescribe(context.Background(), callRequest("describe_image", map[string]any{
		"prompt": "What breed is this dog?",
		"images": []any{map[string]any{"data": "ZG9n", "mimeType": "image/jpeg"}},
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	require.NotNil(t, got)
	assert.Equal(t, "What breed is this dog?", got.Prompt)
	require.Len(t, got.Images, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "A golden retriever on a beach.", text.Text)
}

func TestHandleDescribeFailure(t *testing.T) {
	srv := New(&fakeClient{
		DescribeFunc: func(ctx context.Context, req *core.DescribeRequest) (string, error) {
			return "", errors.New("no images: supply at least one image attachment")
		},
	})

	result, err := srv.handleDescribe(context.Background(), callRequest("describe_image", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text := result.Content[0].(mcp.TextContent)
	assert.Contains(t, text.Text, "Failed to describe image: ")
}

func TestDecodeAttachments(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []core.Attachment
	}{
		{
			name: "nil input",
			in:   nil,
			want: nil,
		},
		{
			name: "not a list",
			in:   "ZG9n",
			want: nil,
		},
		{
			name: "entries without data are skipped",
			in: []any{
				map[string]any{"mimeType": "image/png"},
				map[string]any{"data": "a2VwdA=="},
			},
			want: []core.Attachment{{MIMEType: "image/png", Data: "a2VwdA=="}},
		},
		{
			name: "order preserved",
			in: []any{
				map[string]any{"data": "Zmlyc3Q=", "mimeType": "image/webp"},
				map[string]any{"data": "c2Vjb25k", "mimeType": "image/gif"},
			},
			want: []core.Attachment{
				{MIMEType: "image/webp", Data: "Zmlyc3Q="},
				{MIMEType: "image/gif", Data: "c2Vjb25k"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAttachments(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
