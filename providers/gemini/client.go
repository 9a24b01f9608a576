package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// doGenerate performs a text-to-image request.
func (p *Gemini) doGenerate(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error) {
	info, err := p.resolveModel(req.Model)
	if err != nil {
		return nil, err
	}

	gemReq := buildImageRequest(req.Prompt, req.Images, info, req.AspectRatio, req.Size)

	gemResp, err := p.doGenerateContent(ctx, info.ID, gemReq)
	if err != nil {
		return nil, err
	}

	return decodeImageResult(gemResp)
}

// doEdit performs an image-editing request. The wire shape is the same
// as generate; the input images are the subject being edited.
func (p *Gemini) doEdit(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error) {
	info, err := p.resolveModel(req.Model)
	if err != nil {
		return nil, err
	}

	gemReq := buildImageRequest(req.Prompt, req.Images, info, req.AspectRatio, req.Size)

	gemResp, err := p.doGenerateContent(ctx, info.ID, gemReq)
	if err != nil {
		return nil, err
	}

	return decodeImageResult(gemResp)
}

// doDescribe performs an image-understanding request.
func (p *Gemini) doDescribe(ctx context.Context, req *core.DescribeRequest) (string, error) {
	if len(req.Images) == 0 {
		return "", core.ErrNoImages
	}

	info, err := p.resolveModel(req.Model)
	if err != nil {
		return "", err
	}

	gemReq := buildDescribeRequest(req.Prompt, req.Images)

	gemResp, err := p.doGenerateContent(ctx, info.ID, gemReq)
	if err != nil {
		return "", err
	}

	return decodeDescription(gemResp)
}

// doGenerateContent performs one generateContent round trip. The API
// key travels as a query parameter; the Gemini endpoint does not accept
// it anywhere else for this call shape.
func (p *Gemini) doGenerateContent(ctx context.Context, model core.ModelID, gemReq *geminiRequest) (*geminiResponse, error) {
	body, err := json.Marshal(gemReq)
	if err != nil {
		return nil, newDecodeError(err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.config.BaseURL, model, url.QueryEscape(p.config.APIKey.Expose()))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, respBody)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		return nil, newDecodeError(err)
	}

	return &gemResp, nil
}
