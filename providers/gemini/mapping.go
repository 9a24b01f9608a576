package gemini

import (
	"strings"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// defaultDescribePrompt is used when a describe request carries no prompt.
const defaultDescribePrompt = "Describe this image in detail."

// buildImageRequest assembles a generate/edit payload: the prompt part
// first, then one inline part per attachment in input order. Both text
// and image output modalities are requested.
func buildImageRequest(prompt string, images []core.Attachment, info *core.ModelInfo, aspect core.AspectRatio, size core.ImageSize) *geminiRequest {
	r := &geminiRequest{
		Contents: []geminiContent{{
			Parts: appendAttachmentParts([]geminiPart{{Text: prompt}}, images),
		}},
		GenerationConfig: &geminiGenConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	r.GenerationConfig.ImageConfig = buildImageConfig(info, aspect, size)

	return r
}

// buildDescribeRequest assembles a describe payload: the instruction
// part first, then the attachments in input order. Only text output is
// requested.
func buildDescribeRequest(prompt string, images []core.Attachment) *geminiRequest {
	if prompt == "" {
		prompt = defaultDescribePrompt
	}

	return &geminiRequest{
		Contents: []geminiContent{{
			Parts: appendAttachmentParts([]geminiPart{{Text: prompt}}, images),
		}},
		GenerationConfig: &geminiGenConfig{
			ResponseModalities: []string{"TEXT"},
		},
	}
}

// appendAttachmentParts appends one inline-data part per attachment,
// preserving input order. Payloads pass through verbatim.
func appendAttachmentParts(parts []geminiPart, images []core.Attachment) []geminiPart {
	for _, img := range images {
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{
				MimeType: img.MIMEType,
				Data:     img.Data,
			},
		})
	}
	return parts
}

// buildImageConfig gates the shaping config on the model's declared
// capability. For models without FeatureImageConfig the caller's
// shaping intent is dropped silently, never an error. Only supplied
// fields are carried.
func buildImageConfig(info *core.ModelInfo, aspect core.AspectRatio, size core.ImageSize) *geminiImageConfig {
	if !info.HasCapability(core.FeatureImageConfig) {
		return nil
	}
	if aspect == "" && size == "" {
		return nil
	}

	return &geminiImageConfig{
		AspectRatio: string(aspect),
		ImageSize:   string(size),
	}
}

// imageAccumulator folds a candidate's ordered parts into the
// single-image result contract: a later image part overwrites an
// earlier one, and a later text part overwrites an earlier one. The
// describe path concatenates text instead; the two policies are
// deliberately different and must stay that way.
type imageAccumulator struct {
	mimeType    string
	data        string
	description string
	hasImage    bool
}

// fold consumes one part.
func (a *imageAccumulator) fold(part geminiPart) {
	if part.InlineData != nil {
		a.mimeType = part.InlineData.MimeType
		a.data = part.InlineData.Data
		a.hasImage = true
	}
	if part.Text != "" {
		a.description = part.Text
	}
}

// decodeImageResult turns a generate/edit response into an ImageResult
// or a classified failure. The checks run in a fixed order: body-level
// error object, then empty candidates, then the part scan.
func decodeImageResult(resp *geminiResponse) (*core.ImageResult, error) {
	if resp.Error != nil {
		return nil, newProviderReportedError(resp.Error)
	}
	if len(resp.Candidates) == 0 {
		return nil, newEmptyResponseError("no image generated: empty response")
	}

	var acc imageAccumulator
	for _, part := range resp.Candidates[0].Content.Parts {
		acc.fold(part)
	}

	if !acc.hasImage {
		return nil, newMissingPayloadError("no image data in response")
	}

	return &core.ImageResult{
		MIMEType:    acc.mimeType,
		Data:        acc.data,
		Description: acc.description,
	}, nil
}

// decodeDescription turns a describe response into the description
// text or a classified failure. Text parts concatenate in response
// order with no separator.
func decodeDescription(resp *geminiResponse) (string, error) {
	if resp.Error != nil {
		return "", newProviderReportedError(resp.Error)
	}
	if len(resp.Candidates) == 0 {
		return "", newEmptyResponseError("no response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	if sb.Len() == 0 {
		return "", newMissingPayloadError("no description in response")
	}

	return sb.String(), nil
}
