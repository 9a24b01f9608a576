package core

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio16x9 AspectRatio = "16:9"
)

// IsValid reports whether the aspect ratio is a recognized value.
func (a AspectRatio) IsValid() bool {
	switch a {
	case AspectRatio1x1, AspectRatio3x4, AspectRatio4x3, AspectRatio9x16, AspectRatio16x9:
		return true
	default:
		return false
	}
}

// ImageSize represents the output resolution for generated images.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// IsValid reports whether the image size is a recognized value.
func (s ImageSize) IsValid() bool {
	switch s {
	case ImageSize1K, ImageSize2K, ImageSize4K:
		return true
	default:
		return false
	}
}

// Attachment is an input image supplied as generation guidance, edit
// input, or describe input. The payload is base64-encoded and passed
// through to the provider verbatim; no size or format validation is
// performed locally.
type Attachment struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// NewAttachment wraps raw image bytes in an Attachment, detecting the
// MIME type from the payload's magic bytes.
func NewAttachment(data []byte) Attachment {
	return Attachment{
		MIMEType: DetectMIMEType("", data),
		Data:     base64.StdEncoding.EncodeToString(data),
	}
}

// Bytes decodes and returns the attachment payload.
func (a Attachment) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(a.Data)
}

// DetectMIMEType detects an image MIME type from a filename extension
// or, failing that, from the payload's magic bytes. It defaults to
// image/png when neither is conclusive.
func DetectMIMEType(filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	}

	if len(data) >= 8 {
		if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
			return "image/png"
		}
		if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
			return "image/jpeg"
		}
		if data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' {
			return "image/webp"
		}
		if data[0] == 'G' && data[1] == 'I' && data[2] == 'F' && data[3] == '8' {
			return "image/gif"
		}
	}

	return "image/png"
}

// GenerateRequest represents a text-to-image request.
type GenerateRequest struct {
	Model  ModelID `json:"model,omitempty"`
	Prompt string  `json:"prompt"`

	// Optional shaping parameters, honored only by models with
	// FeatureImageConfig and silently dropped otherwise.
	AspectRatio AspectRatio `json:"aspect_ratio,omitempty"`
	Size        ImageSize   `json:"image_size,omitempty"`

	// Optional guidance images, sent after the prompt in order.
	Images []Attachment `json:"images,omitempty"`
}

// EditRequest represents an image-editing request. It is a constrained
// variant of generate: the input images are the subject being edited
// rather than loose guidance.
type EditRequest struct {
	Model  ModelID      `json:"model,omitempty"`
	Prompt string       `json:"prompt"`
	Images []Attachment `json:"images"`

	AspectRatio AspectRatio `json:"aspect_ratio,omitempty"`
	Size        ImageSize   `json:"image_size,omitempty"`
}

// DescribeRequest represents an image-understanding request.
type DescribeRequest struct {
	Model ModelID `json:"model,omitempty"`

	// Prompt overrides the default describe instruction when set.
	Prompt string       `json:"prompt,omitempty"`
	Images []Attachment `json:"images"`
}

// ImageResult is the outcome of a successful generate or edit call:
// exactly one image payload plus an optional accompanying description.
type ImageResult struct {
	MIMEType    string `json:"mime_type"`
	Data        string `json:"data"` // base64, passed through verbatim
	Description string `json:"description,omitempty"`
}

// Bytes decodes and returns the image payload.
func (r *ImageResult) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.Data)
}
