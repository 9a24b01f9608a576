package gemini

import (
	"context"
	"net/http"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// Gemini is an image provider implementation for the Google Gemini API.
// Gemini is safe for concurrent use: it holds nothing mutable beyond
// its immutable configuration.
type Gemini struct {
	config Config
}

// New creates a new Gemini provider with the given API key and options.
// It fails immediately when the key is empty so that misconfiguration
// is caught at startup, not at first use.
func New(apiKey string, opts ...Option) (*Gemini, error) {
	key := core.NewSecret(apiKey)
	if key.IsEmpty() {
		return nil, core.ErrAPIKeyRequired
	}

	cfg := Config{
		APIKey:  key,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Gemini{config: cfg}, nil
}

// ID returns the provider identifier.
func (p *Gemini) ID() string {
	return "gemini"
}

// Models returns the list of available models.
func (p *Gemini) Models() []core.ModelInfo {
	// Return a copy to prevent mutation
	result := make([]core.ModelInfo, len(models))
	copy(result, models)
	return result
}

// Supports reports whether the provider supports the given feature.
func (p *Gemini) Supports(feature core.Feature) bool {
	switch feature {
	case core.FeatureImageGeneration, core.FeatureImageConfig, core.FeatureVision:
		return true
	default:
		return false
	}
}

// Generate produces one image from a text prompt.
func (p *Gemini) Generate(ctx context.Context, req *core.GenerateRequest) (*core.ImageResult, error) {
	return p.doGenerate(ctx, req)
}

// Edit produces one image by transforming the supplied input images.
func (p *Gemini) Edit(ctx context.Context, req *core.EditRequest) (*core.ImageResult, error) {
	return p.doEdit(ctx, req)
}

// Describe returns a textual description of the supplied images.
func (p *Gemini) Describe(ctx context.Context, req *core.DescribeRequest) (string, error) {
	return p.doDescribe(ctx, req)
}

// Compile-time check that Gemini implements Provider.
var _ core.Provider = (*Gemini)(nil)
