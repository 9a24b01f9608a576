package core

import "context"

// Provider is the interface that image providers must implement.
// Providers SHOULD be safe for concurrent calls: every operation is a
// single synchronous round trip sharing nothing mutable.
type Provider interface {
	// ID returns the provider identifier (e.g., "gemini").
	ID() string

	// Models returns the list of models available from this provider.
	Models() []ModelInfo

	// Supports reports whether the provider supports the given feature.
	Supports(feature Feature) bool

	// Generate produces one image from a text prompt, optionally guided
	// by input images.
	Generate(ctx context.Context, req *GenerateRequest) (*ImageResult, error)

	// Edit produces one image by transforming the supplied input images
	// according to the prompt.
	Edit(ctx context.Context, req *EditRequest) (*ImageResult, error)

	// Describe returns a textual description of the supplied images.
	Describe(ctx context.Context, req *DescribeRequest) (string, error)
}
