package core

// Feature represents a capability that a model may support.
type Feature string

const (
	// FeatureImageGeneration indicates the model can emit inline image
	// payloads in its response.
	FeatureImageGeneration Feature = "image_generation"
	// FeatureImageConfig indicates the model honors aspect-ratio and
	// image-size shaping in the request's generation config.
	FeatureImageConfig Feature = "image_config"
	// FeatureVision indicates the model accepts inline image inputs.
	FeatureVision Feature = "vision"
)

// ModelID is a string identifier for a model.
// Using string avoids coupling to provider-specific enums.
type ModelID string

// ModelInfo describes a model available from a provider.
//
// Capabilities are declared here once, statically, rather than inferred
// from the model name at call time.
type ModelInfo struct {
	ID           ModelID   `json:"id"`
	DisplayName  string    `json:"display_name"`
	Capabilities []Feature `json:"capabilities"`
}

// HasCapability reports whether the model supports the given feature.
func (m ModelInfo) HasCapability(f Feature) bool {
	for _, cap := range m.Capabilities {
		if cap == f {
			return true
		}
	}
	return false
}
