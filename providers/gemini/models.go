// Package gemini provides the Google Gemini image provider.
package gemini

import (
	"strings"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// Model constants for the supported Gemini models.
const (
	// ModelGemini3ProImage is Nano Banana Pro, the high-quality image model.
	ModelGemini3ProImage core.ModelID = "gemini-3-pro-image-preview"
	// ModelGemini25FlashImage is Nano Banana, the fast image model.
	ModelGemini25FlashImage core.ModelID = "gemini-2.5-flash-image"
	// ModelGemini25Flash is the general-purpose fallback. It understands
	// images but does not produce them.
	ModelGemini25Flash core.ModelID = "gemini-2.5-flash"
)

// DefaultModel is used when a request does not name a model.
const DefaultModel = ModelGemini3ProImage

// models is the static allow-list of supported models. Capabilities
// are declared here once rather than inferred from the model name.
var models = []core.ModelInfo{
	{
		ID:          ModelGemini3ProImage,
		DisplayName: "Gemini 3 Pro Image Preview (Nano Banana Pro)",
		Capabilities: []core.Feature{
			core.FeatureImageGeneration,
			core.FeatureImageConfig,
			core.FeatureVision,
		},
	},
	{
		ID:          ModelGemini25FlashImage,
		DisplayName: "Gemini 2.5 Flash Image (Nano Banana)",
		Capabilities: []core.Feature{
			core.FeatureImageGeneration,
			core.FeatureImageConfig,
			core.FeatureVision,
		},
	},
	{
		ID:          ModelGemini25Flash,
		DisplayName: "Gemini 2.5 Flash",
		Capabilities: []core.Feature{
			core.FeatureVision,
		},
	},
}

// modelRegistry is a map for quick model lookup by ID.
var modelRegistry = buildModelRegistry()

// buildModelRegistry creates a map from model ID to ModelInfo.
func buildModelRegistry() map[core.ModelID]*core.ModelInfo {
	registry := make(map[core.ModelID]*core.ModelInfo, len(models))
	for i := range models {
		registry[models[i].ID] = &models[i]
	}
	return registry
}

// GetModelInfo returns the ModelInfo for a given model ID, or nil if not found.
func GetModelInfo(id core.ModelID) *core.ModelInfo {
	return modelRegistry[id]
}

// AllowedModels returns the IDs of every model in the allow-list, in
// declaration order.
func AllowedModels() []core.ModelID {
	ids := make([]core.ModelID, len(models))
	for i := range models {
		ids[i] = models[i].ID
	}
	return ids
}

// allowedModelList renders the allow-list for error messages.
func allowedModelList() string {
	ids := AllowedModels()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

// resolveModel applies the default model and enforces the allow-list.
// It never touches the network; an unknown ID is rejected here so it
// can never reach the request URL.
func resolveModel(id core.ModelID) (*core.ModelInfo, error) {
	if id == "" {
		id = DefaultModel
	}
	info := GetModelInfo(id)
	if info == nil {
		return nil, newInvalidModelError(id)
	}
	return info, nil
}

// resolveModel prefers the provider's configured default over the
// package default when the request leaves Model empty. The configured
// default goes through the same allow-list check, so a bad value fails
// on first use instead of being silently accepted at construction.
func (p *Gemini) resolveModel(id core.ModelID) (*core.ModelInfo, error) {
	if id == "" {
		id = p.config.DefaultModel
	}
	return resolveModel(id)
}
