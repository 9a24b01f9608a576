// Package core provides the shared types for the Nano Banana image SDK.
//
// The core package defines the vocabulary that the Gemini provider, the
// MCP server, and the CLI all speak: model metadata, typed image
// requests and results, a classified error taxonomy, and the [Secret]
// type that keeps credentials out of logs.
//
// # Requests and Results
//
// Three request shapes cover the three operations:
//
//	gen := &core.GenerateRequest{Prompt: "a sunset over the ocean"}
//	edit := &core.EditRequest{Prompt: "make it night", Images: []core.Attachment{img}}
//	desc := &core.DescribeRequest{Images: []core.Attachment{img}}
//
// A successful generate or edit produces an [ImageResult] holding
// exactly one base64 image payload plus an optional caption. A
// successful describe produces a plain string.
//
// # Models and Capabilities
//
// Models are identified by [ModelID] and described by [ModelInfo].
// Capabilities are declared statically through [Feature] constants:
//   - [FeatureImageGeneration]: can emit inline image payloads
//   - [FeatureImageConfig]: honors aspect ratio and size shaping
//   - [FeatureVision]: accepts inline image inputs
//
// Callers never infer capability from the model name; they consult
// [ModelInfo.HasCapability].
//
// # Error Handling
//
// Failures surface as a [*ProviderError] wrapping a sentinel:
//   - [ErrInvalidModel]: model outside the allow-list, caught pre-flight
//   - [ErrUnauthorized], [ErrRateLimited], [ErrBadRequest], [ErrNotFound], [ErrServer]: HTTP-level failures
//   - [ErrNetwork]: the call never completed
//   - [ErrDecode]: the response body was not valid JSON
//   - [ErrProvider]: a 200 response carrying an error object
//   - [ErrEmptyResponse]: a 200 response with no candidates
//   - [ErrMissingPayload]: candidates present but no usable image or text
//
// Use errors.Is to classify:
//
//	if errors.Is(err, core.ErrRateLimited) {
//	    // back off and retry at the call site
//	}
package core
