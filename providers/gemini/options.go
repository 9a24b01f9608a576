package gemini

import (
	"net/http"
	"time"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// Config holds configuration for the Gemini provider.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey core.Secret

	// BaseURL is the API base URL. Defaults to https://generativelanguage.googleapis.com
	BaseURL string

	// HTTPClient is the HTTP client to use. Defaults to a client built
	// from Timeout.
	HTTPClient *http.Client

	// Timeout is the per-request timeout applied to the default HTTP
	// client. Ignored when HTTPClient is set explicitly.
	Timeout time.Duration

	// DefaultModel is substituted when a request leaves Model empty.
	// Defaults to the package DefaultModel. It is subject to the same
	// allow-list check as any requested model.
	DefaultModel core.ModelID
}

// DefaultBaseURL is the default Gemini API base URL.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultTimeout bounds a single generateContent call. Image
// generation regularly takes tens of seconds.
const DefaultTimeout = 2 * time.Minute

// Option configures the Gemini provider.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the request timeout for the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithDefaultModel sets the model used when a request does not name one.
func WithDefaultModel(id core.ModelID) Option {
	return func(c *Config) {
		c.DefaultModel = id
	}
}
