package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the client default
	// (no timeout) in place.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "news-research/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Credentials holds the two API keys. They are read once at process start
// and never validated up front; a missing key surfaces as an authentication
// failure from the service at call time.
type Credentials struct {
	// NewsAPIKey authenticates against the news-search service.
	NewsAPIKey string `json:"-" yaml:"-"`

	// CompletionAPIKey authenticates against the text-completion service.
	CompletionAPIKey string `json:"-" yaml:"-"`
}

// NewsConfig holds settings for the article retriever.
type NewsConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint overrides the search endpoint URL. Empty uses the public
	// NewsAPI /v2/everything endpoint.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// CompletionProvider identifies the hosted LLM service.
type CompletionProvider string

const (
	ProviderGroq      CompletionProvider = "groq"
	ProviderAnthropic CompletionProvider = "anthropic"
)

// AIConfig holds settings for the summary generator. The model identifier is
// fixed per provider and is not configurable.
type AIConfig struct {
	HTTPConfig `yaml:",inline"`

	// Provider selects the completion service: groq or anthropic.
	Provider CompletionProvider `json:"provider" yaml:"provider"`

	// BaseURL overrides the provider's API base URL.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// ServerConfig holds settings for the web surface.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigins enables CORS on the JSON API for the listed origins.
	// In an environment variable they are separated by commas or spaces.
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
}

// Config is constructed once at process start and passed by pointer to the
// retriever and the summary generator.
type Config struct {
	Credentials Credentials  `json:"-" yaml:"-"`
	News        NewsConfig   `json:"news" yaml:"news"`
	AI          AIConfig     `json:"ai" yaml:"ai"`
	Server      ServerConfig `json:"server" yaml:"server"`
}
