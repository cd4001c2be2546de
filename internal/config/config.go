// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config builds the process-wide types.Config from viper settings,
// environment variables, and loaded secret files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/news-research/internal/secrets"
	"github.com/pdiddy/news-research/pkg/types"
)

// Configuration keys.
const (
	KeyNewsEndpoint   = "news.endpoint"
	KeyNewsTimeout    = "news.timeout"
	KeyNewsUserAgent  = "news.user_agent"
	KeyAIProvider     = "ai.provider"
	KeyAIBaseURL      = "ai.base_url"
	KeyAITimeout      = "ai.timeout"
	KeyServerAddr     = "server.addr"
	KeyAllowedOrigins = "server.allowed_origins"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. NEWS_RESEARCH_SERVER_ADDR.
	EnvPrefix = "NEWS_RESEARCH"

	// FileName is the config file base name searched in . and ~/.config/news-research.
	FileName = "news-research"

	DefaultUserAgent = "news-research/1.0"
	DefaultAddr      = ":8080"
)

// Error reports an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// New returns a viper instance with defaults, env bindings, and the config
// file (cfgFile, or the first news-research.yaml found) read in. A missing
// config file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyNewsEndpoint, "")
	v.SetDefault(KeyNewsTimeout, 0)
	v.SetDefault(KeyNewsUserAgent, DefaultUserAgent)
	v.SetDefault(KeyAIProvider, string(types.ProviderGroq))
	v.SetDefault(KeyAIBaseURL, "")
	v.SetDefault(KeyAITimeout, 0)
	v.SetDefault(KeyServerAddr, DefaultAddr)
	v.SetDefault(KeyAllowedOrigins, []string{})
}

// Load builds a Config from v and the loaded secret files. Credentials come
// from the environment first and the secret files second; their absence is
// not validated here.
func Load(v *viper.Viper, loaded map[string]string) (*types.Config, error) {
	provider := types.CompletionProvider(strings.ToLower(strings.TrimSpace(v.GetString(KeyAIProvider))))

	cfg := &types.Config{
		News: types.NewsConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration(KeyNewsTimeout),
				UserAgent: v.GetString(KeyNewsUserAgent),
			},
			Endpoint: v.GetString(KeyNewsEndpoint),
		},
		AI: types.AIConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration(KeyAITimeout),
				UserAgent: v.GetString(KeyNewsUserAgent),
			},
			Provider: provider,
			BaseURL:  v.GetString(KeyAIBaseURL),
		},
		Server: types.ServerConfig{
			Addr:           v.GetString(KeyServerAddr),
			AllowedOrigins: splitList(v.GetStringSlice(KeyAllowedOrigins)),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	cfg.Credentials.NewsAPIKey = secrets.Resolve(secrets.NewsAPIKeyEnv, secrets.NewsAPIKeyFile, loaded)
	switch provider {
	case types.ProviderAnthropic:
		cfg.Credentials.CompletionAPIKey = secrets.Resolve(secrets.AnthropicKeyEnv, secrets.AnthropicKeyFile, loaded)
	default:
		cfg.Credentials.CompletionAPIKey = secrets.Resolve(secrets.GroqKeyEnv, secrets.GroqKeyFile, loaded)
	}

	return cfg, nil
}

// splitList splits each entry on commas and drops blanks, so an env value
// of "a,b" or "a, b" yields two items.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for part := range strings.SplitSeq(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(cfg *types.Config) error {
	switch cfg.AI.Provider {
	case types.ProviderGroq, types.ProviderAnthropic:
	default:
		return &Error{Field: KeyAIProvider, Message: fmt.Sprintf("unknown provider %q (want groq or anthropic)", cfg.AI.Provider)}
	}
	if cfg.News.Timeout < 0 {
		return &Error{Field: KeyNewsTimeout, Message: "must not be negative"}
	}
	if cfg.AI.Timeout < 0 {
		return &Error{Field: KeyAITimeout, Message: "must not be negative"}
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return &Error{Field: KeyServerAddr, Message: "must not be empty"}
	}
	return nil
}
