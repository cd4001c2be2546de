// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files and
// resolves credentials against the environment.
//
// Each file in the directory holds one secret: the filename is the key name
// and the trimmed contents are the value. Recognised files: newsapi-key,
// groq-api-key, anthropic-api-key.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Secret file names.
const (
	NewsAPIKeyFile   = "newsapi-key"
	GroqKeyFile      = "groq-api-key"
	AnthropicKeyFile = "anthropic-api-key"
)

// Environment variable names for the same credentials.
const (
	NewsAPIKeyEnv   = "NEWSAPI_KEY"
	GroqKeyEnv      = "GROQ_API_KEY"
	AnthropicKeyEnv = "ANTHROPIC_API_KEY"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("could not read secret", "name", name, "error", err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Resolve returns the credential from environment variable env when set,
// otherwise the value of file in loaded. An unset credential resolves to "".
func Resolve(env, file string, loaded map[string]string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	return loaded[file]
}

// Names returns the sorted key names in loaded, for logging without values.
func Names(loaded map[string]string) []string {
	keys := make([]string, 0, len(loaded))
	for k := range loaded {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
