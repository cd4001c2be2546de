// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, NewsAPIKeyFile, "  na_abc123  \n")
				writeFile(t, dir, GroqKeyFile, "gsk_xyz789")
				return dir
			},
			want: map[string]string{
				NewsAPIKeyFile: "na_abc123",
				GroqKeyFile:    "gsk_xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, AnthropicKeyFile, "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{AnthropicKeyFile: "valid-key"},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, NewsAPIKeyFile, "na_real")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{NewsAPIKeyFile: "na_real"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "value123", got["good-key"])
	assert.NotContains(t, got, "bad-key")
}

func TestResolve(t *testing.T) {
	loaded := map[string]string{GroqKeyFile: "from-file"}

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(GroqKeyEnv, "from-env")
		assert.Equal(t, "from-env", Resolve(GroqKeyEnv, GroqKeyFile, loaded))
	})

	t.Run("falls back to file", func(t *testing.T) {
		t.Setenv(GroqKeyEnv, "")
		assert.Equal(t, "from-file", Resolve(GroqKeyEnv, GroqKeyFile, loaded))
	})

	t.Run("missing everywhere is empty", func(t *testing.T) {
		t.Setenv(NewsAPIKeyEnv, "")
		assert.Empty(t, Resolve(NewsAPIKeyEnv, NewsAPIKeyFile, loaded))
	})
}

func TestNames(t *testing.T) {
	got := Names(map[string]string{GroqKeyFile: "x", AnthropicKeyFile: "y", NewsAPIKeyFile: "z"})
	assert.Equal(t, []string{AnthropicKeyFile, GroqKeyFile, NewsAPIKeyFile}, got)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
