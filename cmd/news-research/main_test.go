package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- newLogger ---

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		wantErr  bool
		contains string
	}{
		{name: "text info", level: "info", format: "text", contains: "level=INFO"},
		{name: "json debug", level: "DEBUG", format: "json", contains: `"level":"INFO"`},
		{name: "bad level", level: "loud", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			logger.Info("hello")
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", "text")
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}

// --- commands ---

func TestIsInteractive(t *testing.T) {
	assert.True(t, isInteractive(rootCmd))
	assert.True(t, isInteractive(tuiCmd))
	assert.False(t, isInteractive(researchCmd))
	assert.False(t, isInteractive(serveCmd))
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "news-research dev\n", out.String())
}

func TestResearchCommandJSON(t *testing.T) {
	newsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "news-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "4", r.URL.Query().Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","articles":[
			{"source":{"name":"Reuters"},"title":"Apple beats","description":"Services grew.","url":"https://example.com/1"},
			{"source":{"name":"CNBC"},"title":"iPhone demand","description":null}
		]}`)
	}))
	defer newsSrv.Close()

	groqSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "news-research/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c","object":"chat.completion","created":1,"model":"llama3-8b-8192","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Apple looks solid."}}]}`)
	}))
	defer groqSrv.Close()

	t.Chdir(t.TempDir())
	t.Setenv("NEWSAPI_KEY", "news-key")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("NEWS_RESEARCH_NEWS_ENDPOINT", newsSrv.URL)
	t.Setenv("NEWS_RESEARCH_AI_BASE_URL", groqSrv.URL+"/")
	t.Setenv("NEWS_RESEARCH_AI_PROVIDER", "groq")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"research", "--log-level", "error", "--format", "json", "--max-articles", "4", "Apple", "earnings"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetErr(nil); rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "rendered", got["state"])
	assert.Equal(t, "Apple earnings", got["query"])
	assert.Equal(t, "Apple looks solid.", got["summary"])
	assert.Len(t, got["articles"], 2)
	assert.Equal(t, "✓ Found 2 articles\n", errOut.String())
}

func TestResearchCommandEmptyQuery(t *testing.T) {
	t.Chdir(t.TempDir())
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"research", "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetErr(nil); rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is empty")
	assert.Contains(t, errOut.String(), "! Please enter a query to search for news.")
}
