// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/internal/pipeline"
	"github.com/pdiddy/news-research/pkg/types"
)

func renderedResult() pipeline.Result {
	return pipeline.Result{
		State:       pipeline.Rendered,
		Query:       "Tesla stock performance",
		MaxArticles: 5,
		Summary:     "Deliveries rose.\n",
		Articles: []types.Article{
			{
				Title:       "Tesla beats estimates",
				Description: "Q3 deliveries rose.",
				SourceName:  "Reuters",
				URL:         "https://example.com/a",
				Author:      "Jane Doe",
				PublishedAt: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
			},
			{},
		},
		Notices: []notice.Notice{{Level: notice.LevelSuccess, Text: "Found 2 articles"}},
	}
}

// --- ParseFormat ---

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- WriteText ---

func TestWriteTextRendered(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, renderedResult()))

	want := SummaryHeading + "\n" +
		"========================================\n" +
		"Deliveries rose.\n\n" +
		SourcesHeading + " (2)\n" +
		"========================================\n" +
		"1. Tesla beats estimates\n" +
		"   Source: Reuters · Jane Doe · 2026-10-02\n" +
		"   Q3 deliveries rose.\n" +
		"   Read full article: https://example.com/a\n" +
		"\n" +
		"2. No title\n" +
		"   Source: Unknown\n" +
		"   No description\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTextNoResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, pipeline.Result{State: pipeline.NoResults, Articles: []types.Article{}}))
	assert.Empty(t, buf.String())
}

// --- WriteJSON / WriteYAML ---

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, renderedResult()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "rendered", got["state"])
	assert.Equal(t, "Tesla stock performance", got["query"])

	articles := got["articles"].([]any)
	require.Len(t, articles, 2)
	assert.NotContains(t, articles[1].(map[string]any), "published_at")

	notices := got["notices"].([]any)
	assert.Equal(t, "success", notices[0].(map[string]any)["level"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, renderedResult()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "rendered", got["state"])
	assert.Equal(t, 5, got["max_articles"])
	assert.Contains(t, buf.String(), "source_name: Reuters")
}

// --- helpers ---

func TestArticleMeta(t *testing.T) {
	assert.Equal(t, "Source: Unknown", ArticleMeta(types.Article{}))
	assert.Equal(t, "Source: AP · Sam", ArticleMeta(types.Article{SourceName: "AP", Author: "Sam"}))
}

func TestNoticeLine(t *testing.T) {
	assert.Equal(t, "✗ Error fetching news: boom", NoticeLine(notice.Notice{Level: notice.LevelError, Text: "Error fetching news: boom"}))
	assert.Equal(t, "! careful", NoticeLine(notice.Notice{Level: notice.LevelWarning, Text: "careful"}))
	assert.Equal(t, "✓ Found 3 articles", NoticeLine(notice.Notice{Level: notice.LevelSuccess, Text: "Found 3 articles"}))
	assert.Equal(t, "• hi", NoticeLine(notice.Notice{Level: notice.LevelInfo, Text: "hi"}))
}
