// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats a research result for the terminal and for
// machine-readable output, and holds the labels shared by every surface.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/internal/pipeline"
	"github.com/pdiddy/news-research/pkg/types"
)

// Labels shown by the interactive surfaces.
const (
	AppTitle         = "📰 News Research Tool"
	AppDescription   = "Search news articles and get AI-powered summaries for equity research."
	QueryLabel       = "Enter your research query:"
	QueryPlaceholder = "e.g., Tesla stock performance, Apple earnings"
	MaxArticlesLabel = "Number of articles to analyze"
	SubmitLabel      = "🔍 Get News Summary"
	SummaryHeading   = "📋 AI Summary"
	SourcesHeading   = "📖 Source Articles"
	LinkLabel        = "Read full article"
	FetchingLabel    = "Fetching news articles..."
	SummarizingLabel = "Generating AI summary..."
)

// Format selects an output encoding for Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", s)
	}
}

// Write renders res to w in format f.
func Write(w io.Writer, f Format, res pipeline.Result) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	default:
		return WriteText(w, res)
	}
}

// WriteText renders the summary followed by the numbered source list.
// Nothing is written for a result with no articles; notices carry the
// explanation.
func WriteText(w io.Writer, res pipeline.Result) error {
	if len(res.Articles) == 0 {
		return nil
	}

	var sb strings.Builder
	if res.State == pipeline.Rendered {
		fmt.Fprintf(&sb, "%s\n%s\n%s\n\n", SummaryHeading, strings.Repeat("=", 40), strings.TrimSpace(res.Summary))
	}

	fmt.Fprintf(&sb, "%s (%d)\n%s\n", SourcesHeading, len(res.Articles), strings.Repeat("=", 40))
	for i, a := range res.Articles {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, a.DisplayTitle())
		fmt.Fprintf(&sb, "   %s\n", ArticleMeta(a))
		fmt.Fprintf(&sb, "   %s\n", a.DisplayDescription())
		if a.HasLink() {
			fmt.Fprintf(&sb, "   %s: %s\n", LinkLabel, strings.TrimSpace(a.URL))
		}
		if i < len(res.Articles)-1 {
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON writes res as indented JSON.
func WriteJSON(w io.Writer, res pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteYAML writes res as a YAML document.
func WriteYAML(w io.Writer, res pipeline.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// ArticleMeta returns the "Source: X" line, extended with the author and
// publication date when the article carries them.
func ArticleMeta(a types.Article) string {
	parts := []string{"Source: " + a.DisplaySource()}
	if author := strings.TrimSpace(a.Author); author != "" {
		parts = append(parts, author)
	}
	if !a.PublishedAt.IsZero() {
		parts = append(parts, a.PublishedAt.Format("2006-01-02"))
	}
	return strings.Join(parts, " · ")
}

// NoticeLine formats a notice for a plain-text stream.
func NoticeLine(n notice.Notice) string {
	return fmt.Sprintf("%s %s", noticePrefix(n.Level), n.Text)
}

func noticePrefix(l notice.Level) string {
	switch l {
	case notice.LevelError:
		return "✗"
	case notice.LevelWarning:
		return "!"
	case notice.LevelSuccess:
		return "✓"
	default:
		return "•"
	}
}
