// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/news-research/pkg/types"
)

// MaxPromptArticles caps how many articles are included in the prompt,
// independent of how many were retrieved.
const MaxPromptArticles = 5

// promptTmpl is the fixed research prompt. It is not user-configurable.
var promptTmpl = template.Must(template.New("summary").Parse(`You are an AI assistant helping with equity research.

Query: {{.Query}}

News Articles:
{{.Articles}}

Please provide a comprehensive summary of these articles in relation to the query.
Focus on key insights, trends, and important information for equity research.`))

// FormatArticles renders up to MaxPromptArticles articles as numbered
// "<n>. <title>\n<description>" entries separated by a blank line. Missing
// fields use the article placeholders.
func FormatArticles(articles []types.Article) string {
	n := min(len(articles), MaxPromptArticles)
	entries := make([]string, 0, n)
	for i, a := range articles[:n] {
		entries = append(entries, fmt.Sprintf("%d. %s\n%s", i+1, a.DisplayTitle(), a.DisplayDescription()))
	}
	return strings.Join(entries, "\n\n")
}

// BuildPrompt returns the single user message sent to the completion
// service for query and articles.
func BuildPrompt(query string, articles []types.Article) string {
	var sb strings.Builder
	data := struct {
		Query    string
		Articles string
	}{
		Query:    query,
		Articles: FormatArticles(articles),
	}
	// The template is static and its data is two strings; Execute cannot fail.
	_ = promptTmpl.Execute(&sb, data)
	return sb.String()
}
