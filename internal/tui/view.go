package tui

import (
	"fmt"
	"strings"

	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/internal/pipeline"
	"github.com/pdiddy/news-research/internal/render"
)

const helpText = "enter: search • tab: switch field • ←/→: articles • ctrl+e: sources • ↑/↓: scroll • esc: quit"

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(render.AppTitle))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(render.AppDescription))
	b.WriteString("\n\n")

	b.WriteString(a.countView())
	b.WriteString("\n")
	b.WriteString(a.queryView())
	b.WriteString("\n")

	if a.busy {
		b.WriteString(a.spinner.View() + " " + phaseLabel(a.session.State()))
		b.WriteString("\n")
	}
	for _, n := range a.result.Notices {
		b.WriteString(noticeView(n))
		b.WriteString("\n")
	}

	b.WriteString(a.viewport.View())
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Width(a.width).Render(helpText))
	return b.String()
}

func (a *App) countView() string {
	label := labelStyle
	if a.focus == focusCount {
		label = labelActiveStyle
	}
	return fmt.Sprintf(" %s  ◀ %s ▶  %s",
		label.Render(render.MaxArticlesLabel+":"),
		counterStyle.Render(fmt.Sprintf("%2d", a.maxArticles)),
		subtitleStyle.Render(fmt.Sprintf("(%d-%d)", news.MinArticles, news.MaxArticles)),
	)
}

func (a *App) queryView() string {
	label, field := labelStyle, fieldStyle
	if a.focus == focusQuery {
		label, field = labelActiveStyle, fieldActiveStyle
	}
	return " " + label.Render(render.QueryLabel) + "\n" +
		field.Width(max(20, a.width-4)).Render(a.input.View()) + "  " +
		promptStyle.Render(render.SubmitLabel)
}

// phaseLabel is the busy text for the step in flight. Submitted counts as
// fetching since the fetch command is already queued.
func phaseLabel(s pipeline.State) string {
	if s == pipeline.Summarizing {
		return render.SummarizingLabel
	}
	return render.FetchingLabel
}

func noticeView(n notice.Notice) string {
	style := noticeInfoStyle
	switch n.Level {
	case notice.LevelSuccess:
		style = noticeSuccessStyle
	case notice.LevelWarning:
		style = noticeWarningStyle
	case notice.LevelError:
		style = noticeErrorStyle
	}
	return " " + style.Render(render.NoticeLine(n))
}

// resultView renders the summary and the source list for the viewport.
// The source list is collapsed to its heading unless expanded is set.
func resultView(res pipeline.Result, expanded bool, width int) string {
	if len(res.Articles) == 0 {
		return ""
	}
	wrapWidth := max(20, width-2)

	var b strings.Builder
	if res.State == pipeline.Rendered {
		b.WriteString(headingStyle.Render(render.SummaryHeading))
		b.WriteString("\n")
		b.WriteString(summaryStyle.Width(wrapWidth).Render(strings.TrimSpace(res.Summary)))
		b.WriteString("\n")
	}

	marker := "▸"
	if expanded {
		marker = "▾"
	}
	heading := fmt.Sprintf("%s %s (%d)", marker, render.SourcesHeading, len(res.Articles))
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")
	if !expanded {
		b.WriteString(subtitleStyle.Render("ctrl+e to expand"))
		return b.String()
	}

	for i, art := range res.Articles {
		b.WriteString(articleTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, art.DisplayTitle())))
		b.WriteString("\n")
		b.WriteString(articleSourceStyle.Render(render.ArticleMeta(art)))
		b.WriteString("\n")
		b.WriteString(articleBodyStyle.Width(wrapWidth).Render(art.DisplayDescription()))
		b.WriteString("\n")
		if art.HasLink() {
			b.WriteString(articleLinkStyle.Render(render.LinkLabel + ": " + strings.TrimSpace(art.URL)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
