package web

import (
	"html/template"
	"strings"

	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/internal/pipeline"
	"github.com/pdiddy/news-research/internal/render"
	"github.com/pdiddy/news-research/pkg/types"
)

type pageLabels struct {
	Title, Description, Query, Placeholder, MaxArticles string
	Submit, Summary, Sources, Link                      string
	Fetching                                            string
}

var labels = pageLabels{
	Title:       render.AppTitle,
	Description: render.AppDescription,
	Query:       render.QueryLabel,
	Placeholder: render.QueryPlaceholder,
	MaxArticles: render.MaxArticlesLabel,
	Submit:      render.SubmitLabel,
	Summary:     render.SummaryHeading,
	Sources:     render.SourcesHeading,
	Link:        render.LinkLabel,
	Fetching:    render.FetchingLabel,
}

type pageData struct {
	Labels      pageLabels
	Query       string
	MaxArticles int
	Min, Max    int
	Result      *pipeline.Result
}

func newPageData(query string, maxArticles int, res *pipeline.Result) pageData {
	return pageData{
		Labels:      labels,
		Query:       query,
		MaxArticles: news.ClampArticles(maxArticles),
		Min:         news.MinArticles,
		Max:         news.MaxArticles,
		Result:      res,
	}
}

var templateFuncs = template.FuncMap{
	"rendered": func(r *pipeline.Result) bool {
		return r != nil && r.State == pipeline.Rendered
	},
	"noticeClass": func(n notice.Notice) string {
		return "notice-" + string(n.Level)
	},
	"meta": func(a types.Article) string {
		return render.ArticleMeta(a)
	},
	"link": func(a types.Article) string {
		return strings.TrimSpace(a.URL)
	},
	"inc": func(i int) int { return i + 1 },
}
