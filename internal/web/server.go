// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the research page and its JSON counterpart over HTTP.
// Every request runs its own independent interaction.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/pipeline"
	"github.com/pdiddy/news-research/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// Runner executes one interaction. *pipeline.Pipeline satisfies it.
type Runner interface {
	Run(ctx context.Context, query string, maxArticles int) (pipeline.Result, error)
}

// Server holds the handlers and their dependencies.
type Server struct {
	runner Runner
	cfg    types.ServerConfig
	logger *slog.Logger
}

// NewServer returns a Server. A nil logger uses slog.Default.
func NewServer(runner Runner, cfg types.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{runner: runner, cfg: cfg, logger: logger}
}

// ResearchRequest is the JSON body of POST /api/research.
type ResearchRequest struct {
	Query       string `json:"query"`
	MaxArticles int    `json:"max_articles"`
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(tmpl)

	if len(s.cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: s.cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	r.GET("/", s.Index)
	r.POST("/research", s.ResearchForm)
	r.POST("/api/research", s.ResearchAPI)
	r.GET("/health", s.Health)
	return r, nil
}

// Index renders the empty page.
func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newPageData("", news.DefaultArticles, nil))
}

// ResearchForm runs an interaction from the page form and renders the result.
func (s *Server) ResearchForm(c *gin.Context) {
	query := c.PostForm("query")
	maxArticles := news.DefaultArticles
	if v := strings.TrimSpace(c.PostForm("max_articles")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.HTML(http.StatusBadRequest, "index.html", newPageData(query, maxArticles, nil))
			return
		}
		maxArticles = n
	}

	res, _ := s.runner.Run(c.Request.Context(), query, maxArticles)
	c.HTML(http.StatusOK, "index.html", newPageData(query, maxArticles, &res))
}

// ResearchAPI runs an interaction from a JSON body and returns the result.
// A blank query answers 400 with the Idle result and its warning notice.
func (s *Server) ResearchAPI(c *gin.Context) {
	var req ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.MaxArticles == 0 {
		req.MaxArticles = news.DefaultArticles
	}

	res, err := s.runner.Run(c.Request.Context(), req.Query, req.MaxArticles)
	if errors.Is(err, pipeline.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLogger logs one line per request with its status and duration.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
