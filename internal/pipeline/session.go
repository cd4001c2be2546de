// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/pkg/types"
)

// Result is a snapshot of a session.
type Result struct {
	State       State           `json:"state" yaml:"state"`
	Query       string          `json:"query" yaml:"query"`
	MaxArticles int             `json:"max_articles" yaml:"max_articles"`
	Articles    []types.Article `json:"articles" yaml:"articles"`
	Summary     string          `json:"summary,omitempty" yaml:"summary,omitempty"`
	Notices     []notice.Notice `json:"notices" yaml:"notices"`
}

// Session is one interaction. Its methods are safe to call from a UI
// goroutine while a step runs on another; the mutex is never held across
// an outbound call.
type Session struct {
	p *Pipeline

	mu          sync.Mutex
	state       State
	query       string
	maxArticles int
	articles    []types.Article
	summary     string
	notices     *notice.Collector
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit starts a new interaction for query with the article bound clamped
// to [news.MinArticles, news.MaxArticles]. Any previous result is discarded.
// A blank query leaves the session Idle with a warning notice and returns
// ErrEmptyQuery. Submit returns ErrBusy while a step is in flight.
func (s *Session) Submit(query string, maxArticles int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Busy() {
		return ErrBusy
	}

	s.reset()
	query = strings.TrimSpace(query)
	if query == "" {
		s.notices.Report(notice.LevelWarning, MsgEmptyQuery)
		s.transition(Idle)
		return ErrEmptyQuery
	}

	s.query = query
	s.maxArticles = news.ClampArticles(maxArticles)
	s.transition(Submitted)
	return nil
}

// Fetch retrieves articles for a Submitted session and moves it to
// Summarizing, or to NoResults when nothing came back. In any other state
// Fetch does nothing and returns the current state.
func (s *Session) Fetch(ctx context.Context) State {
	s.mu.Lock()
	if s.state != Submitted {
		defer s.mu.Unlock()
		return s.state
	}
	s.transition(Fetching)
	query, maxArticles := s.query, s.maxArticles
	s.mu.Unlock()

	articles := s.p.retriever.Retrieve(ctx, query, maxArticles, s.notices)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = articles
	if len(articles) == 0 {
		s.notices.Report(notice.LevelWarning, MsgNoResults)
		s.transition(NoResults)
		return s.state
	}
	s.notices.Report(notice.LevelSuccess, fmt.Sprintf(msgFoundFmt, len(articles)))
	s.transition(Summarizing)
	return s.state
}

// Summarize generates the summary for a Summarizing session and moves it to
// Rendered. In any other state it does nothing and returns the current state.
func (s *Session) Summarize(ctx context.Context) State {
	s.mu.Lock()
	if s.state != Summarizing {
		defer s.mu.Unlock()
		return s.state
	}
	query, articles := s.query, s.articles
	s.mu.Unlock()

	text := s.p.summarizer.Generate(ctx, query, articles, s.notices)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = text
	s.transition(Rendered)
	return s.state
}

// Run submits query and drives the session to a terminal state.
func (s *Session) Run(ctx context.Context, query string, maxArticles int) (Result, error) {
	if err := s.Submit(query, maxArticles); err != nil {
		return s.Result(), err
	}
	if s.Fetch(ctx) == Summarizing {
		s.Summarize(ctx)
	}
	return s.Result(), nil
}

// Result returns a snapshot of the session.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := make([]types.Article, len(s.articles))
	copy(articles, s.articles)
	return Result{
		State:       s.state,
		Query:       s.query,
		MaxArticles: s.maxArticles,
		Articles:    articles,
		Summary:     s.summary,
		Notices:     s.notices.Notices(),
	}
}

// reset clears the previous interaction. Caller holds s.mu.
func (s *Session) reset() {
	s.query = ""
	s.maxArticles = 0
	s.articles = nil
	s.summary = ""
	s.notices.Reset()
}

// transition moves to next and logs the change. Caller holds s.mu.
func (s *Session) transition(next State) {
	s.p.logger.Debug("session transition", "from", s.state, "to", next, "query", s.query)
	s.state = next
	if next.Terminal() {
		s.p.logger.Info("interaction finished",
			"state", next,
			"query", s.query,
			"articles", len(s.articles),
		)
	}
}
