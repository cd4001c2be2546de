// Package tui is the interactive terminal surface: a query input, an article
// count control, a spinner while the pipeline runs, and a scrollable result
// view with a collapsible source list.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/news-research/internal/news"
	"github.com/pdiddy/news-research/internal/pipeline"
	"github.com/pdiddy/news-research/internal/render"
)

type focusField int

const (
	focusQuery focusField = iota
	focusCount
)

// chromeHeight is the number of lines above and below the result viewport.
const chromeHeight = 14

// App is the bubbletea model for one terminal session. It drives a single
// pipeline.Session and re-reads its Result after each step.
type App struct {
	ctx     context.Context
	session *pipeline.Session

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	focus       focusField
	maxArticles int
	showSources bool
	busy        bool
	result      pipeline.Result

	width  int
	height int
}

// NewApp returns an App bound to a fresh session of p. Step commands run
// under ctx.
func NewApp(ctx context.Context, p *pipeline.Pipeline, maxArticles int) *App {
	ti := textinput.New()
	ti.Placeholder = render.QueryPlaceholder
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		ctx:         ctx,
		session:     p.NewSession(),
		input:       ti,
		spinner:     sp,
		viewport:    viewport.New(80, 20),
		maxArticles: news.ClampArticles(maxArticles),
		width:       80,
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, p *pipeline.Pipeline, maxArticles int) error {
	_, err := tea.NewProgram(
		NewApp(ctx, p, maxArticles),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(20, msg.Width-8)
		a.viewport.Width = msg.Width
		a.viewport.Height = max(3, msg.Height-chromeHeight)
		a.refreshViewport()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case fetchedMsg:
		a.result = a.session.Result()
		a.refreshViewport()
		if msg.state == pipeline.Summarizing {
			return a, a.summarizeCmd()
		}
		a.busy = false
		return a, nil

	case summarizedMsg:
		a.busy = false
		a.result = a.session.Result()
		a.refreshViewport()
		return a, nil

	case spinner.TickMsg:
		if a.busy {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit
	case "enter":
		return a, a.submit()
	case "tab", "shift+tab":
		if a.focus == focusQuery {
			a.focus = focusCount
			a.input.Blur()
			return a, nil
		}
		a.focus = focusQuery
		return a, a.input.Focus()
	case "ctrl+e":
		a.showSources = !a.showSources
		a.refreshViewport()
		return a, nil
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	if a.focus == focusCount {
		switch msg.String() {
		case "left", "-", "h":
			a.maxArticles = news.ClampArticles(a.maxArticles - 1)
		case "right", "+", "l":
			a.maxArticles = news.ClampArticles(a.maxArticles + 1)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit starts an interaction unless one is already running.
func (a *App) submit() tea.Cmd {
	if a.busy {
		return nil
	}
	err := a.session.Submit(a.input.Value(), a.maxArticles)
	a.result = a.session.Result()
	a.showSources = false
	a.viewport.GotoTop()
	a.refreshViewport()
	if err != nil {
		return nil
	}
	a.busy = true
	return tea.Batch(a.spinner.Tick, a.fetchCmd())
}

// fetchCmd and summarizeCmd capture the session and context so the step
// runs off the UI goroutine.
func (a *App) fetchCmd() tea.Cmd {
	sess, ctx := a.session, a.ctx
	return func() tea.Msg {
		return fetchedMsg{state: sess.Fetch(ctx)}
	}
}

func (a *App) summarizeCmd() tea.Cmd {
	sess, ctx := a.session, a.ctx
	return func() tea.Msg {
		return summarizedMsg{state: sess.Summarize(ctx)}
	}
}

func (a *App) refreshViewport() {
	a.viewport.SetContent(resultView(a.result, a.showSources, a.viewport.Width))
}
