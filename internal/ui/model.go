// Package ui is the terminal front end: a navigation stack of the dashboard,
// advisor and account screens rendered with bubbletea.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/feedback"
	"github.com/aristath/compound/internal/loadstate"
	"github.com/aristath/compound/internal/modules/accounts"
	"github.com/aristath/compound/internal/modules/advisors"
	"github.com/aristath/compound/internal/modules/dashboard"
	"github.com/aristath/compound/internal/theme"
)

// Repository is everything the screens fetch
type Repository interface {
	dashboard.AdvisorFetcher
	advisors.AccountFetcher
	accounts.HoldingFetcher
}

type pageKind int

const (
	dashboardPage pageKind = iota
	advisorPage
	accountPage
)

// page is one level of the navigation stack. Exactly one screen is set.
type page struct {
	kind      pageKind
	dashboard *dashboard.Screen
	advisor   *advisors.Screen
	account   *accounts.Screen
	cursor    int
}

func (p *page) mode() loadstate.Mode {
	switch p.kind {
	case advisorPage:
		return p.advisor.Snapshot().Mode()
	case accountPage:
		return p.account.Snapshot().Mode()
	default:
		return p.dashboard.Snapshot().Mode()
	}
}

func (p *page) length() int {
	switch p.kind {
	case advisorPage:
		return len(p.advisor.Snapshot().Data)
	case accountPage:
		return len(p.account.Snapshot().Data)
	default:
		return len(p.dashboard.Snapshot().Data)
	}
}

func (p *page) close() {
	switch p.kind {
	case advisorPage:
		p.advisor.Close()
	case accountPage:
		p.account.Close()
	default:
		p.dashboard.Close()
	}
}

// Model is the bubbletea model
type Model struct {
	ctx      context.Context
	repo     Repository
	feedback feedback.Generator
	log      zerolog.Logger

	stack []*page

	// UI state
	width   int
	height  int
	ready   bool
	styles  theme.Styles
	spinner spinner.Model
	help    help.Model
}

// loadedMsg carries a finished fetch back to the update loop. finish records
// the outcome on the screen that started it.
type loadedMsg struct {
	err    error
	finish func() bool
}

// NewModel creates the model with the dashboard as the root screen
func NewModel(ctx context.Context, repo Repository, fb feedback.Generator, log zerolog.Logger) Model {
	if fb == nil {
		fb = feedback.Nop{}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(theme.Default.Accent)

	log = log.With().Str("component", "ui").Logger()

	return Model{
		ctx:      ctx,
		repo:     repo,
		feedback: fb,
		log:      log,
		stack: []*page{{
			kind:      dashboardPage,
			dashboard: dashboard.NewScreen(repo, log),
		}},
		styles:  theme.NewStyles(theme.Default),
		spinner: sp,
		help:    help.New(),
	}
}

// SetSortOption sets the ordering of the dashboard
func (m Model) SetSortOption(option dashboard.SortOption) {
	m.stack[0].dashboard.SetSortOption(option)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(m.top()))
}

func (m Model) top() *page {
	return m.stack[len(m.stack)-1]
}

// Commands

type fetcher[T any] interface {
	Begin(ctx context.Context) (loadstate.Ticket, context.Context)
	Fetch(ctx context.Context) ([]T, error)
	Finish(ticket loadstate.Ticket, data []T, err error) bool
}

// loadCmd begins the load immediately and fetches off the update loop
func loadCmd[T any](ctx context.Context, f fetcher[T]) tea.Cmd {
	ticket, fetchCtx := f.Begin(ctx)
	return func() tea.Msg {
		data, err := f.Fetch(fetchCtx)
		return loadedMsg{
			err:    err,
			finish: func() bool { return f.Finish(ticket, data, err) },
		}
	}
}

func (m Model) load(p *page) tea.Cmd {
	switch p.kind {
	case advisorPage:
		return loadCmd[domain.Account](m.ctx, p.advisor)
	case accountPage:
		return loadCmd[domain.Holding](m.ctx, p.account)
	default:
		return loadCmd[domain.Advisor](m.ctx, p.dashboard)
	}
}
