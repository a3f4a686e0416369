package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aristath/compound/internal/feedback"
	"github.com/aristath/compound/internal/loadstate"
	"github.com/aristath/compound/internal/modules/accounts"
	"github.com/aristath/compound/internal/modules/advisors"
	"github.com/aristath/compound/internal/network"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		if !msg.finish() {
			m.log.Debug().Msg("Dropped superseded load")
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("kind", network.KindOf(msg.err).String()).Msg("Load failed")
			m.feedback.Generate(feedback.Error)
		} else {
			m.feedback.Generate(feedback.Success)
		}
		m.clampCursor()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.top()

	switch {
	case key.Matches(msg, keys.Quit):
		for _, pg := range m.stack {
			pg.close()
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
			m.feedback.Prepare(feedback.Selection)
		}

	case key.Matches(msg, keys.Down):
		if p.cursor < p.length()-1 {
			p.cursor++
			m.feedback.Prepare(feedback.Selection)
		}

	case key.Matches(msg, keys.Open):
		next := m.open(p)
		if next == nil {
			return m, nil
		}
		m.feedback.Generate(feedback.Selection)
		m.stack = append(m.stack, next)
		return m, m.load(next)

	case key.Matches(msg, keys.Back):
		if len(m.stack) == 1 {
			return m, nil
		}
		p.close()
		m.stack = m.stack[:len(m.stack)-1]
		m.feedback.Generate(feedback.Light)

	case key.Matches(msg, keys.Refresh):
		m.feedback.Generate(feedback.Rigid)
		return m, m.load(p)

	case key.Matches(msg, keys.Sort):
		if p.kind != dashboardPage {
			return m, nil
		}
		p.dashboard.SetSortOption(p.dashboard.SortOption().Next())
		p.cursor = 0
		m.feedback.Generate(feedback.Selection)
	}

	return m, nil
}

// open builds the page for the row under the cursor, nil when there is none
func (m Model) open(p *page) *page {
	if p.mode() != loadstate.ModePopulated {
		return nil
	}

	switch p.kind {
	case dashboardPage:
		data := p.dashboard.Snapshot().Data
		if p.cursor >= len(data) {
			return nil
		}
		return &page{kind: advisorPage, advisor: advisors.NewScreen(data[p.cursor], m.repo)}

	case advisorPage:
		data := p.advisor.Snapshot().Data
		if p.cursor >= len(data) {
			return nil
		}
		return &page{kind: accountPage, account: accounts.NewScreen(data[p.cursor], m.repo)}

	default:
		return nil
	}
}

func (m Model) clampCursor() {
	for _, p := range m.stack {
		if n := p.length(); p.cursor >= n {
			p.cursor = max(n-1, 0)
		}
	}
}
