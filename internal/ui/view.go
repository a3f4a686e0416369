package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/loadstate"
	"github.com/aristath/compound/internal/theme"
)

const (
	loadingText = "Take a deep breath ... or two"
	errorText   = "Something went wrong.\nPlease try again."
	retryHint   = "Press r to retry"
	rowHeight   = 2
)

var emptyText = map[pageKind]string{
	dashboardPage: "No advisors found,\nPlease try after sometime!",
	advisorPage:   "No accounts found,\nPlease try after sometime!",
	accountPage:   "No holdings found,\nPlease try after sometime!",
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	p := m.top()
	header := m.viewHeader(p)
	footer := m.help.View(keys)

	available := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 4
	body := m.viewBody(p, available)

	page := lipgloss.NewStyle().Padding(1, 2)
	return page.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer))
}

func (m Model) contentWidth() int {
	return max(m.width-4, 20)
}

func (m Model) viewHeader(p *page) string {
	switch p.kind {
	case advisorPage:
		a := p.advisor.Advisor()
		title := m.styles.Title.Render(a.FirstName() + "'s Accounts")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.viewAdvisorSummary(a))

	case accountPage:
		a := p.account.Account()
		title := m.styles.Title.Render(a.Name + "'s Holdings")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.viewAccountSummary(a))

	default:
		sort := m.styles.Label.Render("Sort by") + " " + m.styles.Highlight.Render(p.dashboard.SortOption().Label())
		return lipgloss.JoinVertical(lipgloss.Left, m.viewBanner("Advisors"), sort)
	}
}

// viewBanner renders a figlet title when it fits the terminal
func (m Model) viewBanner(text string) string {
	banner := strings.TrimRight(figure.NewFigure(text, "small", true).String(), "\n")
	if lipgloss.Width(banner) > m.contentWidth() {
		return m.styles.Title.Render(text)
	}
	return theme.GradientText(banner, theme.Default.Primary, theme.Default.Accent)
}

func (m Model) viewAdvisorSummary(a domain.Advisor) string {
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Initials.Render(initials(a.Name)),
		" ",
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render("Summary"),
			m.styles.Subtitle.Render(a.Name),
		),
	)

	stats := spread(
		m.stat("Total Assets", formatCurrency(a.TotalAssets)),
		m.stat("Custodians", strconv.Itoa(len(a.Custodians))),
		m.contentWidth()-4,
	)

	lines := []string{head, "", stats}
	if len(a.Custodians) > 0 {
		chips := make([]string, 0, len(a.Custodians))
		for _, name := range a.CustodianNames() {
			chips = append(chips, m.styles.Chip.Render(name))
		}
		lines = append(lines, "", strings.Join(chips, " "))
	}

	return m.styles.Card.Width(m.contentWidth() - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) viewAccountSummary(a domain.Account) string {
	width := m.contentWidth() - 4
	lines := []string{
		m.styles.Title.Render("Account Information"),
		spread(m.styles.Label.Render("Account Number"), m.styles.Value.Render(a.Number), width),
		spread(m.styles.Label.Render("Custodian"), m.styles.Value.Render(a.Custodian), width),
		spread(m.styles.Label.Render("Rep ID"), m.styles.Value.Render(a.RepID), width),
		spread(m.styles.Label.Render("Total Value"), m.styles.Highlight.Render(formatCurrency(a.TotalValue)), width),
	}
	return m.styles.Card.Width(m.contentWidth() - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) stat(title, value string) string {
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Label.Render(title), m.styles.Title.Render(value))
}

func (m Model) viewBody(p *page, available int) string {
	switch p.mode() {
	case loadstate.ModeLoading:
		return m.spinner.View() + " " + m.styles.Muted.Render(loadingText)
	case loadstate.ModeError:
		return m.styles.Error.Render(errorText) + "\n\n" + m.styles.Muted.Render(retryHint)
	case loadstate.ModeEmpty:
		return m.styles.Muted.Render(emptyText[p.kind]) + "\n\n" + m.styles.Muted.Render(retryHint)
	}

	var rows []string
	switch p.kind {
	case advisorPage:
		data := p.advisor.Snapshot().Data
		rows = append(rows, m.styles.Subtitle.Render(fmt.Sprintf("%d Accounts", len(data))))
		start, end := window(len(data), p.cursor, (available-1)/rowHeight)
		for i := start; i < end; i++ {
			rows = append(rows, m.row(m.accountRow(data[i]), i == p.cursor))
		}

	case accountPage:
		data := p.account.Snapshot().Data
		rows = append(rows, m.styles.Subtitle.Render(fmt.Sprintf("%d Holdings", len(data))))
		start, end := window(len(data), p.cursor, (available-1)/rowHeight)
		for i := start; i < end; i++ {
			rows = append(rows, m.row(m.holdingRow(data[i]), i == p.cursor))
		}

	default:
		data := p.dashboard.Snapshot().Data
		start, end := window(len(data), p.cursor, available/rowHeight)
		for i := start; i < end; i++ {
			rows = append(rows, m.row(m.advisorRow(data[i]), i == p.cursor))
		}
	}

	return strings.Join(rows, "\n")
}

func (m Model) row(content string, selected bool) string {
	if selected {
		return m.styles.Selected.Render(content)
	}
	return m.styles.Row.Render(content)
}

func (m Model) rowWidth() int {
	return m.contentWidth() - 3
}

func (m Model) advisorRow(a domain.Advisor) string {
	top := spread(m.styles.Title.Render(a.Name), m.styles.Highlight.Render(formatCurrency(a.TotalAssets)), m.rowWidth())
	return top + "\n" + m.styles.Muted.Render(strings.Join(a.CustodianNames(), ", "))
}

func (m Model) accountRow(a domain.Account) string {
	top := spread(m.styles.Title.Render(a.Name), m.styles.Highlight.Render(formatCurrency(a.TotalValue)), m.rowWidth())
	bottom := spread(
		m.styles.Muted.Render(a.Number+" · "+a.Custodian),
		m.styles.Muted.Render(pluralize(a.HoldingsCount, "holding")),
		m.rowWidth(),
	)
	return top + "\n" + bottom
}

func (m Model) holdingRow(h domain.Holding) string {
	top := spread(
		m.styles.Title.Render(h.Ticker)+" "+m.styles.Subtitle.Render(h.Name),
		m.styles.Highlight.Render(formatCurrency(h.MarketValue())),
		m.rowWidth(),
	)
	bottom := m.styles.Muted.Render(pluralize(h.Units, "unit") + " × " + formatCurrency(h.UnitPrice))
	return top + "\n" + bottom
}

// spread places left and right at the edges of width
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
