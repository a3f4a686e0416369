// Package theme holds the color palette and lipgloss styles of the terminal UI.
package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the semantic color palette for the entire TUI.
type Theme struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Default palette.
var Default = Theme{
	Base:    lipgloss.Color("#201F26"),
	Surface: lipgloss.Color("#2D2C35"),
	Border:  lipgloss.Color("#4D4C57"),
	Muted:   lipgloss.Color("#858392"),
	Text:    lipgloss.Color("#DFDBDD"),
	Subtext: lipgloss.Color("#BFBCC8"),
	Primary: lipgloss.Color("#2E7D5B"),
	Accent:  lipgloss.Color("#4FD1A5"),
	Success: lipgloss.Color("#00FFB2"),
	Warning: lipgloss.Color("#FFD300"),
	Error:   lipgloss.Color("#E94090"),
}

// Styles are the reusable text styles built from a Theme
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Chip      lipgloss.Style
	Card      lipgloss.Style
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Initials  lipgloss.Style
}

// NewStyles derives the UI styles from t
func NewStyles(t Theme) Styles {
	row := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(t.Border)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Subtitle:  lipgloss.NewStyle().Foreground(t.Subtext),
		Label:     lipgloss.NewStyle().Foreground(t.Muted),
		Value:     lipgloss.NewStyle().Foreground(t.Text),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Muted:     lipgloss.NewStyle().Foreground(t.Muted),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Chip:      lipgloss.NewStyle().Padding(0, 1).Foreground(t.Text).Background(t.Surface),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Row:      row,
		Selected: row.BorderForeground(t.Accent).Foreground(t.Accent),
		Initials: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(t.Base).Background(t.Accent),
	}
}

// GradientText applies a horizontal color gradient across each line of text.
func GradientText(text string, from, to lipgloss.Color) string {
	fr, fg, fb := hexToRGB(string(from))
	tr, tg, tb := hexToRGB(string(to))

	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		runes := []rune(line)
		n := len(runes)
		if n == 0 {
			result = append(result, "")
			continue
		}

		var sb strings.Builder
		for i, r := range runes {
			t := 0.0
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			cr := uint8(math.Round(float64(fr) + t*float64(int(tr)-int(fr))))
			cg := uint8(math.Round(float64(fg) + t*float64(int(tg)-int(fg))))
			cb := uint8(math.Round(float64(fb) + t*float64(int(tb)-int(fb))))

			color := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", cr, cg, cb))
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(r)))
		}
		result = append(result, sb.String())
	}
	return strings.Join(result, "\n")
}

func hexToRGB(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
