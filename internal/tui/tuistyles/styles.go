package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/hdbplan/hdbplan/internal/output"
)

// Colors shared across the TUI scenes and components
var (
	ColorPrimary   = lipgloss.Color("#00ADD8")
	ColorSecondary = lipgloss.Color("#5A56E0")
	ColorAccent    = lipgloss.Color("#FFB86C")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorDanger    = lipgloss.Color("#FF5555")
	ColorInfo      = lipgloss.Color("#8BE9FD")

	ColorForeground = lipgloss.Color("#F8F8F2")
	ColorMuted      = lipgloss.Color("#6272A4")
	ColorBorder     = lipgloss.Color("#44475A")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	ParameterLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorInfo)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	VerdictGoodStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	VerdictBadStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDanger)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	TableHighlightStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// FormatCurrency renders a dollar amount for the TUI panels.
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}
