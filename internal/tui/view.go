package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hdbplan/hdbplan/internal/tui/tuistyles"
)

// View renders the current state of the explorer
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("Loading profile..."))
	}
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress q to quit.", m.err.Error())))
	}

	var content string
	switch m.currentScene {
	case SceneExplorer:
		content = m.renderExplorer()
	case SceneTenures:
		content = m.renderTenures()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title and status bars
func (m Model) renderApp(content string) string {
	title := TitleStyle.Render("hdbplan - HDB Flat Affordability")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
		content,
		m.renderStatusBar(),
	)
}

// renderStatusBar renders the bottom bar of keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut(m.keys.Explorer.Help().Key, m.keys.Explorer.Help().Desc),
		formatShortcut(m.keys.Tenures.Help().Key, m.keys.Tenures.Help().Desc),
		formatShortcut(m.keys.Reset.Help().Key, m.keys.Reset.Help().Desc),
		formatShortcut(m.keys.Help.Help().Key, m.keys.Help.Help().Desc),
		formatShortcut(m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc),
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(keyLabel, desc string) string {
	return StatusKeyStyle.Render(keyLabel) + " " + desc
}

// renderExplorer renders the slider column beside the verdict panel
func (m Model) renderExplorer() string {
	if len(m.sliders) == 0 || m.plan == nil {
		return BorderStyle.Render("No profile loaded.")
	}

	rendered := make([]string, 0, len(m.sliders))
	for _, slider := range m.sliders {
		rendered = append(rendered, slider.Render())
	}
	left := BorderStyle.Render(strings.Join(rendered, "\n\n"))
	right := BorderStyle.Render(m.renderVerdict())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderVerdict renders the recomputed envelope and verdict lines
func (m Model) renderVerdict() string {
	plan := m.plan
	var b strings.Builder

	b.WriteString(TableHeaderStyle.Render("LOAN ENVELOPE"))
	b.WriteString("\n")
	b.WriteString(metricLine("Installment ceiling", tuistyles.FormatCurrency(plan.Eligibility.MaxMonthlyInstallment)+"/month"))
	b.WriteString(metricLine("Maximum HDB loan", tuistyles.FormatCurrency(plan.Eligibility.MaxLoanAmount)))
	b.WriteString(metricLine("Price ceiling", tuistyles.FormatCurrency(plan.Eligibility.MaxFlatPrice)))
	if plan.Eligibility.ExceedsIncomeCeiling {
		b.WriteString(ErrorStyle.Render("  income exceeds the HDB loan ceiling"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("AT %s, BY %s",
		tuistyles.FormatCurrency(plan.Affordability.TargetPrice), monthYear(plan.CompletionDate))))
	b.WriteString("\n")
	b.WriteString(metricLine("Upfront needed", tuistyles.FormatCurrency(plan.Affordability.RequiredUpfront)))
	b.WriteString(metricLine("Projected funds", tuistyles.FormatCurrency(plan.Affordability.TotalAvailable)))

	if plan.Affordability.CanAfford {
		b.WriteString(VerdictGoodStyle.Render(fmt.Sprintf("  AFFORDABLE, %s to spare",
			tuistyles.FormatCurrency(plan.Affordability.Gap.Neg()))))
	} else {
		b.WriteString(VerdictBadStyle.Render(fmt.Sprintf("  NOT AFFORDABLE, short by %s",
			tuistyles.FormatCurrency(plan.Affordability.Gap))))
	}
	b.WriteString("\n")
	b.WriteString(metricLine("Max price by then", tuistyles.FormatCurrency(plan.MaxAffordable)))
	if plan.FirstAffordable != nil {
		b.WriteString(metricLine("First affordable", monthYear(plan.FirstAffordable.Date)))
	} else {
		b.WriteString(metricLine("First affordable", "not within the window"))
	}

	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render("REPAYMENT"))
	b.WriteString("\n")
	atTenure := fmt.Sprintf("%s/month", tuistyles.FormatCurrency(m.tenureAt.MonthlyPayment))
	if !m.tenureAt.IsAffordable {
		atTenure += ErrorStyle.Render("  over the ceiling")
	}
	b.WriteString(metricLine(fmt.Sprintf("At %d years", m.tenureAt.TenureYears), atTenure))
	if plan.OptimalTenure != nil {
		b.WriteString(metricLine("Shortest fit", fmt.Sprintf("%d years at %s/month",
			plan.OptimalTenure.TenureYears, tuistyles.FormatCurrency(plan.OptimalTenure.MonthlyPayment))))
	} else {
		b.WriteString(metricLine("Shortest fit", "no tenure fits the ceiling"))
	}

	return b.String()
}

func metricLine(label, value string) string {
	return MetricLabelStyle.Render(fmt.Sprintf("  %-20s", label)) +
		MetricValueStyle.Render(value) + "\n"
}

// renderTenures renders the key-tenure comparison table
func (m Model) renderTenures() string {
	if m.plan == nil {
		return BorderStyle.Render("No profile loaded.")
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("TENURE COMPARISON on a %s loan",
		tuistyles.FormatCurrency(m.plan.Affordability.LoanAmount))))
	b.WriteString("\n\n")
	b.WriteString(TableHeaderStyle.Render(
		fmt.Sprintf("%-7s %-14s %-16s %-14s %-5s", "Years", "Monthly", "Total interest", "Buffer", "Fits")))
	b.WriteString("\n")

	for _, row := range m.plan.TenureOptions {
		line := fmt.Sprintf("%-7d %-14s %-16s %-14s %-5s",
			row.TenureYears,
			tuistyles.FormatCurrency(row.MonthlyPayment),
			tuistyles.FormatCurrency(row.TotalInterest),
			tuistyles.FormatCurrency(row.PaymentBuffer),
			yesNoMark(row.IsAffordable),
		)
		if row.IsAffordable {
			b.WriteString(TableCellStyle.Render(line))
		} else {
			b.WriteString(SubtitleStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.plan.OptimalTenure != nil {
		b.WriteString(TableHighlightStyle.Render(fmt.Sprintf(
			"Shortest workable tenure: %d years at %s/month",
			m.plan.OptimalTenure.TenureYears,
			tuistyles.FormatCurrency(m.plan.OptimalTenure.MonthlyPayment))))
	} else {
		b.WriteString(ErrorStyle.Render("No tenure in the allowed range fits the installment ceiling."))
	}

	return BorderStyle.Render(b.String())
}

func yesNoMark(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// renderHelp renders the key binding reference
func (m Model) renderHelp() string {
	bindings := [][2]string{
		{m.keys.Up.Help().Key, m.keys.Up.Help().Desc},
		{m.keys.Down.Help().Key, m.keys.Down.Help().Desc},
		{m.keys.Decrement.Help().Key, m.keys.Decrement.Help().Desc},
		{m.keys.Increment.Help().Key, m.keys.Increment.Help().Desc},
		{m.keys.CoarseDown.Help().Key, m.keys.CoarseDown.Help().Desc},
		{m.keys.CoarseUp.Help().Key, m.keys.CoarseUp.Help().Desc},
		{m.keys.Reset.Help().Key, m.keys.Reset.Help().Desc},
		{m.keys.Explorer.Help().Key, m.keys.Explorer.Help().Desc},
		{m.keys.Tenures.Help().Key, m.keys.Tenures.Help().Desc},
		{m.keys.Back.Help().Key, m.keys.Back.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render("KEYBOARD SHORTCUTS"))
	b.WriteString("\n\n")
	for _, binding := range bindings {
		b.WriteString(HelpKeyStyle.Render(fmt.Sprintf("  %-10s", binding[0])))
		b.WriteString(HelpDescStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	return BorderStyle.Render(b.String())
}

func monthYear(t time.Time) string {
	return t.Format("Jan 2006")
}
