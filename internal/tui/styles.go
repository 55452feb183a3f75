package tui

import "github.com/hdbplan/hdbplan/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles with the
// components package
var (
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	StatusKeyStyle      = tuistyles.StatusKeyStyle
	BorderStyle         = tuistyles.BorderStyle
	MetricLabelStyle    = tuistyles.MetricLabelStyle
	MetricValueStyle    = tuistyles.MetricValueStyle
	VerdictGoodStyle    = tuistyles.VerdictGoodStyle
	VerdictBadStyle     = tuistyles.VerdictBadStyle
	TableHeaderStyle    = tuistyles.TableHeaderStyle
	TableCellStyle      = tuistyles.TableCellStyle
	TableHighlightStyle = tuistyles.TableHighlightStyle
	HelpKeyStyle        = tuistyles.HelpKeyStyle
	HelpDescStyle       = tuistyles.HelpDescStyle
	ErrorStyle          = tuistyles.ErrorStyle
)
