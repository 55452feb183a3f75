package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hdbplan/hdbplan/internal/tui/tuistyles"
)

// Slider is an adjustable numeric parameter with a visual track.
// Values always stay clamped to [Min, Max].
type Slider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // suffix, e.g. " years"
	Format    string // e.g. "%.0f"
	Width     int
	IsFocused bool
}

// NewSlider creates a slider with the default format and width.
func NewSlider(label string, value, min, max, step float64) *Slider {
	s := &Slider{
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  30,
	}
	s.SetValue(value)
	return s
}

// WithUnit sets the unit suffix shown after the value.
func (s *Slider) WithUnit(unit string) *Slider {
	s.Unit = unit
	return s
}

// WithFormat sets the value format verb.
func (s *Slider) WithFormat(format string) *Slider {
	s.Format = format
	return s
}

// WithWidth sets the track width.
func (s *Slider) WithWidth(width int) *Slider {
	s.Width = width
	return s
}

// SetFocused sets the focus state.
func (s *Slider) SetFocused(focused bool) *Slider {
	s.IsFocused = focused
	return s
}

// Increment moves the value up one step, clamped at Max.
func (s *Slider) Increment() {
	s.SetValue(s.Value + s.Step)
}

// Decrement moves the value down one step, clamped at Min.
func (s *Slider) Decrement() {
	s.SetValue(s.Value - s.Step)
}

// StepsBy moves the value by n steps in either direction, clamped.
func (s *Slider) StepsBy(n int) {
	s.SetValue(s.Value + float64(n)*s.Step)
}

// SetValue sets the value directly, clamping to the range.
func (s *Slider) SetValue(value float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, value))
}

// Percentage returns the value's position within the range.
func (s *Slider) Percentage() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// FormattedValue renders the value with its format verb and unit.
func (s *Slider) FormattedValue() string {
	value := fmt.Sprintf(s.Format, s.Value)
	if s.Unit != "" {
		value += s.Unit
	}
	return value
}

// Render returns the two-line label/value plus track representation.
func (s *Slider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(s.Label))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(s.FormattedValue()))
	b.WriteString("\n")
	b.WriteString(s.renderTrack())
	return b.String()
}

func (s *Slider) renderTrack() string {
	filled := int(math.Round(float64(s.Width) * s.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > s.Width {
		filled = s.Width
	}
	empty := s.Width - filled

	thumbStyle := tuistyles.SliderThumbStyle
	if s.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}
	trackStyle := tuistyles.SliderTrackStyle

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	low := fmt.Sprintf(s.Format, s.Min)
	high := fmt.Sprintf(s.Format, s.Max)
	return bar.String() + "  " + rangeStyle.Render(low+" to "+high)
}
