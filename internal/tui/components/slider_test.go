package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlider_IncrementDecrement(t *testing.T) {
	s := NewSlider("Target price", 800000, 200000, 1000000, 10000)

	s.Increment()
	assert.Equal(t, 810000.0, s.Value)

	s.Decrement()
	s.Decrement()
	assert.Equal(t, 790000.0, s.Value)
}

func TestSlider_ClampsAtBounds(t *testing.T) {
	s := NewSlider("Tenure", 24, 5, 25, 1)

	s.Increment()
	s.Increment()
	assert.Equal(t, 25.0, s.Value, "Should clamp at the maximum, not refuse the step")

	s.SetValue(6)
	s.Decrement()
	s.Decrement()
	s.Decrement()
	assert.Equal(t, 5.0, s.Value, "Should clamp at the minimum")
}

func TestSlider_StepsBy(t *testing.T) {
	s := NewSlider("Income", 5000, 0, 14000, 100)

	s.StepsBy(10)
	assert.Equal(t, 6000.0, s.Value)

	s.StepsBy(-100)
	assert.Equal(t, 0.0, s.Value, "Large negative jump clamps at the floor")
}

func TestSlider_Percentage(t *testing.T) {
	s := NewSlider("Income", 7000, 0, 14000, 100)
	assert.InDelta(t, 0.5, s.Percentage(), 0.001)

	s.SetValue(14000)
	assert.Equal(t, 1.0, s.Percentage())

	flat := NewSlider("Degenerate", 5, 5, 5, 1)
	assert.Equal(t, 0.0, flat.Percentage(), "Zero-width range should not divide by zero")
}

func TestSlider_FormattedValue(t *testing.T) {
	s := NewSlider("Tenure", 21, 5, 25, 1).WithUnit(" years")
	assert.Equal(t, "21 years", s.FormattedValue())
}

func TestSlider_RenderContainsTrack(t *testing.T) {
	s := NewSlider("Income", 7000, 0, 14000, 100).WithWidth(20)

	rendered := s.Render()
	assert.Contains(t, rendered, "Income")
	assert.Contains(t, rendered, "●", "Track should show the thumb")
	assert.Contains(t, rendered, "[")
}
