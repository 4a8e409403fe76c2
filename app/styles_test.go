package app

import (
	"testing"

	"github.com/bvisness/flowstyle/app/gradient"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSwatch(t *testing.T) {
	d := gradient.Default()
	assert.Equal(t, "", Swatch(d, 0))
	assert.Equal(t, 10, lipgloss.Width(Swatch(d, 10)))
	assert.Equal(t, 1, lipgloss.Width(Swatch(d, 1)))

	assert.Contains(t, Chip("#f00", "ab"), "ab")
	assert.Contains(t, field("Label", "value"), "value")
}
