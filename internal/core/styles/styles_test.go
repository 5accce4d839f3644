package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskdash/internal/core/task"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsIncreasing(t, names)
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, "#ef4444", Hex(PriorityColor(task.PriorityCritical)))
	assert.Equal(t, "#e5e7eb", Hex(PriorityColor(task.PriorityNoPriority)))
	assert.Equal(t, Hex(ColorMuted), Hex(PriorityColor("Urgent")))
}

func TestColorForString_Deterministic(t *testing.T) {
	assert.Equal(t, ColorForString("2024-01-05"), ColorForString("2024-01-05"))
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	SetTheme(p)

	assert.Equal(t, "#83a598", Hex(ColorPrimary))
	assert.NotNil(t, FormTheme())
}
