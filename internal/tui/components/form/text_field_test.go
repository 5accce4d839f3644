package form

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/taskdash/pkg/tuitest"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("name", "Name", "enter name", "")
		assert.Equal(t, "Name", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("name", "Name", "enter name", "hello")
		assert.Equal(t, "hello", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("name", "Name", "", "")
		assert.False(t, f.Focused())

		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("focus returns a cmd", func(t *testing.T) {
		f := NewTextField("name", "Name", "", "")
		cmd := f.Focus()
		assert.NotNil(t, cmd)
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("name", "Name", "", "")
		field, cmd := f.Update(tea.KeyPressMsg(tea.Key{Code: 'a'}))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("value extraction after set", func(t *testing.T) {
		f := NewTextField("name", "Name", "", "")
		f.input.SetValue("typed text")
		assert.Equal(t, "typed text", f.Value())
	})

	t.Run("view renders without panic", func(t *testing.T) {
		f := NewTextField("name", "Name", "placeholder", "")
		view := f.View()
		assert.Contains(t, view, "Name")
	})

	t.Run("reset restores default and clears error", func(t *testing.T) {
		f := NewTextField("name", "Name", "", "start")
		f.SetValue("changed")
		f.SetError("bad")

		f.Reset()
		assert.Equal(t, "start", f.Value())
		assert.Empty(t, f.Error())
	})

	t.Run("typed keys reach the input", func(t *testing.T) {
		f := NewTextField("name", "Name", "", "")
		f.Focus()
		for _, msg := range tuitest.Type("10:30") {
			f.Update(msg)
		}
		assert.Equal(t, "10:30", f.Value())
	})

	t.Run("inline error renders under the input", func(t *testing.T) {
		f := NewTextField("start", "Start", "HH:MM", "")
		f.SetError("not a time")
		view := tuitest.StripANSI(f.View())
		assert.Contains(t, view, "not a time")
		assert.Less(t, strings.Index(view, "Start"), strings.Index(view, "not a time"))
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextField("name", "Name", "", "")
		unfocused := f.View()

		f.Focus()
		focused := f.View()

		assert.NotEqual(t, unfocused, focused)
	})
}
