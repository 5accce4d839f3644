package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/taskdash/pkg/tuitest"
)

func TestKeyMap_Matches(t *testing.T) {
	k := defaultKeyMap()

	assert.True(t, key.Matches(tuitest.KeyCtrl('t'), k.NextView))
	assert.True(t, key.Matches(tuitest.KeyTab(), k.NextView))
	assert.True(t, key.Matches(tuitest.KeyShiftTab(), k.PrevView))
	assert.True(t, key.Matches(tuitest.KeyCtrl('c'), k.ForceQuit))
	assert.True(t, key.Matches(tuitest.KeyPress('e'), k.Export))
	assert.False(t, key.Matches(tuitest.KeyPress('e'), k.Quit))
}

func TestKeyMap_ShortHelp(t *testing.T) {
	k := defaultKeyMap()

	for _, v := range []ViewType{ViewAdd, ViewTasks, ViewAnalytics} {
		t.Run(v.String(), func(t *testing.T) {
			bindings := k.shortHelp(v)
			assert.NotEmpty(t, bindings)
			for _, b := range bindings {
				assert.NotEmpty(t, b.Help().Key)
			}
		})
	}

	descs := map[string]bool{}
	for _, b := range k.shortHelp(ViewAnalytics) {
		descs[b.Help().Desc] = true
	}
	assert.True(t, descs["export CSV"])
}

func TestKeyMap_HelpSections(t *testing.T) {
	sections := defaultKeyMap().helpSections()

	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
		assert.NotEmpty(t, s.Entries, s.Title)
	}
	assert.Equal(t, []string{"Global", "Add Task", "Tasks", "Analytics"}, titles)
}
