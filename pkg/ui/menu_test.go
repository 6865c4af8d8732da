package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenu_MoveWraps(t *testing.T) {
	m := Menu{Options: []string{OptionResume, OptionRestart, OptionQuit}}
	assert.Equal(t, OptionResume, m.Current())

	m.Move(1)
	assert.Equal(t, OptionRestart, m.Current())

	m.Move(2)
	assert.Equal(t, OptionResume, m.Current())

	m.Move(-1)
	assert.Equal(t, OptionQuit, m.Current())

	m.Move(-7)
	assert.Equal(t, OptionRestart, m.Current())
}

func TestMenu_Empty(t *testing.T) {
	var m Menu
	m.Move(3)
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, "", m.Current())
}
