package ui

import (
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
)

func TestColorsEnabled(t *testing.T) {
	assert.True(t, ColorsEnabled(ColorAlways, nil))
	assert.True(t, ColorsEnabled("on", nil))
	assert.False(t, ColorsEnabled(ColorNever, nil))
	assert.False(t, ColorsEnabled("off", nil))
	assert.False(t, ColorsEnabled(ColorAuto, nil))
}

func TestBool(t *testing.T) {
	SetColors(true)
	defer SetColors(false)

	assert.Equal(t, "true", stripansi.Strip(Bool(true)))
	assert.Equal(t, "false", stripansi.Strip(Bool(false)))
	assert.NotEqual(t, "true", Bool(true))
}
