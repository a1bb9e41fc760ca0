// SPDX-License-Identifier: MIT
// Package builder contains unit tests for builderConfig resolution.
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/brep/props"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, defaultSide, cfg.side)
	assert.False(t, cfg.hasColor)
	assert.Empty(t, cfg.namePrefix)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(
		WithSides(1), WithSides(0),
		WithColor(props.RGBA{0, 0, 1, 1}), WithColor(props.RGBA{0, 1, 0, 1}),
		WithFaceNames("a"), WithFaceNames("b"),
	)
	assert.Equal(t, 0, cfg.side)
	assert.True(t, cfg.hasColor)
	assert.Equal(t, props.RGBA{0, 1, 0, 1}, cfg.color)
	assert.Equal(t, "b", cfg.namePrefix)
}
