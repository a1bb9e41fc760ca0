// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - side       = 0     (shell-uses collect the negative face-uses)
//   - color      = unset (faces keep props.DefaultColor)
//   - namePrefix = ""    (faces are not named)

package builder

import (
	"github.com/katalvlaran/brep/props"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// side selects which face-use ClosedShell gathers into a shell-use.
	side int
	// color, when set, is applied to every face a constructor builds.
	color    props.RGBA
	hasColor bool
	// namePrefix, when non-empty, names faces "<prefix><index>".
	namePrefix string
}

const (
	defaultSide = 0
)

// newBuilderConfig applies options in order over the defaults; later
// options override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{side: defaultSide}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
