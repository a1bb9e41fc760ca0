// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/brep/props"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithSides selects the face side (0 negative, 1 positive) that ClosedShell
// places in each shell-use. Panics on any other value.
func WithSides(side int) BuilderOption {
	if side != 0 && side != 1 {
		panic(fmt.Sprintf("builder: WithSides(%d)", side))
	}
	return func(c *builderConfig) {
		c.side = side
	}
}

// WithColor colors every face built afterwards. Panics when a component is
// outside [0,1].
func WithColor(c props.RGBA) BuilderOption {
	for _, x := range c {
		if x < 0 || x > 1 {
			panic(fmt.Sprintf("builder: WithColor(%v)", c))
		}
	}
	return func(cfg *builderConfig) {
		cfg.color, cfg.hasColor = c, true
	}
}

// WithFaceNames names built faces "<prefix><index>" through props.KeyName,
// index counting faces within one constructor call.
func WithFaceNames(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.namePrefix = prefix
	}
}
