// SPDX-License-Identifier: MIT
// Package: brep/builder
//
// impl_shell.go - implementation of ClosedShell().
//
// Contract:
//   - Groups every face of the model into edge-connected components
//     (walk.Components) and builds one region per closed component.
//   - A component is closed when each of its edges bounds at least two faces.
//   - Faces whose cfg.side face-use already sits in a shell are skipped, so
//     applying ClosedShell twice builds no new regions.
//   - Each region gets one shell-use holding the cfg.side face-uses.
//
// Complexity:
//   - Time: O(F + U), U = edge-uses on the faces' edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/brep/model"
	"github.com/katalvlaran/brep/walk"
)

// ClosedShell returns a Constructor that bounds each closed face component
// with a region.
func ClosedShell() Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		groups, err := walk.Components(m)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodClosedShell, err)
		}
		for _, faces := range groups {
			if !closed(faces) || shelled(faces, cfg.side) {
				continue
			}
			sides := make([]int, len(faces))
			for i := range sides {
				sides[i] = cfg.side
			}
			if _, err := m.BuildModelRegion(faces, sides); err != nil {
				return fmt.Errorf("%s: BuildModelRegion: %w", MethodClosedShell, err)
			}
		}

		return nil
	}
}

// closed reports whether every edge of faces bounds at least two faces.
func closed(faces []model.Face) bool {
	for _, f := range faces {
		if f.NumberOfLoops() == 0 {
			return false
		}
		for _, e := range f.Edges() {
			if e.NumberOfAdjacentFaces() < 2 {
				return false
			}
		}
	}

	return true
}

func shelled(faces []model.Face, side int) bool {
	for _, f := range faces {
		if f.FaceUse(side).ShellUse().IsValid() {
			return true
		}
	}

	return false
}
