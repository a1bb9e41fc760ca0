// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Whole-model consistency walk.
//
// Checks, in order:
//   - the association store is symmetric and free of stale references;
//   - every edge-use has exactly one twin whose twin is itself, of the
//     opposite direction and on the same edge;
//   - every edge-use belongs to at most one loop-use;
//   - every face has exactly two face-uses, each in at most one shell-use;
//   - every loop whose edge-uses carry vertex-uses is vertex-continuous.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brep/kind"
)

// Validate reports every violation found, joined. nil means consistent.
func (m *Model) Validate() error {
	var errs []error
	if err := m.store.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInconsistent, err))
	}
	bad := func(msg string) {
		errs = append(errs, fmt.Errorf("%s: %w", msg, ErrInconsistent))
	}

	for _, h := range m.store.Live(kind.EdgeUse) {
		eu := EdgeUse{entity{m: m, h: h}}
		id := eu.UniqueID()
		if n := len(eu.assocs(kind.EdgeUse)); n != 1 {
			bad(fmt.Sprintf("edge-use %d has %d twins", id, n))
			continue
		}
		p := eu.Pair()
		switch {
		case p.Pair() != eu:
			bad(fmt.Sprintf("edge-use %d twin does not point back", id))
		case p.Direction() == eu.Direction():
			bad(fmt.Sprintf("edge-use %d and twin share direction %d", id, eu.Direction()))
		case p.Edge() != eu.Edge():
			bad(fmt.Sprintf("edge-use %d and twin use different edges", id))
		}
		if n := len(eu.assocs(kind.LoopUse)); n > 1 {
			bad(fmt.Sprintf("edge-use %d is in %d loops", id, n))
		}
	}

	for _, f := range m.Faces() {
		if n := len(f.assocs(kind.FaceUse)); n != 2 {
			bad(fmt.Sprintf("face %d has %d face-uses", f.UniqueID(), n))
		}
		for _, fu := range []FaceUse{f.FaceUse(0), f.FaceUse(1)} {
			if n := len(fu.assocs(kind.ShellUse)); n > 1 {
				bad(fmt.Sprintf("face-use %d is in %d shells", fu.UniqueID(), n))
			}
		}
	}

	for _, h := range m.store.Live(kind.LoopUse) {
		lu := LoopUse{entity{m: m, h: h}}
		if err := lu.checkContinuity(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// checkContinuity verifies each edge-use ends at the vertex the next starts at.
func (lu LoopUse) checkContinuity() error {
	eus := lu.EdgeUses()
	n := len(eus)
	for i, eu := range eus {
		next := eus[(i+1)%n]
		if eu.NumberOfVertexUses() < 2 || next.NumberOfVertexUses() < 2 {
			continue
		}
		if eu.Vertex(1) != next.Vertex(0) {
			return fmt.Errorf("loop-use %d breaks between positions %d and %d: %w",
				lu.UniqueID(), i, (i+1)%n, ErrInconsistent)
		}
	}
	return nil
}
