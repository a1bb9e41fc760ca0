// SPDX-License-Identifier: MIT
// File: region.go
// Role: Dimension-3 cell bounded by shell-uses.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brep/assoc"
	"github.com/katalvlaran/brep/kind"
)

// Region is a dimension-3 cell.
type Region struct{ geometric }

// BuildModelRegion creates a region and, when faces is non-empty, one
// shell-use holding faces[i].FaceUse(sides[i]).
//
// On error the region is returned and remains in the model.
func (m *Model) BuildModelRegion(faces []Face, sides []int) (Region, error) {
	r := Region{geometric{m.newItem(kind.Region)}}
	m.link(m.root, r.h)
	if len(faces) > 0 || len(sides) > 0 {
		if _, err := r.BuildModelShellUse(faces, sides); err != nil {
			m.log.Precondition("BuildModelRegion", kind.Region, r.UniqueID(), err)
			return r, err
		}
	}
	m.log.Built(kind.Region, r.UniqueID(), "faces", len(faces))
	m.emit(Event{Kind: EntityCreated, Entity: r})

	return r, nil
}

// BuildModelShellUse adds a shell-use owning the designated face-uses. Each
// face-use leaves its previous shell-use first.
func (r Region) BuildModelShellUse(faces []Face, sides []int) (ShellUse, error) {
	if !r.IsValid() {
		return ShellUse{}, fmt.Errorf("BuildModelShellUse: %w", ErrInvalidEntity)
	}
	if len(faces) != len(sides) {
		return ShellUse{}, fmt.Errorf("BuildModelShellUse(%d faces, %d sides): %w", len(faces), len(sides), ErrLengthMismatch)
	}
	for i, f := range faces {
		if !r.m.owns(f) {
			return ShellUse{}, fmt.Errorf("BuildModelShellUse: face %d: %w", i, ErrInvalidEntity)
		}
		if sides[i] != 0 && sides[i] != 1 {
			return ShellUse{}, fmt.Errorf("BuildModelShellUse: side %d: %w", sides[i], ErrBadSide)
		}
	}
	su := ShellUse{r.m.newItem(kind.ShellUse)}
	r.m.link(r.h, su.h)
	for i, f := range faces {
		if err := su.AddFaceUse(f.FaceUse(sides[i])); err != nil {
			return su, err
		}
	}
	return su, nil
}

// DestroyModelShellUse detaches and frees su.
func (r Region) DestroyModelShellUse(su ShellUse) error {
	if !r.IsValid() || !su.IsValid() || su.Region() != r {
		return fmt.Errorf("DestroyModelShellUse: %w", ErrInvalidEntity)
	}
	return su.destroy()
}

// ShellUses returns the region's shell-uses.
func (r Region) ShellUses() []ShellUse {
	return wrapAll(r.m, r.assocs(kind.ShellUse), func(e entity) ShellUse { return ShellUse{e} })
}

// NumberOfShells returns len(ShellUses()).
func (r Region) NumberOfShells() int { return len(r.assocs(kind.ShellUse)) }

// Faces returns the distinct faces bounding the region.
func (r Region) Faces() []Face {
	set := assoc.NewItemSet(true)
	for _, su := range r.ShellUses() {
		for _, fu := range su.FaceUses() {
			if f := fu.Face(); f.IsValid() {
				set.Add(f.h)
			}
		}
	}
	return wrapAll(r.m, set.Items(), func(e entity) Face { return Face{geometric{e}} })
}

// NumberOfFaces returns len(Faces()).
func (r Region) NumberOfFaces() int { return len(r.Faces()) }

// IsDestroyable is always true: nothing uses a region.
func (r Region) IsDestroyable() bool { return r.IsValid() }

func (r Region) destroy() error {
	var errs []error
	for _, su := range r.ShellUses() {
		errs = append(errs, su.destroy())
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	return r.detach()
}
