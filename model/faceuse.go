// SPDX-License-Identifier: MIT
// File: faceuse.go
// Role: One side of a face: ordered loop-uses and optional shell membership.

package model

import (
	"fmt"

	"github.com/katalvlaran/brep/kind"
)

// FaceUse is one side of a face. Side 0 is the negative side, 1 the positive.
type FaceUse struct{ entity }

// Face returns the used face.
func (fu FaceUse) Face() Face {
	h := fu.one(kind.Face)
	if h.IsNil() {
		return Face{}
	}
	return Face{geometric{entity{m: fu.m, h: h}}}
}

// Side returns 0 or 1, -1 for a detached face-use.
func (fu FaceUse) Side() int {
	f := fu.Face()
	if !f.IsValid() {
		return -1
	}
	return fu.m.store.IndexOf(f.h, fu.h)
}

// LoopUses returns the loop-uses; the first is the outer loop.
func (fu FaceUse) LoopUses() []LoopUse {
	return wrapAll(fu.m, fu.assocs(kind.LoopUse), func(e entity) LoopUse { return LoopUse{e} })
}

// NumberOfLoopUses returns len(LoopUses()).
func (fu FaceUse) NumberOfLoopUses() int { return len(fu.assocs(kind.LoopUse)) }

// OuterLoopUse returns the first loop-use, zero when none.
func (fu FaceUse) OuterLoopUse() LoopUse {
	h := fu.one(kind.LoopUse)
	if h.IsNil() {
		return LoopUse{}
	}
	return LoopUse{entity{m: fu.m, h: h}}
}

// ShellUse returns the shell-use holding fu, zero when unattached.
func (fu FaceUse) ShellUse() ShellUse {
	h := fu.one(kind.ShellUse)
	if h.IsNil() {
		return ShellUse{}
	}
	return ShellUse{entity{m: fu.m, h: h}}
}

// destroy cascades into the loop-uses, then frees fu.
func (fu FaceUse) destroy() error {
	if su := fu.ShellUse(); su.IsValid() {
		return fmt.Errorf("destroy face-use %d: %w", fu.UniqueID(), ErrNotDestroyable)
	}
	for _, lu := range fu.LoopUses() {
		if err := lu.destroy(); err != nil {
			return err
		}
	}
	fu.m.store.RemoveAllAssociations(fu.h, kind.Face)
	return fu.m.release(fu.h)
}

// ShellUse is a set of face-uses bounding a region.
type ShellUse struct{ entity }

// Region returns the owning region.
func (su ShellUse) Region() Region {
	h := su.one(kind.Region)
	if h.IsNil() {
		return Region{}
	}
	return Region{geometric{entity{m: su.m, h: h}}}
}

// FaceUses returns the member face-uses in insertion order.
func (su ShellUse) FaceUses() []FaceUse {
	return wrapAll(su.m, su.assocs(kind.FaceUse), func(e entity) FaceUse { return FaceUse{e} })
}

// NumberOfFaceUses returns len(FaceUses()).
func (su ShellUse) NumberOfFaceUses() int { return len(su.assocs(kind.FaceUse)) }

// AddFaceUse moves fu into su, detaching it from any previous shell-use.
func (su ShellUse) AddFaceUse(fu FaceUse) error {
	if !su.IsValid() || !fu.IsValid() || su.m != fu.m {
		return fmt.Errorf("AddFaceUse: %w", ErrInvalidEntity)
	}
	prev := fu.ShellUse()
	if prev == su {
		return nil
	}
	if prev.IsValid() {
		su.m.store.RemoveAssociation(prev.h, fu.h)
	}
	return su.m.store.AddAssociation(su.h, fu.h)
}

// RemoveFaceUse detaches fu; absent face-uses are ignored.
func (su ShellUse) RemoveFaceUse(fu FaceUse) {
	if su.IsValid() && fu.IsValid() {
		su.m.store.RemoveAssociation(su.h, fu.h)
	}
}

func (su ShellUse) destroy() error {
	su.m.store.RemoveAllAssociations(su.h, kind.FaceUse)
	su.m.store.RemoveAllAssociations(su.h, kind.Region)
	return su.m.release(su.h)
}
