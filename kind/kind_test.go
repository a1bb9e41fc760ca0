// SPDX-License-Identifier: MIT
package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/kind"
)

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range kind.All {
		got, ok := kind.Parse(k.String())
		require.True(t, ok, "Parse(%q)", k.String())
		assert.Equal(t, k, got)
	}
	_, ok := kind.Parse("polyhedron")
	assert.False(t, ok)
}

func TestKind_Predicates(t *testing.T) {
	cases := []struct {
		k         kind.Kind
		geometric bool
		use       bool
		dim       int
	}{
		{kind.Model, false, false, -1},
		{kind.Vertex, true, false, 0},
		{kind.VertexUse, false, true, -1},
		{kind.Edge, true, false, 1},
		{kind.EdgeUse, false, true, -1},
		{kind.LoopUse, false, true, -1},
		{kind.Face, true, false, 2},
		{kind.FaceUse, false, true, -1},
		{kind.ShellUse, false, true, -1},
		{kind.Region, true, false, 3},
	}
	for _, tc := range cases {
		t.Run(tc.k.String(), func(t *testing.T) {
			assert.True(t, tc.k.Valid())
			assert.Equal(t, tc.geometric, tc.k.IsGeometric())
			assert.Equal(t, tc.use, tc.k.IsUse())
			assert.Equal(t, tc.dim, tc.k.Dimension())
		})
	}
	assert.False(t, kind.None.Valid())
	assert.Equal(t, "unknown", kind.Kind(200).String())
}
