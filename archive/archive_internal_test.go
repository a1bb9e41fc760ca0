// SPDX-License-Identifier: MIT
package archive

import (
	"testing"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brep/builder"
	"github.com/katalvlaran/brep/kind"
	"github.com/katalvlaran/brep/model"
)

func written(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	m, err := builder.BuildModel(nil, nil, builder.Polygon(4))
	require.NoError(t, err)
	require.NoError(t, a.Write(m))
	return a
}

func put(t *testing.T, a *Archive, key string, val []byte) {
	t.Helper()
	require.NoError(t, a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	}))
}

func TestRead_CorruptItem(t *testing.T) {
	a := written(t)
	put(t, a, itemKey(1), []byte("not zstd"))
	_, err := a.Read()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestRead_GapInItems(t *testing.T) {
	a := written(t)
	require.NoError(t, a.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(itemKey(2)))
	}))
	_, err := a.Read()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestRead_UnknownVersion(t *testing.T) {
	a := written(t)
	val, err := a.encode(headerRecord{Version: FormatVersion + 1})
	require.NoError(t, err)
	put(t, a, keyHeader, val)
	_, err = a.Read()
	assert.ErrorIs(t, err, ErrVersion)
}

// TestRead_RestoreFailure checks a dangling ordinal surfaces as a model error.
func TestRead_RestoreFailure(t *testing.T) {
	a := written(t)
	val, err := a.encode(model.ItemRecord{
		Ref:     1,
		Kind:    kind.Vertex,
		Buckets: []model.BucketRecord{{Kind: kind.Edge, Refs: []int{999}}},
	})
	require.NoError(t, err)
	put(t, a, itemKey(1), val)
	_, err = a.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBadRecord)
}

func TestItemKey_Order(t *testing.T) {
	assert.Less(t, itemKey(9), itemKey(10))
	assert.Equal(t, "item/00000042", itemKey(42))
}
