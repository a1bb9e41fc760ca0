// SPDX-License-Identifier: MIT
// File: archive.go
// Role: Badger-backed store for the model serialization stream.
// Layout:
//   - "hdr"         -> zstd(JSON(headerRecord))
//   - "item/%08d"   -> zstd(JSON(model.ItemRecord)), keyed by archive ordinal
// Contract:
//   - Write replaces the whole archive; Read returns a validated model.
//   - Keys sort in ordinal order, so a prefix scan yields items in Ref order.

package archive

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/katalvlaran/brep/internal/logging"
	"github.com/katalvlaran/brep/model"
)

// FormatVersion is written into every header record.
const FormatVersion = 1

// DefaultCompressionLevel is the zstd level used when Options leaves it zero.
const DefaultCompressionLevel = 3

const (
	keyHeader  = "hdr"
	itemPrefix = "item/"
)

// Options configures Open.
type Options struct {
	// Path is the badger directory. Empty means in-memory.
	Path string
	// InMemory forces an in-memory store even when Path is set.
	InMemory bool
	// CompressionLevel is a zstd level in [1, 22]; 0 selects the default.
	CompressionLevel int
	// Logger receives write/read milestones. Nil is silent.
	Logger *slog.Logger
}

// headerRecord wraps model.Header with the archive format version.
type headerRecord struct {
	Version int          `json:"version"`
	Header  model.Header `json:"header"`
}

// Archive persists one model at a time.
type Archive struct {
	db     *badger.DB
	enc    *zstd.Encoder
	dec    *zstd.Decoder
	log    *logging.Logger
	closed bool
}

// Open opens or creates an archive.
func Open(opts Options) (*Archive, error) {
	level := opts.CompressionLevel
	if level == 0 {
		level = DefaultCompressionLevel
	}
	if level < 1 || level > 22 {
		return nil, errors.Wrapf(ErrOption, "compression level %d", level)
	}

	bopts := badger.DefaultOptions(opts.Path)
	bopts.Logger = nil
	bopts.MetricsEnabled = false
	if opts.Path == "" || opts.InMemory {
		bopts = bopts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrap(err, "archive: failed to open badger")
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "archive: failed to create zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		_ = db.Close()
		return nil, errors.Wrap(err, "archive: failed to create zstd decoder")
	}

	return &Archive{
		db:  db,
		enc: enc,
		dec: dec,
		log: logging.New(opts.Logger).WithOp("archive"),
	}, nil
}

// Close releases the store and the codecs. Closing twice is a no-op.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.dec.Close()
	if err := a.enc.Close(); err != nil {
		_ = a.db.Close()
		return errors.Wrap(err, "archive: closing encoder")
	}
	return errors.Wrap(a.db.Close(), "archive: closing badger")
}

// Write replaces the archive contents with m.
func (a *Archive) Write(m *model.Model) error {
	if a.closed {
		return ErrClosed
	}
	if m == nil {
		return ErrNilModel
	}
	if err := a.db.DropAll(); err != nil {
		return errors.Wrap(err, "archive: clearing store")
	}

	wb := a.db.NewWriteBatch()
	defer wb.Cancel()

	w := &batchWriter{a: a, wb: wb}
	if err := m.Serialize(w); err != nil {
		return errors.Wrap(err, "archive: serialize")
	}
	if err := wb.Flush(); err != nil {
		return errors.Wrap(err, "archive: flushing batch")
	}

	a.log.Debug("model written", "items", w.items, "bytes", w.bytes)
	return nil
}

// Header returns the stored model scalars without decoding any item.
func (a *Archive) Header() (model.Header, error) {
	if a.closed {
		return model.Header{}, ErrClosed
	}
	var hr headerRecord
	err := a.db.View(func(txn *badger.Txn) error {
		return a.getHeader(txn, &hr)
	})
	return hr.Header, err
}

// Read decodes the stored stream and rebuilds the model with opts.
func (a *Archive) Read(opts ...model.Option) (*model.Model, error) {
	if a.closed {
		return nil, ErrClosed
	}

	var (
		hr    headerRecord
		items []model.ItemRecord
	)
	err := a.db.View(func(txn *badger.Txn) error {
		if err := a.getHeader(txn, &hr); err != nil {
			return err
		}
		items = make([]model.ItemRecord, 0, hr.Header.Items)

		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(itemPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var rec model.ItemRecord
			err := item.Value(func(val []byte) error {
				return a.decode(val, &rec)
			})
			if err != nil {
				return errors.Wrapf(err, "archive: item %q", item.Key())
			}
			if want := itemKey(len(items)); string(item.Key()) != want {
				return errors.Wrapf(ErrCorrupt, "expected key %q, got %q", want, item.Key())
			}
			items = append(items, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m, err := model.Restore(hr.Header, items, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "archive: restore")
	}
	a.log.Debug("model read", "items", len(items))
	return m, nil
}

func (a *Archive) getHeader(txn *badger.Txn, hr *headerRecord) error {
	item, err := txn.Get([]byte(keyHeader))
	if err == badger.ErrKeyNotFound {
		return ErrEmpty
	}
	if err != nil {
		return errors.Wrap(err, "archive: reading header")
	}
	if err := item.Value(func(val []byte) error { return a.decode(val, hr) }); err != nil {
		return errors.Wrap(err, "archive: header")
	}
	if hr.Version != FormatVersion {
		return errors.Wrapf(ErrVersion, "got %d, want %d", hr.Version, FormatVersion)
	}
	return nil
}

func (a *Archive) encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return a.enc.EncodeAll(raw, nil), nil
}

func (a *Archive) decode(val []byte, v any) error {
	raw, err := a.dec.DecodeAll(val, nil)
	if err != nil {
		return errors.Wrap(ErrCorrupt, err.Error())
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(ErrCorrupt, err.Error())
	}
	return nil
}

func itemKey(ref int) string {
	return fmt.Sprintf("%s%08d", itemPrefix, ref)
}

// batchWriter adapts a badger WriteBatch to model.Visitor.
type batchWriter struct {
	a     *Archive
	wb    *badger.WriteBatch
	items int
	bytes int
}

func (w *batchWriter) VisitHeader(h model.Header) error {
	return w.set(keyHeader, headerRecord{Version: FormatVersion, Header: h})
}

func (w *batchWriter) VisitItem(r model.ItemRecord) error {
	w.items++
	return w.set(itemKey(r.Ref), r)
}

func (w *batchWriter) set(key string, v any) error {
	val, err := w.a.encode(v)
	if err != nil {
		return errors.Wrapf(err, "archive: encoding %q", key)
	}
	w.bytes += len(val)
	return errors.Wrapf(w.wb.Set([]byte(key), val), "archive: writing %q", key)
}
