// SPDX-License-Identifier: MIT
// Package archive stores a brep model in a Badger key-value store.
//
// Write drives model.Serialize into a single write batch: one header record
// and one record per arena item, each JSON encoded and zstd compressed.
// Read scans the records back in ordinal order and hands them to
// model.Restore, which validates the rebuilt association graph.
//
// An empty Options.Path opens an in-memory store, which is what tests and
// short-lived conversions use:
//
//	a, err := archive.Open(archive.Options{})
//	if err != nil { ... }
//	defer a.Close()
//	if err := a.Write(m); err != nil { ... }
//	m2, err := a.Read()
//
// One archive holds one model; Write replaces what was there.
// I/O failures are wrapped with github.com/pkg/errors; callers test the
// package sentinels with errors.Is.
package archive
