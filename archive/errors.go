// SPDX-License-Identifier: MIT
package archive

import "errors"

var (
	// ErrEmpty is returned by Read and Header when no model was written.
	ErrEmpty = errors.New("archive: no model stored")
	// ErrClosed is returned by any call after Close.
	ErrClosed = errors.New("archive: closed")
	// ErrNilModel is returned by Write for a nil model.
	ErrNilModel = errors.New("archive: nil model")
	// ErrCorrupt marks a record that fails to decompress or decode, or an
	// item key out of ordinal order.
	ErrCorrupt = errors.New("archive: corrupt record")
	// ErrVersion marks a header written by an unknown format version.
	ErrVersion = errors.New("archive: unsupported format version")
	// ErrOption marks an invalid Options value.
	ErrOption = errors.New("archive: invalid option")
)
