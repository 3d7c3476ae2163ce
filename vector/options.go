package vector

import (
	"log/slog"

	"github.com/joshuapare/growvec/elem"
	"github.com/joshuapare/growvec/rawbuf"
)

// Options configures a Vector.
//
// Use DefaultOptions() or pass nil for defaults.
type Options[T any] struct {
	// Ops is the lifecycle contract for elements: how they are constructed,
	// copied, moved and destroyed.
	// Default: elem.For[T]()
	Ops *elem.Ops[T]

	// Logger receives reallocation and rollback events at debug level.
	// Default: nil (no logging)
	Logger *slog.Logger

	// MaxBytes caps the size of a single storage block. Growth that would
	// exceed it fails with rawbuf.ErrAlloc and leaves the vector unchanged.
	// The default only rejects absurd sizes; when lengths come from untrusted
	// input, set a limit the host can actually back.
	// Default: rawbuf.DefaultMaxBytes
	MaxBytes int
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		Ops:      elem.For[T](),
		MaxBytes: rawbuf.DefaultMaxBytes,
	}
}
