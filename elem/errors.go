package elem

import "errors"

var (
	// ErrNotCopyable indicates a copy was requested for a type without copy construction.
	ErrNotCopyable = errors.New("elem: type is not copyable")

	// ErrInvalidOps indicates a lifecycle hook set that contradicts itself.
	ErrInvalidOps = errors.New("elem: invalid lifecycle ops")
)
