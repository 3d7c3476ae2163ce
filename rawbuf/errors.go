package rawbuf

import "errors"

// ErrAlloc indicates that a block of the requested size could not be provided.
var ErrAlloc = errors.New("rawbuf: allocation failed")
