package vector

import "github.com/joshuapare/growvec/elem"

// ErrNotCopyable indicates a deep copy was requested for an element type that
// cannot be copied. It matches elem.ErrNotCopyable under errors.Is.
var ErrNotCopyable = elem.ErrNotCopyable
