package coll

import (
	"errors"
	"fmt"
)

// ErrIndexNotFound is matched by every *IndexError.
var ErrIndexNotFound = errors.New("coll: index not found")

// IndexError reports a bounds-checked operation whose index was outside
// the live range.
type IndexError struct {
	Op    string // Operation that rejected the index
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("coll: %s: index was %d when len was %d", e.Op, e.Index, e.Len)
}

// Is reports whether target is ErrIndexNotFound.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexNotFound
}

// mustIndex panics with the standard out-of-range message if err is non-nil.
func mustIndex(err error) {
	if err == nil {
		return
	}
	var ie *IndexError
	if errors.As(err, &ie) {
		panic(fmt.Sprintf("index was %d when len was %d", ie.Index, ie.Len))
	}
	panic(err)
}
