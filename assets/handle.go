package assets

import (
	"path"
	"strings"

	"github.com/zeebo/xxh3"
)

// LoadState is the progress of one asset.
type LoadState int

const (
	LoadStateNotLoaded LoadState = iota
	LoadStateLoading
	LoadStateLoaded
	LoadStateFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadStateNotLoaded:
		return "not_loaded"
	case LoadStateLoading:
		return "loading"
	case LoadStateLoaded:
		return "loaded"
	case LoadStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// HandleID is derived from the cleaned asset path, so loading the same path
// twice yields the same id.
type HandleID uint64

// UntypedHandle refers to an asset regardless of its decoded type.
type UntypedHandle struct {
	ID   HandleID
	Path string
}

func (h UntypedHandle) Valid() bool {
	return h.ID != 0
}

// Handle refers to an asset decoding to T.
type Handle[T any] struct {
	UntypedHandle
}

func (h Handle[T]) Untyped() UntypedHandle {
	return h.UntypedHandle
}

func newUntypedHandle(p string) UntypedHandle {
	clean := CleanPath(p)
	id := HandleID(xxh3.HashString(clean))
	if id == 0 {
		id = 1
	}
	return UntypedHandle{ID: id, Path: clean}
}

// CleanPath normalizes an asset path to slash form without a leading "./"
// or "/".
func CleanPath(p string) string {
	s := strings.ReplaceAll(p, "\\", "/")
	s = path.Clean("/" + s)
	return strings.TrimPrefix(s, "/")
}
