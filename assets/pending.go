package assets

import "github.com/elliotchance/orderedmap/v2"

// StateQuery is the non-blocking load-state lookup the pending set counts
// against.
type StateQuery interface {
	LoadState(h UntypedHandle) LoadState
}

// PendingSet is the insertion-ordered set of handles that gate leaving the
// load phase. Counting never mutates it.
type PendingSet struct {
	handles *orderedmap.OrderedMap[HandleID, UntypedHandle]
}

func NewPendingSet() *PendingSet {
	return &PendingSet{handles: orderedmap.NewOrderedMap[HandleID, UntypedHandle]()}
}

// Add registers h; adding the same handle twice keeps its first position.
func (p *PendingSet) Add(h UntypedHandle) {
	if _, ok := p.handles.Get(h.ID); ok {
		return
	}
	p.handles.Set(h.ID, h)
}

func (p *PendingSet) Len() int {
	return p.handles.Len()
}

// Handles returns the handles in insertion order.
func (p *PendingSet) Handles() []UntypedHandle {
	out := make([]UntypedHandle, 0, p.handles.Len())
	for el := p.handles.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// CountLoading returns how many handles q still reports as loading.
func (p *PendingSet) CountLoading(q StateQuery) int {
	n := 0
	for el := p.handles.Front(); el != nil; el = el.Next() {
		if q.LoadState(el.Value) == LoadStateLoading {
			n++
		}
	}
	return n
}

// Failed returns the handles q reports as failed, in insertion order.
func (p *PendingSet) Failed(q StateQuery) []UntypedHandle {
	var out []UntypedHandle
	for el := p.handles.Front(); el != nil; el = el.Next() {
		if q.LoadState(el.Value) == LoadStateFailed {
			out = append(out, el.Value)
		}
	}
	return out
}

// Clear retires the set once it no longer gates anything.
func (p *PendingSet) Clear() {
	p.handles = orderedmap.NewOrderedMap[HandleID, UntypedHandle]()
}
