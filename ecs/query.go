package ecs

import "github.com/milk9111/fps/ecs/component"

// Query returns the live entities that carry every listed component kind.
// The result is a fresh slice; systems may mutate the world while ranging
// over it.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}

	// iterate smallest set
	smallest := 0
	for i, s := range stores {
		if s.len() < stores[smallest].len() {
			smallest = i
		}
	}

	out := make([]Entity, 0, stores[smallest].len())
	for _, e := range stores[smallest].entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		matched := true
		for i, s := range stores {
			if i != smallest && !s.has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, e := range s.entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many live entities carry kind.
func (w *World) Count(kind component.Kind) int {
	return len(w.Query(kind))
}
