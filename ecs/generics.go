package ecs

import "github.com/milk9111/fps/ecs/component"

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	all := w.entities.entities()
	out := all[:0]
	for _, e := range all {
		if e != w.resources {
			out = append(out, e)
		}
	}
	return out
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set
	}
	set, ok := s.(*sparseSet[T])
	if !ok {
		return nil
	}
	return set
}

// Add inserts or replaces the component of kind on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	set := storeFor(w, kind, true)
	if set == nil {
		return component.ErrInvalidComponentKind
	}
	set.set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	set := storeFor(w, kind, false)
	if set == nil {
		return false
	}
	return set.remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Get returns the stored pointer, so callers mutate components in place.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	set := storeFor(w, kind, false)
	if set == nil {
		return nil, false
	}
	return set.get(e)
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}

// SetResource stores a world-wide singleton on the resource entity.
func SetResource[T any](w *World, kind component.ComponentKind[T], value *T) error {
	if w == nil {
		return component.ErrEntityNotAlive
	}
	return Add(w, w.resources, kind, value)
}

func GetResource[T any](w *World, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	return Get(w, w.resources, kind)
}

func RemoveResource[T any](w *World, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return Remove(w, w.resources, kind)
}
