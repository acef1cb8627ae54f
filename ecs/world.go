package ecs

import (
	"errors"
	"io"
	"slices"

	"github.com/milk9111/fps/ecs/component"
)

// World owns entities, components, the state-scoped system schedule and the
// process-wide resources a frame needs.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]store
	resources Entity

	scheduler *Scheduler
	states    States
	time      Time
	events    EventQueue

	parents  map[Entity]Entity
	children map[Entity][]Entity

	closers []io.Closer
}

// NewWorld creates an empty ECS world starting in StateLoad.
func NewWorld() *World {
	w := &World{
		stores:    make(map[component.ComponentID]store),
		scheduler: NewScheduler(),
		parents:   make(map[Entity]Entity),
		children:  make(map[Entity][]Entity),
	}
	w.resources = w.entities.create()
	return w
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes e, its components and its descendants. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || e == w.resources || !w.entities.isAlive(e) {
		return false
	}
	for _, child := range slices.Clone(w.children[e]) {
		w.DestroyEntity(child)
	}
	w.detach(e)
	delete(w.children, e)
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// SetParent attaches child under parent, detaching it from any previous
// parent first.
func (w *World) SetParent(child, parent Entity) error {
	if !w.IsAlive(child) || !w.IsAlive(parent) {
		return component.ErrEntityNotAlive
	}
	if child == parent {
		return ErrParentCycle
	}
	for p, ok := w.parents[parent]; ok; p, ok = w.parents[p] {
		if p == child {
			return ErrParentCycle
		}
	}
	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// Parent returns the parent of e, if any.
func (w *World) Parent(e Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns a copy of the direct children of e.
func (w *World) Children(e Entity) []Entity {
	if w == nil {
		return nil
	}
	return slices.Clone(w.children[e])
}

func (w *World) detach(child Entity) {
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	siblings := w.children[parent]
	if i := slices.Index(siblings, child); i >= 0 {
		w.children[parent] = slices.Delete(siblings, i, i+1)
	}
}

// Scheduler returns the state-scoped system schedule.
func (w *World) Scheduler() *Scheduler {
	if w == nil {
		return nil
	}
	return w.scheduler
}

// States returns the lifecycle state resource.
func (w *World) States() *States {
	if w == nil {
		return nil
	}
	return &w.states
}

// Time returns the frame clock.
func (w *World) Time() *Time {
	if w == nil {
		return nil
	}
	return &w.time
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Step advances the clock by dt seconds and runs one frame.
func (w *World) Step(dt float64) {
	if w == nil {
		return
	}
	w.time.advance(dt)
	w.Update()
}

// Update runs one frame: OnEnter of the initial state the first time, the
// OnUpdate set of the current state, then any transition queued during the
// frame (OnExit of the old state, OnEnter of the new one). Events pushed
// before the frame are dropped once it ends.
func (w *World) Update() {
	if w == nil {
		return
	}
	if !w.states.entered {
		w.states.entered = true
		w.scheduler.runEnter(w, w.states.current)
	}
	w.scheduler.runUpdate(w, w.states.current)
	for w.states.queued {
		from, to := w.states.apply()
		w.scheduler.runExit(w, from)
		w.scheduler.runEnter(w, to)
	}
	w.events.flush()
}

// OnClose registers c to be closed by Close, in reverse order.
func (w *World) OnClose(c io.Closer) {
	if w == nil || c == nil {
		return
	}
	w.closers = append(w.closers, c)
}

// Close tears down everything registered with OnClose.
func (w *World) Close() error {
	if w == nil {
		return nil
	}
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	return errors.Join(errs...)
}
