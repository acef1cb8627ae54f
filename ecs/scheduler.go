package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

type systemSet struct {
	enter  []System
	update []System
	exit   []System
}

// Scheduler keeps the explicit system order for each lifecycle state.
type Scheduler struct {
	sets map[GameState]*systemSet
}

func NewScheduler() *Scheduler {
	return &Scheduler{sets: make(map[GameState]*systemSet)}
}

func (s *Scheduler) set(state GameState) *systemSet {
	set, ok := s.sets[state]
	if !ok {
		set = &systemSet{}
		s.sets[state] = set
	}
	return set
}

// OnEnter appends systems that run once when state becomes active.
func (s *Scheduler) OnEnter(state GameState, systems ...System) {
	set := s.set(state)
	set.enter = appendSystems(set.enter, systems)
}

// OnUpdate appends systems that run every frame while state is active.
func (s *Scheduler) OnUpdate(state GameState, systems ...System) {
	set := s.set(state)
	set.update = appendSystems(set.update, systems)
}

// OnExit appends systems that run once when state stops being active.
func (s *Scheduler) OnExit(state GameState, systems ...System) {
	set := s.set(state)
	set.exit = appendSystems(set.exit, systems)
}

func (s *Scheduler) runEnter(w *World, state GameState) {
	if set, ok := s.sets[state]; ok {
		run(w, set.enter)
	}
}

func (s *Scheduler) runUpdate(w *World, state GameState) {
	if set, ok := s.sets[state]; ok {
		run(w, set.update)
	}
}

func (s *Scheduler) runExit(w *World, state GameState) {
	if set, ok := s.sets[state]; ok {
		run(w, set.exit)
	}
}

func appendSystems(dst, systems []System) []System {
	for _, system := range systems {
		if system != nil {
			dst = append(dst, system)
		}
	}
	return dst
}

func run(w *World, systems []System) {
	for _, system := range systems {
		system.Update(w)
	}
}
