package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyInState   = errors.New("ecs: already in state")
	ErrTransitionQueued = errors.New("ecs: transition already queued")
	ErrParentCycle      = errors.New("ecs: parent would create a cycle")
)

// GameState is the process-wide lifecycle state.
type GameState int

const (
	// StateLoad waits for preloaded assets.
	StateLoad GameState = iota
	// StateMain runs the player pipeline. There is no way back to StateLoad.
	StateMain
)

func (s GameState) String() string {
	switch s {
	case StateLoad:
		return "load"
	case StateMain:
		return "main"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// States holds exactly one active GameState and at most one queued
// transition, applied at the end of the frame that queued it.
type States struct {
	current GameState
	next    GameState
	queued  bool
	entered bool
}

// Current returns the active state.
func (s *States) Current() GameState {
	return s.current
}

// Pending returns the queued state, if any.
func (s *States) Pending() (GameState, bool) {
	return s.next, s.queued
}

// Set queues a transition to next. It fails when next is already active or
// another transition is waiting; the caller decides whether to retry.
func (s *States) Set(next GameState) error {
	if s.queued {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionQueued, s.current, s.next)
	}
	if next == s.current {
		return fmt.Errorf("%w: %s", ErrAlreadyInState, next)
	}
	s.next = next
	s.queued = true
	return nil
}

func (s *States) apply() (from, to GameState) {
	from, to = s.current, s.next
	s.current = s.next
	s.queued = false
	return from, to
}
