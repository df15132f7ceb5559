// Copyright 2020 Aleksandr Demakin. All rights reserved.

package render

import (
	"time"

	"github.com/avdva/animnum/diff"
)

// State is the state of a character slot.
type State int

const (
	StateIdle State = iota
	StateTransitioning
)

func (s State) String() string {
	if s == StateTransitioning {
		return "transitioning"
	}
	return "idle"
}

// Slot tracks what a single character position shows over time.
// A new value arriving mid-transition replaces the running transition:
// the character settled at that moment becomes the previous one.
// Slot is not safe for concurrent use.
type Slot struct {
	prev, next rune
	dir        diff.Direction
	start      time.Time
	delay      time.Duration
	duration   time.Duration
	moving     bool
}

// NewSlot returns an idle slot showing r.
func NewSlot(r rune) *Slot {
	return &Slot{prev: r, next: r}
}

// State returns the slot state at the given moment.
func (s *Slot) State(now time.Time) State {
	if s.moving && now.Before(s.start.Add(s.delay+s.duration)) {
		return StateTransitioning
	}
	return StateIdle
}

// Settled returns the character the slot is settled on: the target once the
// transition completes, the previous character until then.
func (s *Slot) Settled(now time.Time) rune {
	if s.State(now) == StateTransitioning {
		return s.prev
	}
	return s.next
}

// Target returns the character the slot shows or moves to.
func (s *Slot) Target() rune {
	return s.next
}

// Direction returns the direction of the last transition.
func (s *Slot) Direction() diff.Direction {
	return s.dir
}

// Set starts a transition to r and returns the character it starts from.
// Setting the settled character stops any transition.
func (s *Slot) Set(r rune, dir diff.Direction, delay, duration time.Duration, now time.Time) rune {
	from := s.Settled(now)
	s.prev, s.next, s.dir = from, r, dir
	s.start, s.delay, s.duration = now, delay, duration
	s.moving = from != r && delay+duration > 0
	return from
}

// Seconds converts a float number of seconds to a duration.
func Seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
