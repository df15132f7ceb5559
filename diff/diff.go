// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package diff compares two decomposed numbers character by character and
// schedules a right-to-left cascade of transitions for the changed characters.
package diff

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/avdva/animnum/numfmt"
	"github.com/avdva/animnum/segment"
)

// Animation is the kind of transition a changed character goes through.
type Animation int

const (
	AnimationNone Animation = iota
	AnimationFlip
	AnimationSlide
	AnimationFade
)

var animationNames = [...]string{"none", "flip", "slide", "fade"}

func (a Animation) String() string {
	if a < 0 || int(a) >= len(animationNames) {
		return fmt.Sprintf("Animation(%d)", int(a))
	}
	return animationNames[a]
}

// Animated returns true if changed characters are transitioned.
func (a Animation) Animated() bool {
	return a > AnimationNone && int(a) < len(animationNames)
}

// ParseAnimation returns the animation kind by its name.
func ParseAnimation(s string) (Animation, error) {
	for i, name := range animationNames {
		if strings.EqualFold(s, name) {
			return Animation(i), nil
		}
	}
	return AnimationNone, fmt.Errorf("unknown animation %q", s)
}

// Direction is the way a transition travels.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// Pad is compared against current characters that have no previous partner.
const Pad rune = 0

// Schedule is the timing of one character transition.
type Schedule struct {
	// Delay in seconds.
	Delay     float64
	Direction Direction
}

// Entry is the comparison result for one character of a segment.
type Entry struct {
	Position  int
	Prev, Cur rune
	Changed   bool
	Direction Direction
	Schedule  Schedule
}

// Segment holds the entries of one segment of the current number.
type Segment struct {
	Kind    segment.Kind
	Entries []Entry
}

// Result is the diff of two numbers, with segments in the display order of the current one.
type Result struct {
	Segments []Segment
}

// Entries returns the entries of the segment of the given kind.
func (r Result) Entries(k segment.Kind) []Entry {
	for _, s := range r.Segments {
		if s.Kind == k {
			return s.Entries
		}
	}
	return nil
}

// Changed returns the number of changed characters.
func (r Result) Changed() int {
	var cnt int
	for _, s := range r.Segments {
		for _, e := range s.Entries {
			if e.Changed {
				cnt++
			}
		}
	}
	return cnt
}

// Diff compares every segment of cur with the same segment of prev.
// step is the cascade delay between neighbouring characters, in seconds.
func Diff(prev, cur segment.Parts, a Animation, step float64) Result {
	order := cur.Order()
	res := Result{Segments: make([]Segment, 0, len(order))}
	for _, k := range order {
		res.Segments = append(res.Segments, Segment{
			Kind:    k,
			Entries: Runes(prev.Segment(k), cur.Segment(k), a, step),
		})
	}
	return res
}

// Runes compares two strings rune by rune.
// The result has one entry for each rune of cur. Runes of prev past the length of cur are dropped.
func Runes(prev, cur string, a Animation, step float64) []Entry {
	p, c := []rune(prev), []rune(cur)
	if step < 0 {
		step = 0
	}
	n := len(c)
	entries := make([]Entry, n)
	for i, r := range c {
		e := Entry{Position: i, Prev: Pad, Cur: r}
		if i < len(p) {
			e.Prev = p[i]
		}
		e.Changed = e.Prev != e.Cur && e.Prev != Pad
		if e.Changed {
			e.Direction = DirectionOf(e.Prev, e.Cur)
			e.Schedule.Direction = e.Direction
			if a.Animated() {
				e.Schedule.Delay = float64(n-1-i) * step
			}
		}
		entries[i] = e
	}
	return entries
}

// DirectionOf returns the direction of a transition from prev to cur:
// down if both are numeric and cur is less than prev, up otherwise.
func DirectionOf(prev, cur rune) Direction {
	pv, pok := Value(prev)
	cv, cok := Value(cur)
	if pok && cok && cv < pv {
		return DirectionDown
	}
	return DirectionUp
}

// Value returns the numeric value of a character.
// Decimal digits of any script and exponent digits have their digit value, minus signs are -1.
func Value(r rune) (int, bool) {
	switch r {
	case '-', '\u2212', numfmt.SuperscriptMinus:
		return -1, true
	}
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if v, ok := numfmt.SuperscriptDigit(r); ok {
		return v, true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rng := range unicode.Nd.R16 {
		if r <= 0xffff && uint16(r) >= rng.Lo && uint16(r) <= rng.Hi {
			return int(uint16(r)-rng.Lo) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if uint32(r) >= rng.Lo && uint32(r) <= rng.Hi {
			return int(uint32(r)-rng.Lo) % 10, true
		}
	}
	return 0, false
}
