// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package render turns diff entries into backend-neutral drawing directives.
// A directive is a character slot with one static layer, or with an exit layer
// for the previous character and an enter layer for the current one.
package render

import (
	"fmt"

	"github.com/avdva/animnum/diff"
	"github.com/avdva/animnum/segment"
)

// Width is the footprint of a character slot.
type Width int

const (
	WidthNarrow Width = iota
	WidthStandard
	WidthWide
)

var widthNames = [...]string{"narrow", "standard", "wide"}

func (w Width) String() string {
	if w < 0 || int(w) >= len(widthNames) {
		return fmt.Sprintf("Width(%d)", int(w))
	}
	return widthNames[w]
}

// WidthOf returns the slot width for a character class.
func WidthOf(c segment.Class) Width {
	switch c {
	case segment.ClassDecimalSeparator, segment.ClassGroupSeparator, segment.ClassSign:
		return WidthNarrow
	case segment.ClassLetterSuffix:
		return WidthWide
	}
	return WidthStandard
}

// Role tells how a layer takes part in a transition.
type Role int

const (
	RoleStatic Role = iota
	RoleExit
	RoleEnter
)

var roleNames = [...]string{"static", "exit", "enter"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Keyframe is a visual state of a layer.
type Keyframe struct {
	// OffsetY is a vertical offset in slot heights, positive is down.
	OffsetY float64
	// RotateX is a rotation around the horizontal axis, in degrees.
	RotateX float64
	Opacity float64
}

var rest = Keyframe{Opacity: 1}

// Layer is one character drawn in a slot.
type Layer struct {
	Char     rune
	Role     Role
	From, To Keyframe
	// Delay and Duration are in seconds.
	Delay, Duration float64
}

// Directive describes how to draw one character slot.
type Directive struct {
	Char      rune
	Prev      rune
	Class     segment.Class
	Width     Width
	Changed   bool
	Direction diff.Direction
	Layers    []Layer
}

// Static returns true if the slot is drawn without a transition.
func (d Directive) Static() bool {
	return len(d.Layers) == 1 && d.Layers[0].Role == RoleStatic
}

// Render builds a directive for one diff entry.
// duration is the length of a single character transition, in seconds.
func Render(e diff.Entry, c segment.Class, a diff.Animation, duration float64) Directive {
	d := Directive{
		Char:      e.Cur,
		Prev:      e.Prev,
		Class:     c,
		Width:     WidthOf(c),
		Changed:   e.Changed,
		Direction: e.Schedule.Direction,
	}
	if !e.Changed || !a.Animated() {
		d.Layers = []Layer{{Char: e.Cur, Role: RoleStatic, From: rest, To: rest}}
		return d
	}
	if duration < 0 {
		duration = 0
	}
	exitTo, enterFrom := keyframes(a, e.Schedule.Direction)
	d.Layers = []Layer{
		{Char: e.Prev, Role: RoleExit, From: rest, To: exitTo, Delay: e.Schedule.Delay, Duration: duration},
		{Char: e.Cur, Role: RoleEnter, From: enterFrom, To: rest, Delay: e.Schedule.Delay, Duration: duration},
	}
	return d
}

// Segment renders the entries of one segment. Characters without a class are digits.
func Segment(entries []diff.Entry, classes []segment.Class, a diff.Animation, duration float64) []Directive {
	res := make([]Directive, 0, len(entries))
	for i, e := range entries {
		c := segment.ClassDigit
		if i < len(classes) {
			c = classes[i]
		}
		res = append(res, Render(e, c, a, duration))
	}
	return res
}

// keyframes returns the final state of the exit layer and the initial state of the enter layer.
// Going up, the old character leaves upwards and the new one comes from below.
func keyframes(a diff.Animation, dir diff.Direction) (exitTo, enterFrom Keyframe) {
	sign := 1.0
	if dir == diff.DirectionDown {
		sign = -1
	}
	switch a {
	case diff.AnimationSlide:
		return Keyframe{OffsetY: -sign, Opacity: 1}, Keyframe{OffsetY: sign, Opacity: 1}
	case diff.AnimationFlip:
		return Keyframe{RotateX: 90 * sign, Opacity: 0}, Keyframe{RotateX: -90 * sign, Opacity: 0}
	}
	return Keyframe{}, Keyframe{}
}
