// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package animnum formats numbers and computes per-character transitions
// between consecutive values.
//
// A Display keeps the last rendered number. Every Update formats the new value,
// splits it into segments (symbol, integer, decimal and suffix), compares each
// segment with the previous one and returns a Frame with drawing directives:
// unchanged characters are static, changed ones get exit and enter layers
// delayed from right to left.
package animnum

import (
	"fmt"
	"time"

	"github.com/avdva/animnum/diff"
	"github.com/avdva/animnum/numfmt"
	"github.com/avdva/animnum/render"
	"github.com/avdva/animnum/segment"
)

// SegmentFrame holds the directives of one segment.
type SegmentFrame struct {
	Kind segment.Kind
	Text string
	// FontSize is zero if the segment uses the host font size.
	FontSize   float64
	Directives []render.Directive
}

// Frame is the result of an update.
type Frame struct {
	Prefix, Suffix string
	// Text is the formatted number without prefix and suffix.
	Text  string
	Parts segment.Parts
	// Segments are in display order.
	Segments []SegmentFrame
	// Edits summarize the change of Text.
	Edits diff.Edits
	// Changed is the number of characters that transition.
	Changed int
}

// String returns the text drawn once all transitions complete.
func (f Frame) String() string {
	return f.Prefix + f.Text + f.Suffix
}

// Display renders a sequence of values.
// Display is not safe for concurrent use.
type Display struct {
	cfg       Config
	loc       numfmt.Locale
	localeErr error
	prev      segment.Parts
	slots     map[segment.Kind][]*render.Slot
}

// New returns a Display for the config.
// Unknown locales and currencies do not fail: their fallback conventions are used,
// and the resolution error is available from LocaleErr.
func New(cfg Config) (*Display, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	loc, err := cfg.Format.Resolve()
	return &Display{
		cfg:       cfg,
		loc:       loc,
		localeErr: err,
		slots:     make(map[segment.Kind][]*render.Slot),
	}, nil
}

// LocaleErr returns the error of locale or currency resolution, if any.
func (d *Display) LocaleErr() error {
	return d.localeErr
}

// Locale returns the resolved formatting conventions.
func (d *Display) Locale() numfmt.Locale {
	return d.loc
}

// Parts returns the last rendered number.
func (d *Display) Parts() segment.Parts {
	return d.prev
}

// Reset forgets the last rendered number, so the next update is not animated.
func (d *Display) Reset() {
	d.prev = segment.Parts{}
	d.slots = make(map[segment.Kind][]*render.Slot)
}

// Update renders v. v may be any integer or float type, a numeric string,
// json.Number, or a decimal from shopspring/decimal, govalues/decimal or robaho/fixed.
// If v is not a finite number, an error wrapping ErrInvalidValue is returned
// and the state of the display does not change.
func (d *Display) Update(v interface{}) (Frame, error) {
	f, err := numfmt.Coerce(v)
	if err != nil {
		return Frame{}, fmt.Errorf("update: %w", err)
	}
	o := d.cfg.Format
	text := numfmt.FormatLocale(f, o, d.loc)
	parts := segment.Decompose(text, o.Family, d.loc)
	a := d.cfg.Animation
	res := diff.Diff(d.prev, parts, a.Kind, a.Step)
	frame := Frame{
		Prefix:   a.Prefix,
		Suffix:   a.Suffix,
		Text:     text,
		Parts:    parts,
		Segments: make([]SegmentFrame, 0, len(res.Segments)),
		Edits:    diff.TextEdits(d.prev.FullText, text),
	}
	now := d.cfg.Clock()
	for _, s := range res.Segments {
		seg := parts.Segment(s.Kind)
		sf := SegmentFrame{
			Kind:       s.Kind,
			Text:       seg,
			FontSize:   a.FontSizes[s.Kind],
			Directives: d.renderSegment(s, segment.Classify(s.Kind, seg, d.loc), now),
		}
		for _, dir := range sf.Directives {
			if dir.Changed && !dir.Static() {
				frame.Changed++
			}
		}
		frame.Segments = append(frame.Segments, sf)
	}
	d.prev = parts
	return frame, nil
}

// renderSegment moves the slots of the segment to the new characters.
// A changed character starts from what its slot is settled on, which differs
// from the previous character if that one has not finished its transition.
func (d *Display) renderSegment(s diff.Segment, classes []segment.Class, now time.Time) []render.Directive {
	a := d.cfg.Animation
	slots := d.slots[s.Kind]
	if len(slots) > len(s.Entries) {
		slots = slots[:len(s.Entries)]
	}
	res := make([]render.Directive, 0, len(s.Entries))
	for i, e := range s.Entries {
		if i == len(slots) {
			slots = append(slots, render.NewSlot(e.Cur))
		}
		slot := slots[i]
		switch {
		case e.Changed && a.Kind.Animated():
			e.Prev = slot.Settled(now)
			e.Changed = e.Prev != e.Cur
			e.Direction = diff.DirectionOf(e.Prev, e.Cur)
			e.Schedule.Direction = e.Direction
			slot.Set(e.Cur, e.Direction, render.Seconds(e.Schedule.Delay), render.Seconds(a.Duration), now)
		case slot.Target() != e.Cur || e.Changed:
			slot.Set(e.Cur, e.Schedule.Direction, 0, 0, now)
		}
		c := segment.ClassDigit
		if i < len(classes) {
			c = classes[i]
		}
		res = append(res, render.Render(e, c, a.Kind, a.Duration))
	}
	d.slots[s.Kind] = slots
	return res
}
