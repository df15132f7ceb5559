// Copyright 2020 Aleksandr Demakin. All rights reserved.

package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is a kind of a text edit.
type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Edit is a run of text that was kept, inserted or deleted.
type Edit struct {
	Op   Op
	Text string
}

// Edits is a textual summary of a change.
type Edits []Edit

// TextEdits returns the character-level edits turning prev into cur.
func TextEdits(prev, cur string) Edits {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(prev, cur, false)
	edits := make(Edits, 0, len(diffs))
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		}
		edits = append(edits, Edit{Op: op, Text: d.Text})
	}
	return edits
}

// Unchanged returns true if there are no insertions or deletions.
func (e Edits) Unchanged() bool {
	for _, ed := range e {
		if ed.Op != OpEqual {
			return false
		}
	}
	return true
}

// String formats edits as "1,23[-4-]{+5+}".
func (e Edits) String() string {
	var b strings.Builder
	for _, ed := range e {
		switch ed.Op {
		case OpInsert:
			b.WriteString("{+" + ed.Text + "+}")
		case OpDelete:
			b.WriteString("[-" + ed.Text + "-]")
		default:
			b.WriteString(ed.Text)
		}
	}
	return b.String()
}
