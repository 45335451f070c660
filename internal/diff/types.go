package diff

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the type of a change record.
type Kind int

const (
	Add Kind = iota
	Delete
	Modify
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Delete:
		return "delete"
	case Modify:
		return "modify"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Range is an inclusive, 1-based span of lines.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of lines in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Record is one unit of difference between two line sequences.
//
// Add uses LeftAnchor and Right, Delete uses Left and RightAnchor,
// Modify uses Left and Right. Unused fields are zero.
type Record struct {
	Kind Kind
	// Left is the affected range of the left sequence (Delete, Modify).
	Left Range
	// Right is the affected range of the right sequence (Add, Modify).
	Right Range
	// LeftAnchor is the left line after which an Add is inserted; 0 means before the first line.
	LeftAnchor int
	// RightAnchor is the right line at which a Delete occurs; len(right)+1 at the end.
	RightAnchor int
}

// MarshalJSON emits only the fields the record's kind uses.
func (r Record) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case Add:
		return json.Marshal(struct {
			Kind       Kind  `json:"kind"`
			LeftAnchor int   `json:"leftAnchor"`
			Right      Range `json:"rightRange"`
		}{r.Kind, r.LeftAnchor, r.Right})
	case Delete:
		return json.Marshal(struct {
			Kind        Kind  `json:"kind"`
			Left        Range `json:"leftRange"`
			RightAnchor int   `json:"rightAnchor"`
		}{r.Kind, r.Left, r.RightAnchor})
	default:
		return json.Marshal(struct {
			Kind  Kind  `json:"kind"`
			Left  Range `json:"leftRange"`
			Right Range `json:"rightRange"`
		}{r.Kind, r.Left, r.Right})
	}
}

// String returns a one-line human readable summary of the record.
func (r Record) String() string {
	switch r.Kind {
	case Add:
		where := fmt.Sprintf("after line %d", r.LeftAnchor)
		if r.LeftAnchor == 0 {
			where = "before line 1"
		}
		return fmt.Sprintf("Add %s (%s, right text) %s (left text)", plural(r.Right.Len()), r.Right, where)
	case Delete:
		return fmt.Sprintf("Delete %s (%s, left text) at line %d (right text)", plural(r.Left.Len()), r.Left, r.RightAnchor)
	case Modify:
		return fmt.Sprintf("Modify %s (%s, left text) to %s (%s, right text)",
			plural(r.Left.Len()), r.Left, plural(r.Right.Len()), r.Right)
	}
	return r.Kind.String()
}

func plural(n int) string {
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

// Result is the outcome of comparing two line sequences.
type Result struct {
	Identical bool     `json:"identical"`
	Records   []Record `json:"records"`
}

// Role tags a rendered line.
type Role int

const (
	Context Role = iota
	Added
	Removed
)

// String returns the display name of the role.
func (r Role) String() string {
	switch r {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "context"
	}
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// DisplayLine is one line of a rendered context window.
type DisplayLine struct {
	LineNumber int    `json:"line"`
	Role       Role   `json:"role"`
	Text       string `json:"text"`
}
