package diff

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMalformedRecord reports a record list that breaks ordering, bounds or
// replay invariants.
var ErrMalformedRecord = errors.New("malformed change record")

// Verify checks that records are well formed for a and b and that replaying
// them as an edit script against a yields b.
func Verify(records []Record, a, b []string) error {
	var out []string
	i := 0 // next unconsumed left line, 0-based
	for n, rec := range records {
		pos, rpos, err := positions(rec, len(a), len(b))
		if err != nil {
			return fmt.Errorf("%w: record %d (%s): %v", ErrMalformedRecord, n, rec, err)
		}
		if pos < i {
			return fmt.Errorf("%w: record %d (%s): left position %d before %d", ErrMalformedRecord, n, rec, pos+1, i+1)
		}
		out = append(out, a[i:pos]...)
		i = pos
		if len(out) != rpos {
			return fmt.Errorf("%w: record %d (%s): right position %d, replay is at %d", ErrMalformedRecord, n, rec, rpos+1, len(out)+1)
		}
		switch rec.Kind {
		case Add:
			out = append(out, b[rec.Right.Start-1:rec.Right.End]...)
		case Delete:
			i = rec.Left.End
		case Modify:
			out = append(out, b[rec.Right.Start-1:rec.Right.End]...)
			i = rec.Left.End
		}
	}
	out = append(out, a[i:]...)
	if !slices.Equal(out, b) {
		return fmt.Errorf("%w: replay does not reproduce the right text", ErrMalformedRecord)
	}
	return nil
}

// positions returns the 0-based left and right offsets at which rec applies,
// after checking its ranges and anchors against the sequence lengths.
func positions(rec Record, m, n int) (int, int, error) {
	valid := func(r Range, size int) bool {
		return r.Start >= 1 && r.End >= r.Start && r.End <= size
	}
	switch rec.Kind {
	case Add:
		if rec.LeftAnchor < 0 || rec.LeftAnchor > m {
			return 0, 0, fmt.Errorf("left anchor %d out of [0,%d]", rec.LeftAnchor, m)
		}
		if !valid(rec.Right, n) {
			return 0, 0, fmt.Errorf("right range %s out of [1,%d]", rec.Right, n)
		}
		return rec.LeftAnchor, rec.Right.Start - 1, nil
	case Delete:
		if !valid(rec.Left, m) {
			return 0, 0, fmt.Errorf("left range %s out of [1,%d]", rec.Left, m)
		}
		if rec.RightAnchor < 1 || rec.RightAnchor > n+1 {
			return 0, 0, fmt.Errorf("right anchor %d out of [1,%d]", rec.RightAnchor, n+1)
		}
		return rec.Left.Start - 1, rec.RightAnchor - 1, nil
	case Modify:
		if !valid(rec.Left, m) {
			return 0, 0, fmt.Errorf("left range %s out of [1,%d]", rec.Left, m)
		}
		if !valid(rec.Right, n) {
			return 0, 0, fmt.Errorf("right range %s out of [1,%d]", rec.Right, n)
		}
		return rec.Left.Start - 1, rec.Right.Start - 1, nil
	}
	return 0, 0, fmt.Errorf("unknown kind %s", rec.Kind)
}
