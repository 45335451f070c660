package diff

import "math"

// Stats summarizes how much of two line sequences changed.
type Stats struct {
	Added      int `json:"added"`
	Removed    int `json:"removed"`
	Modified   int `json:"modified"`
	Unchanged  int `json:"unchanged"`
	Similarity int `json:"similarity"` // percent of the longer text left unchanged
}

// Summarize counts the lines touched by records. Modified counts left-side
// lines; the right-side lines of a Modify are not counted as added.
func Summarize(records []Record, a, b []string) Stats {
	var s Stats
	for _, rec := range records {
		switch rec.Kind {
		case Add:
			s.Added += rec.Right.Len()
		case Delete:
			s.Removed += rec.Left.Len()
		case Modify:
			s.Modified += rec.Left.Len()
		}
	}
	s.Unchanged = len(a) - s.Removed - s.Modified

	longest := max(len(a), len(b))
	if longest == 0 {
		s.Similarity = 100
		return s
	}
	s.Similarity = int(math.Round(float64(s.Unchanged) * 100 / float64(longest)))
	return s
}
