// Package diff compares two line sequences and renders context windows
// around the resulting change records.
package diff

// Compare diffs a against b and reports whether they are identical.
func Compare(a, b []string) Result {
	if Identical(a, b) {
		return Result{Identical: true, Records: []Record{}}
	}
	return Result{Records: Diff(a, b)}
}

// Diff returns the ordered change records that turn a into b.
//
// Both sequences are scanned with a pair of cursors. Equal lines advance both.
// On a mismatch the scan looks for the nearest pair of equal lines ahead of
// the cursors, preferring the smallest combined skip and then the smallest
// skip on the left side. Everything skipped on the way becomes one record.
// Lines left over once no such pair exists become one trailing record.
// Empty lines are matched and classified like any other line.
func Diff(a, b []string) []Record {
	ia, ib := intern(a, b)
	records := []Record{}

	i, j := 0, 0
	for i < len(ia) && j < len(ib) {
		if ia[i] == ib[j] {
			i++
			j++
			continue
		}
		ni, nj, ok := resync(ia, ib, i, j)
		if !ok {
			break
		}
		records = append(records, run(i, ni, j, nj))
		i, j = ni, nj
	}
	if i < len(ia) || j < len(ib) {
		records = append(records, run(i, len(ia), j, len(ib)))
	}
	return records
}

// resync finds the nearest (ni, nj) with a[ni] == b[nj], ni >= i, nj >= j.
// Candidates are visited by increasing (ni-i)+(nj-j), so the whole search
// touches each remaining cell at most once.
func resync(a, b []int, i, j int) (int, int, bool) {
	restA := len(a) - 1 - i
	restB := len(b) - 1 - j
	for d := 1; d <= restA+restB; d++ {
		for k := max(0, d-restB); k <= min(d, restA); k++ {
			if a[i+k] == b[j+d-k] {
				return i + k, j + d - k, true
			}
		}
	}
	return 0, 0, false
}

// run converts the skipped half-open spans a[i0:i1] and b[j0:j1] into a record.
func run(i0, i1, j0, j1 int) Record {
	switch {
	case i1 > i0 && j1 > j0:
		return Record{
			Kind:  Modify,
			Left:  Range{Start: i0 + 1, End: i1},
			Right: Range{Start: j0 + 1, End: j1},
		}
	case i1 > i0:
		return Record{
			Kind:        Delete,
			Left:        Range{Start: i0 + 1, End: i1},
			RightAnchor: j0 + 1,
		}
	default:
		return Record{
			Kind:       Add,
			LeftAnchor: i0,
			Right:      Range{Start: j0 + 1, End: j1},
		}
	}
}
