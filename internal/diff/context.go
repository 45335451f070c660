package diff

// DefaultContextSize is the number of unchanged lines shown on each side of a change.
const DefaultContextSize = 3

// Render builds the left and right display windows for a single record:
// the changed lines plus up to size unchanged lines before and after them.
// Windows are clipped to the bounds of each sequence.
func Render(rec Record, a, b []string, size int) (left, right []DisplayLine) {
	// No window needs more context than the longer sequence holds.
	size = min(max(size, 0), max(len(a), len(b)))
	switch rec.Kind {
	case Add:
		left = around(a, rec.LeftAnchor, size)
		right = changed(b, rec.Right, Added, size)
	case Delete:
		left = changed(a, rec.Left, Removed, size)
		right = around(b, rec.RightAnchor-1, size)
	default:
		left = changed(a, rec.Left, Removed, size)
		right = changed(b, rec.Right, Added, size)
	}
	return left, right
}

// changed renders r tagged with role, framed by size context lines.
func changed(lines []string, r Range, role Role, size int) []DisplayLine {
	out := span(nil, lines, r.Start-size, r.Start-1, Context)
	out = span(out, lines, r.Start, r.End, role)
	return span(out, lines, r.End+1, r.End+size, Context)
}

// around renders the context on both sides of the gap after line gap.
func around(lines []string, gap, size int) []DisplayLine {
	return span(nil, lines, gap-size+1, gap+size, Context)
}

// span appends lines from..to (1-based, inclusive) after clipping to bounds.
func span(out []DisplayLine, lines []string, from, to int, role Role) []DisplayLine {
	from = max(from, 1)
	to = min(to, len(lines))
	for n := from; n <= to; n++ {
		out = append(out, DisplayLine{LineNumber: n, Role: role, Text: lines[n-1]})
	}
	return out
}
