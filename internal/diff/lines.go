package diff

import (
	"slices"
	"strings"
)

// SplitLines splits text on "\n". Empty text yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Identical reports whether both line sequences are element-wise equal.
func Identical(a, b []string) bool {
	return slices.Equal(a, b)
}

// intern maps every distinct line to a small integer so the scan compares ints.
func intern(a, b []string) ([]int, []int) {
	ids := make(map[string]int, len(a))
	conv := func(lines []string) []int {
		out := make([]int, len(lines))
		for i, l := range lines {
			id, ok := ids[l]
			if !ok {
				id = len(ids)
				ids[l] = id
			}
			out[i] = id
		}
		return out
	}
	return conv(a), conv(b)
}
