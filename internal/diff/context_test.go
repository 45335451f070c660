package diff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lines(nums []int, role Role, text []string) []DisplayLine {
	out := make([]DisplayLine, 0, len(nums))
	for _, n := range nums {
		out = append(out, DisplayLine{LineNumber: n, Role: role, Text: text[n-1]})
	}
	return out
}

func TestRenderModifyClipsToBounds(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}
	rec := Record{Kind: Modify, Left: Range{2, 2}, Right: Range{2, 2}}

	left, right := Render(rec, a, b, DefaultContextSize)

	assert.Equal(t, []DisplayLine{
		{LineNumber: 1, Role: Context, Text: "a"},
		{LineNumber: 2, Role: Removed, Text: "b"},
		{LineNumber: 3, Role: Context, Text: "c"},
	}, left)
	assert.Equal(t, []DisplayLine{
		{LineNumber: 1, Role: Context, Text: "a"},
		{LineNumber: 2, Role: Added, Text: "x"},
		{LineNumber: 3, Role: Context, Text: "c"},
	}, right)
}

func TestRenderAdd(t *testing.T) {
	a := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	b := []string{"1", "2", "3", "4", "new1", "new2", "5", "6", "7", "8"}
	rec := Record{Kind: Add, LeftAnchor: 4, Right: Range{5, 6}}

	left, right := Render(rec, a, b, 2)

	assert.Equal(t, lines([]int{3, 4, 5, 6}, Context, a), left)
	expected := lines([]int{3, 4}, Context, b)
	expected = append(expected, lines([]int{5, 6}, Added, b)...)
	expected = append(expected, lines([]int{7, 8}, Context, b)...)
	assert.Equal(t, expected, right)
}

func TestRenderAddAtStart(t *testing.T) {
	a := []string{"c", "d"}
	b := []string{"a", "b", "c", "d"}
	rec := Record{Kind: Add, LeftAnchor: 0, Right: Range{1, 2}}

	left, right := Render(rec, a, b, 3)

	assert.Equal(t, lines([]int{1, 2}, Context, a), left)
	expected := lines([]int{1, 2}, Added, b)
	expected = append(expected, lines([]int{3, 4}, Context, b)...)
	assert.Equal(t, expected, right)
}

func TestRenderDelete(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"a", "b", "e"}
	rec := Record{Kind: Delete, Left: Range{3, 4}, RightAnchor: 3}

	left, right := Render(rec, a, b, 1)

	expected := lines([]int{2}, Context, a)
	expected = append(expected, lines([]int{3, 4}, Removed, a)...)
	expected = append(expected, lines([]int{5}, Context, a)...)
	assert.Equal(t, expected, left)
	assert.Equal(t, lines([]int{2, 3}, Context, b), right)
}

func TestRenderTrailingDelete(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a"}
	rec := Record{Kind: Delete, Left: Range{2, 3}, RightAnchor: 2}

	_, right := Render(rec, a, b, 3)

	assert.Equal(t, lines([]int{1}, Context, b), right)
}

func TestRenderZeroAndNegativeContext(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}
	rec := Record{Kind: Modify, Left: Range{2, 2}, Right: Range{2, 2}}

	for _, size := range []int{0, -4} {
		left, right := Render(rec, a, b, size)
		assert.Equal(t, lines([]int{2}, Removed, a), left)
		assert.Equal(t, lines([]int{2}, Added, b), right)
	}

	add := Record{Kind: Add, LeftAnchor: 1, Right: Range{2, 2}}
	left, _ := Render(add, a, b, 0)
	assert.Empty(t, left)
}

func TestRenderHugeContextClips(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}

	rec := Record{Kind: Modify, Left: Range{2, 2}, Right: Range{2, 2}}
	left, right := Render(rec, a, b, math.MaxInt)
	assert.Equal(t, []DisplayLine{
		{LineNumber: 1, Role: Context, Text: "a"},
		{LineNumber: 2, Role: Removed, Text: "b"},
		{LineNumber: 3, Role: Context, Text: "c"},
	}, left)
	assert.Equal(t, []DisplayLine{
		{LineNumber: 1, Role: Context, Text: "a"},
		{LineNumber: 2, Role: Added, Text: "x"},
		{LineNumber: 3, Role: Context, Text: "c"},
	}, right)

	add := Record{Kind: Add, LeftAnchor: 1, Right: Range{2, 2}}
	left, _ = Render(add, a, b, math.MaxInt)
	assert.Equal(t, lines([]int{1, 2, 3}, Context, a), left)

	del := Record{Kind: Delete, Left: Range{2, 2}, RightAnchor: 2}
	_, right = Render(del, a, b, math.MaxInt-1)
	assert.Equal(t, lines([]int{1, 2, 3}, Context, b), right)
}

func TestRenderOutOfRangeRecordClips(t *testing.T) {
	a := []string{"a"}
	b := []string{"a"}
	rec := Record{Kind: Modify, Left: Range{3, 5}, Right: Range{0, 1}}

	left, right := Render(rec, a, b, 2)

	assert.Equal(t, lines([]int{1}, Context, a), left)
	assert.Equal(t, lines([]int{1}, Added, b), right)
}
