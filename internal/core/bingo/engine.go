package bingo

import "sort"

// Cell is the part of a board cell the engine reads. Descriptive fields such
// as the restaurant or review live on the caller's own types.
type Cell struct {
	Position    int  `json:"position" yaml:"position"`
	IsActivated bool `json:"is_activated" yaml:"is_activated"`
}

// PositionSet is an unordered set of board positions.
type PositionSet map[int]struct{}

// Has reports whether p is in the set.
func (s PositionSet) Has(p int) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int {
	return len(s)
}

// Sorted returns the positions in ascending order.
func (s PositionSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// ActivatedPositions collects the on-board positions of every activated cell.
// Duplicate positions are OR-combined: one activated instance is enough.
func ActivatedPositions(cells []Cell) PositionSet {
	set := make(PositionSet, len(cells))
	for _, c := range cells {
		if c.IsActivated && InRange(c.Position) {
			set[c.Position] = struct{}{}
		}
	}
	return set
}

// CompletedLines returns every winning line whose five positions are all
// activated, in canonical order. Cells may be missing, unordered or
// duplicated; absent positions count as not activated and out-of-range
// positions are ignored. The result is never nil.
func CompletedLines(cells []Cell) []Line {
	return completed(ActivatedPositions(cells))
}

func completed(activated PositionSet) []Line {
	out := make([]Line, 0, LineCount)
	for _, line := range lines {
		if lineComplete(line, activated) {
			out = append(out, line)
		}
	}
	return out
}

func lineComplete(line Line, activated PositionSet) bool {
	for _, p := range line {
		if !activated.Has(p) {
			return false
		}
	}
	return true
}

// HighlightedPositions is the union of every position in the given lines.
// It accepts any five-position sequences, not only canonical lines.
func HighlightedPositions(completed []Line) PositionSet {
	set := make(PositionSet, len(completed)*Size)
	for _, line := range completed {
		for _, p := range line {
			set[p] = struct{}{}
		}
	}
	return set
}

// CountCompletedLines returns len(CompletedLines(cells)) without building
// the slice.
func CountCompletedLines(cells []Cell) int {
	activated := ActivatedPositions(cells)
	n := 0
	for _, line := range lines {
		if lineComplete(line, activated) {
			n++
		}
	}
	return n
}
