// Package bingo detects completed lines on a 5x5 bingo board.
//
// Positions are row-major (position = row*5 + col). The twelve winning lines
// are fixed: five rows, five columns and the two diagonals. Every function in
// this package is pure and safe for concurrent use.
package bingo

import "fmt"

const (
	// Size is the width and height of a board.
	Size = 5
	// CellCount is the number of cells on a board.
	CellCount = Size * Size
	// LineCount is the number of winning lines.
	LineCount = 2*Size + 2
)

// Line is one win condition: five positions in definition order.
type Line [Size]int

// Kind classifies a line.
type Kind string

const (
	KindHorizontal Kind = "horizontal"
	KindVertical   Kind = "vertical"
	KindDiagonal   Kind = "diagonal"
)

// lines is the canonical enumeration. Order matters: rows top to bottom,
// columns left to right, main diagonal, anti-diagonal.
var lines = [LineCount]Line{
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},

	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},

	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// Lines returns the twelve winning lines in canonical order. The returned
// array is a copy.
func Lines() [LineCount]Line {
	return lines
}

// Index returns the line's position in the canonical enumeration, or -1 if
// l is not one of the twelve winning lines.
func (l Line) Index() int {
	for i, candidate := range lines {
		if candidate == l {
			return i
		}
	}
	return -1
}

// Kind reports whether l is a row, column or diagonal. Lines outside the
// canonical table report an empty Kind.
func (l Line) Kind() Kind {
	switch i := l.Index(); {
	case i < 0:
		return ""
	case i < Size:
		return KindHorizontal
	case i < 2*Size:
		return KindVertical
	default:
		return KindDiagonal
	}
}

// Name is a short human label such as "row 1" or "anti-diagonal".
func (l Line) Name() string {
	i := l.Index()
	switch {
	case i < 0:
		return "unknown"
	case i < Size:
		return fmt.Sprintf("row %d", i+1)
	case i < 2*Size:
		return fmt.Sprintf("column %d", i-Size+1)
	case i == 2*Size:
		return "diagonal"
	default:
		return "anti-diagonal"
	}
}

// Contains reports whether position p is part of the line.
func (l Line) Contains(p int) bool {
	for _, pos := range l {
		if pos == p {
			return true
		}
	}
	return false
}

// RowCol splits a position into its zero-based row and column.
func RowCol(position int) (row, col int) {
	return position / Size, position % Size
}

// InRange reports whether position addresses a cell on the board.
func InRange(position int) bool {
	return position >= 0 && position < CellCount
}
