package bingo

import (
	"fmt"
	"math"
)

// Progress summarises how much of a board is activated.
type Progress struct {
	ActivatedCount int     `json:"activated_count"`
	TotalCells     int     `json:"total_cells"`
	Percentage     float64 `json:"percentage"`
}

// ProgressOf counts distinct activated on-board positions. Percentage is
// rounded to one decimal place.
func ProgressOf(cells []Cell) Progress {
	n := ActivatedPositions(cells).Len()
	pct := float64(n) / CellCount * 100
	return Progress{
		ActivatedCount: n,
		TotalCells:     CellCount,
		Percentage:     math.Round(pct*10) / 10,
	}
}

// Target is the number of completed lines a board needs to be finished.
type Target int

const (
	TargetOne   Target = 1
	TargetThree Target = 3
	TargetFull  Target = 5
)

// Targets lists the supported targets in ascending order.
func Targets() []Target {
	return []Target{TargetOne, TargetThree, TargetFull}
}

// Valid reports whether t is a supported target.
func (t Target) Valid() bool {
	switch t {
	case TargetOne, TargetThree, TargetFull:
		return true
	default:
		return false
	}
}

func (t Target) String() string {
	switch t {
	case TargetOne:
		return "1 line"
	case TargetFull:
		return "5 lines (full)"
	default:
		return fmt.Sprintf("%d lines", int(t))
	}
}

// Assessment is the outcome of re-checking a board after an activation.
type Assessment struct {
	CompletedLines int  `json:"completed_lines"`
	LinesCompleted bool `json:"bingo_completed"`
	GoalAchieved   bool `json:"goal_achieved"`
}

// Assess evaluates cells against target. A board that is already complete
// stays complete and reports no new achievements. Otherwise reaching target
// achieves the goal, and any completed line below target only flags
// LinesCompleted.
func Assess(cells []Cell, target Target, alreadyCompleted bool) Assessment {
	a := Assessment{CompletedLines: CountCompletedLines(cells)}
	if alreadyCompleted {
		return a
	}

	switch {
	case a.CompletedLines >= int(target):
		a.LinesCompleted = true
		a.GoalAchieved = true
	case a.CompletedLines > 0:
		a.LinesCompleted = true
	}
	return a
}

// Banner is the message shown under a board with n completed lines, or the
// empty string when there are none.
func Banner(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d-line bingo!", n)
}

// TemplateItem places a restaurant at a board position.
type TemplateItem struct {
	Position     int   `json:"position" yaml:"position"`
	RestaurantID int64 `json:"restaurant_id" yaml:"restaurant_id"`
}

// ActivateFromReviews derives cells from a template: a position is activated
// when its restaurant has been reviewed on the board.
func ActivateFromReviews(items []TemplateItem, reviewed map[int64]struct{}) []Cell {
	cells := make([]Cell, 0, len(items))
	for _, item := range items {
		_, ok := reviewed[item.RestaurantID]
		cells = append(cells, Cell{Position: item.Position, IsActivated: ok})
	}
	return cells
}
