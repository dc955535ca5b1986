package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressOf(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  Progress
	}{
		{"empty", nil, Progress{0, 25, 0}},
		{"one cell", board(7), Progress{1, 25, 4}},
		{"row", board(0, 1, 2, 3, 4), Progress{5, 25, 20}},
		{"duplicates counted once", []Cell{{1, true}, {1, true}, {2, true}}, Progress{2, 25, 8}},
		{"off board ignored", []Cell{{30, true}, {0, true}}, Progress{1, 25, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressOf(tt.cells))
		})
	}
}

func TestProgressOf_Rounding(t *testing.T) {
	cells := make([]Cell, 0, 3)
	for i := 0; i < 3; i++ {
		cells = append(cells, Cell{Position: i, IsActivated: true})
	}
	// 3/25 = 12%
	assert.InDelta(t, 12.0, ProgressOf(cells).Percentage, 0.0001)
}

func TestTarget(t *testing.T) {
	for _, target := range Targets() {
		assert.True(t, target.Valid(), target.String())
	}
	assert.False(t, Target(0).Valid())
	assert.False(t, Target(2).Valid())
	assert.Equal(t, "1 line", TargetOne.String())
	assert.Equal(t, "3 lines", TargetThree.String())
	assert.Equal(t, "5 lines (full)", TargetFull.String())
}

func TestAssess(t *testing.T) {
	rowAndColumn := board(0, 1, 2, 3, 4, 5, 10, 15, 20)

	tests := []struct {
		name      string
		cells     []Cell
		target    Target
		completed bool
		want      Assessment
	}{
		{
			name:   "no lines",
			cells:  board(0, 1),
			target: TargetOne,
			want:   Assessment{},
		},
		{
			name:   "one line reaches one line target",
			cells:  board(0, 1, 2, 3, 4),
			target: TargetOne,
			want:   Assessment{CompletedLines: 1, LinesCompleted: true, GoalAchieved: true},
		},
		{
			name:   "two lines below three line target",
			cells:  rowAndColumn,
			target: TargetThree,
			want:   Assessment{CompletedLines: 2, LinesCompleted: true},
		},
		{
			name:      "already completed board reports nothing new",
			cells:     rowAndColumn,
			target:    TargetOne,
			completed: true,
			want:      Assessment{CompletedLines: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assess(tt.cells, tt.target, tt.completed))
		})
	}
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "", Banner(0))
	assert.Equal(t, "1-line bingo!", Banner(1))
	assert.Equal(t, "12-line bingo!", Banner(12))
}

func TestActivateFromReviews(t *testing.T) {
	items := []TemplateItem{
		{Position: 0, RestaurantID: 10},
		{Position: 1, RestaurantID: 11},
		{Position: 2, RestaurantID: 12},
	}
	reviewed := map[int64]struct{}{10: {}, 12: {}, 99: {}}

	got := ActivateFromReviews(items, reviewed)
	assert.Equal(t, []Cell{{0, true}, {1, false}, {2, true}}, got)
}
