// Package leaderboard ranks completed bingo boards.
package leaderboard

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/colonyops/bingo/internal/core/board"
)

// DefaultLimit is the number of entries kept per ranking.
const DefaultLimit = 10

// Fastest is one entry of the fastest-completion ranking.
type Fastest struct {
	Rank           int           `json:"rank"`
	User           string        `json:"username"`
	Title          string        `json:"template_title"`
	Duration       time.Duration `json:"-"`
	CompletionTime string        `json:"completion_time"`
	CompletedAt    time.Time     `json:"completed_at"`
}

// MostCompleted is one entry of the completion-count ranking.
type MostCompleted struct {
	Rank           int    `json:"rank"`
	User           string `json:"username"`
	CompletedCount int    `json:"completed_count"`
}

// Leaderboard holds both rankings.
type Leaderboard struct {
	FastestCompletions []Fastest       `json:"fastest_completions"`
	MostCompletions    []MostCompleted `json:"most_completions"`
}

// Build ranks boards. Only completed boards with a completion time count
// toward the fastest ranking; every completed board counts toward its user's
// total. Boards without a user are not ranked. limit <= 0 uses DefaultLimit.
func Build(boards []*board.Board, limit int) Leaderboard {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Leaderboard{
		FastestCompletions: fastest(boards, limit),
		MostCompletions:    mostCompleted(boards, limit),
	}
}

func fastest(boards []*board.Board, limit int) []Fastest {
	out := make([]Fastest, 0, len(boards))
	for _, b := range boards {
		d, ok := b.Duration()
		if !ok || b.User == "" {
			continue
		}
		out = append(out, Fastest{
			User:           b.User,
			Title:          titleOf(b),
			Duration:       d,
			CompletionTime: FormatDuration(d),
			CompletedAt:    *b.CompletedAt,
		})
	}

	slices.SortStableFunc(out, func(a, b Fastest) int {
		if a.Duration != b.Duration {
			if a.Duration < b.Duration {
				return -1
			}
			return 1
		}
		return a.CompletedAt.Compare(b.CompletedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func mostCompleted(boards []*board.Board, limit int) []MostCompleted {
	counts := make(map[string]int)
	for _, b := range boards {
		if b.IsCompleted && b.User != "" {
			counts[b.User]++
		}
	}

	out := make([]MostCompleted, 0, len(counts))
	for user, n := range counts {
		out = append(out, MostCompleted{User: user, CompletedCount: n})
	}

	slices.SortFunc(out, func(a, b MostCompleted) int {
		if a.CompletedCount != b.CompletedCount {
			return b.CompletedCount - a.CompletedCount
		}
		return strings.Compare(a.User, b.User)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func titleOf(b *board.Board) string {
	if b.TemplateTitle != "" {
		return b.TemplateTitle
	}
	return b.Title
}

// FormatDuration renders a completion time at the two most significant
// units: "2d 3h", "4h 12m" or "35m".
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
