// Package render draws bingo boards for the terminal and as markdown.
package render

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/internal/core/config"
	"github.com/colonyops/bingo/internal/core/styles"
)

const (
	// DefaultCellWidth is the label width of one grid cell.
	DefaultCellWidth = 12
	// NoCursor disables the cursor marker.
	NoCursor = -1

	lineSymbol   = "★"
	cursorMarker = ">"
	ellipsis     = "…"
)

// Options controls how a grid is drawn.
type Options struct {
	Symbols   config.Symbols
	CellWidth int
	// Cursor is the position drawn with the cursor marker, NoCursor for none.
	Cursor int
	// Plain strips all styling so the output is safe for pipes and files.
	Plain bool
}

// DefaultOptions returns options using the default symbols and no cursor.
func DefaultOptions() Options {
	return Options{
		Symbols:   config.DefaultConfig().Symbols,
		CellWidth: DefaultCellWidth,
		Cursor:    NoCursor,
	}
}

type cellState int

const (
	statePending cellState = iota
	stateActivated
	stateLine
)

// Grid draws the 5x5 board with the completed-line banner and progress
// underneath. Cells in a completed line take the line style, other
// activated cells the activated style.
func Grid(b *board.Board, ev board.Evaluation, opts Options) string {
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.Symbols.Activated == "" || opts.Symbols.Pending == "" {
		opts.Symbols = config.DefaultConfig().Symbols
	}

	activated := bingo.ActivatedPositions(b.EngineCells())

	rows := make([]string, 0, bingo.Size)
	for r := 0; r < bingo.Size; r++ {
		cells := make([]string, 0, bingo.Size)
		for c := 0; c < bingo.Size; c++ {
			p := r*bingo.Size + c

			state := statePending
			switch {
			case ev.Highlight.Has(p):
				state = stateLine
			case activated.Has(p):
				state = stateActivated
			}

			cells = append(cells, renderCell(b, p, state, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := styles.GridStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	out := lipgloss.JoinVertical(lipgloss.Left, grid, Status(b, ev))

	if opts.Plain {
		return ansi.Strip(out)
	}
	return out
}

func renderCell(b *board.Board, p int, state cellState, opts Options) string {
	var symbol string
	var style lipgloss.Style
	switch state {
	case stateLine:
		symbol, style = lineSymbol, styles.CellLineStyle
	case stateActivated:
		symbol, style = opts.Symbols.Activated, styles.CellActivatedStyle
	default:
		symbol, style = opts.Symbols.Pending, styles.CellPendingStyle
	}

	marker := " "
	if p == opts.Cursor {
		marker = cursorMarker
		style = style.Inherit(styles.CellCursorStyle)
	}

	text := marker + symbol + " " + fit(Label(b, p), opts.CellWidth) + " "
	return style.Render(text)
}

// Label is the text shown for position p: the restaurant name, or the
// position number when the cell has no restaurant.
func Label(b *board.Board, p int) string {
	if c := b.CellAt(p); c != nil && c.Restaurant != nil && c.Restaurant.Name != "" {
		return c.Restaurant.Name
	}
	return fmt.Sprintf("#%02d", p)
}

// fit truncates s to width cells and pads it on the right.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, ellipsis)
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Status is the line under the grid: banner, progress and goal state.
func Status(b *board.Board, ev board.Evaluation) string {
	parts := make([]string, 0, 3)
	if ev.Banner != "" {
		parts = append(parts, styles.BannerStyle.Render(ev.Banner))
	}

	parts = append(parts, styles.MutedStyle.Render(fmt.Sprintf(
		"%d/%d cells (%.1f%%)",
		ev.Progress.ActivatedCount, ev.Progress.TotalCells, ev.Progress.Percentage,
	)))

	goal := fmt.Sprintf("goal: %s", b.Target())
	switch {
	case b.IsCompleted || ev.Assessment.GoalAchieved:
		parts = append(parts, styles.GoalStyle.Render(goal+" ✓"))
	default:
		parts = append(parts, styles.MutedStyle.Render(goal))
	}

	return strings.Join(parts, styles.DividerStyle.Render(" · "))
}
