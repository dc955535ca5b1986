// Package tui is the interactive board player.
package tui

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/internal/core/config"
	"github.com/colonyops/bingo/internal/core/logging"
	"github.com/colonyops/bingo/internal/core/styles"
	"github.com/colonyops/bingo/internal/render"
)

// savedMsg reports the result of writing revision rev of the board to disk.
type savedMsg struct {
	rev int
	err error
}

// Model plays one board: move the cursor, mark cells visited and write the
// board back to its file.
type Model struct {
	board  *board.Board
	path   string
	eval   board.Evaluation
	cursor int

	keys    keyMap
	help    help.Model
	symbols config.Symbols

	rev         int
	dirty       bool
	confirmQuit bool
	status      string
	err         error

	now    func() time.Time
	logger zerolog.Logger
}

// New creates a model for b, saving to path.
func New(ctx context.Context, b *board.Board, path string, cfg *config.Config) Model {
	ctx = logging.WithBoardID(ctx, b.ID)

	return Model{
		board:   b,
		path:    path,
		eval:    b.Evaluate(),
		keys:    newKeyMap(cfg),
		help:    help.New(),
		symbols: cfg.Symbols,
		now:     time.Now,
		logger:  logging.ComponentCtx(ctx, "tui"),
	}
}

// Board returns the board being played.
func (m Model) Board() *board.Board { return m.board }

// Dirty reports whether the board has unsaved changes.
func (m Model) Dirty() bool { return m.dirty }

// Cursor is the focused position.
func (m Model) Cursor() int { return m.cursor }

// Evaluation is the result of the last evaluation.
func (m Model) Evaluation() board.Evaluation { return m.eval }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			m.logger.Error().Err(msg.err).Str("path", m.path).Msg("save failed")
			return m, nil
		}
		// Changes made while the save was in flight are still unsaved.
		if msg.rev == m.rev {
			m.dirty = false
		}
		m.err = nil
		m.status = "saved " + m.path
		m.logger.Info().Str("path", m.path).Int("rev", msg.rev).Msg("board saved")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}

	row, col := bingo.RowCol(m.cursor)

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.status = "unsaved changes, press quit again to discard"
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if row > 0 {
			m.cursor -= bingo.Size
		}
	case key.Matches(msg, m.keys.Down):
		if row < bingo.Size-1 {
			m.cursor += bingo.Size
		}
	case key.Matches(msg, m.keys.Left):
		if col > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if col < bingo.Size-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Save):
		m.status = "saving..."
		return m, m.save()
	}

	return m, nil
}

func (m *Model) toggle() {
	if m.board.ReviewActivated(m.cursor) {
		m.status = "activated by review"
		return
	}

	on := m.board.Toggle(m.cursor)
	m.rev++
	m.dirty = true
	before := m.eval.Count
	m.eval = m.board.Evaluate()

	m.logger.Debug().
		Int("position", m.cursor).
		Bool("activated", on).
		Int("lines", m.eval.Count).
		Msg("cell toggled")

	switch {
	case m.board.MarkCompleted(m.eval, m.now()):
		m.status = fmt.Sprintf("goal reached: %s", m.board.Target())
		m.logger.Info().Int("lines", m.eval.Count).Msg("board completed")
	case m.eval.Count > before:
		m.status = m.eval.Banner
	default:
		m.status = ""
	}
}

// save writes a copy of the board taken now, so later toggles cannot race
// the write.
func (m Model) save() tea.Cmd {
	snapshot, path, rev := m.board.Clone(), m.path, m.rev
	return func() tea.Msg {
		return savedMsg{rev: rev, err: board.Save(path, snapshot)}
	}
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render draws the screen as a string.
func (m Model) Render() string {
	title := m.board.Title
	if title == "" {
		title = "bingo"
	}
	if m.dirty {
		title += " *"
	}

	opts := render.DefaultOptions()
	opts.Symbols = m.symbols
	opts.Cursor = m.cursor

	parts := []string{
		styles.HeaderStyle.Render(title),
		render.Grid(m.board, m.eval, opts),
		m.detail(),
	}

	switch {
	case m.err != nil:
		parts = append(parts, styles.ErrorStyle.Render("error: "+m.err.Error()))
	case m.status != "":
		parts = append(parts, styles.SuccessStyle.Render(m.status))
	}

	parts = append(parts, styles.HelpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// detail describes the focused cell.
func (m Model) detail() string {
	label := render.Label(m.board, m.cursor)
	state := "not visited"
	if c := m.board.CellAt(m.cursor); c != nil {
		if c.Restaurant != nil && c.Restaurant.Address != "" {
			label += " · " + c.Restaurant.Address
		}
	}
	switch {
	case m.eval.Highlight.Has(m.cursor):
		state = "in a completed line"
	case m.board.ReviewActivated(m.cursor):
		state = "reviewed"
	case bingo.ActivatedPositions(m.board.EngineCells()).Has(m.cursor):
		state = "visited"
	}
	return styles.MutedStyle.Render(fmt.Sprintf("[%d] %s (%s)", m.cursor, label, state))
}
