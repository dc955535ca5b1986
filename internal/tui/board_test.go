package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/internal/core/config"
	"github.com/colonyops/bingo/pkg/tuitest"
)

func newTestModel(t *testing.T, target bingo.Target) (Model, string) {
	t.Helper()
	cfg := config.DefaultConfig()
	b := board.New("Noodle Crawl", target, []board.Restaurant{{ID: 1, Name: "Jinju", Address: "Jung-gu"}})
	path := filepath.Join(t.TempDir(), "board.json")

	m := New(context.Background(), b, path, &cfg)
	m.now = func() time.Time { return b.CreatedAt.Add(90 * time.Minute) }
	return m, path
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestModel_CursorMovement(t *testing.T) {
	m, _ := newTestModel(t, bingo.TargetOne)

	m, _ = send(t, m, tuitest.KeyUp(), tuitest.KeyLeft())
	assert.Equal(t, 0, m.Cursor(), "cursor stays on the board")

	m, _ = send(t, m, tuitest.KeyPress('j'), tuitest.KeyPress('l'), tuitest.KeyRight())
	assert.Equal(t, 7, m.Cursor())

	for range bingo.Size {
		m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyPress('l'))
	}
	assert.Equal(t, bingo.CellCount-1, m.Cursor())

	m, _ = send(t, m, tuitest.KeyPress('k'), tuitest.KeyPress('h'))
	assert.Equal(t, 18, m.Cursor())
}

func TestModel_ToggleAndComplete(t *testing.T) {
	m, _ := newTestModel(t, bingo.TargetOne)

	m, _ = send(t, m, tuitest.KeySpace())
	assert.True(t, m.Dirty())
	assert.True(t, bool(m.Board().CellAt(0).IsActivated))
	assert.Equal(t, 1, m.Evaluation().Progress.ActivatedCount)

	m, _ = send(t, m, tuitest.KeyEnter())
	assert.False(t, bool(m.Board().CellAt(0).IsActivated), "enter toggles back")

	for p := 0; p < bingo.Size; p++ {
		m, _ = send(t, m, tuitest.KeySpace(), tuitest.KeyPress('j'))
	}

	assert.Equal(t, []bingo.Line{{0, 5, 10, 15, 20}}, m.Evaluation().Lines)
	assert.True(t, m.Board().IsCompleted)
	d, ok := m.Board().Duration()
	require.True(t, ok)
	assert.Equal(t, 90*time.Minute, d)

	view := tuitest.StripANSI(m.Render())
	assert.Contains(t, view, "goal reached: 1 line")
	assert.Contains(t, view, "1-line bingo!")
	assert.Contains(t, view, "Noodle Crawl *")
}

func TestModel_SaveWritesBoard(t *testing.T) {
	m, path := newTestModel(t, bingo.TargetThree)

	m, _ = send(t, m, tuitest.KeyPress('l'), tuitest.KeySpace())
	m, cmd := send(t, m, tuitest.KeyPress('w'))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.False(t, m.Dirty())
	assert.Contains(t, tuitest.StripANSI(m.Render()), "saved "+path)

	loaded, err := board.Load(path)
	require.NoError(t, err)
	assert.True(t, bool(loaded.CellAt(1).IsActivated))
	assert.Equal(t, m.Board().ID, loaded.ID)
}

func TestModel_ToggleDuringSaveStaysDirty(t *testing.T) {
	m, path := newTestModel(t, bingo.TargetOne)

	m, _ = send(t, m, tuitest.KeySpace())
	m, cmd := send(t, m, tuitest.KeyPress('w'))
	require.NotNil(t, cmd)

	m, _ = send(t, m, tuitest.KeyPress('l'), tuitest.KeySpace())
	m, _ = send(t, m, cmd())
	assert.True(t, m.Dirty(), "toggle after the save started is not on disk")

	loaded, err := board.Load(path)
	require.NoError(t, err)
	assert.True(t, bool(loaded.CellAt(0).IsActivated))
	assert.False(t, bool(loaded.CellAt(1).IsActivated), "save writes the board as it was when requested")

	m, cmd = send(t, m, tuitest.KeyPress('w'))
	m, _ = send(t, m, cmd())
	assert.False(t, m.Dirty())
}

func TestModel_ReviewedCellIsNotToggled(t *testing.T) {
	cfg := config.DefaultConfig()
	b := board.New("Ramen", bingo.TargetOne, []board.Restaurant{{ID: 1, Name: "Ichiran"}})
	b.Reviews = []board.Review{{RestaurantID: 1, Rating: 5, Content: "worth the queue"}}
	m := New(context.Background(), b, filepath.Join(t.TempDir(), "b.json"), &cfg)

	m, _ = send(t, m, tuitest.KeySpace())
	assert.False(t, m.Dirty())
	assert.False(t, bool(m.Board().CellAt(0).IsActivated))

	view := tuitest.StripANSI(m.Render())
	assert.Contains(t, view, "activated by review")
	assert.Contains(t, view, "[0] Ichiran (reviewed)")
}

func TestModel_SaveError(t *testing.T) {
	m, _ := newTestModel(t, bingo.TargetOne)

	m, _ = send(t, m, savedMsg{err: errors.New("disk full")})
	assert.Contains(t, tuitest.StripANSI(m.Render()), "error: disk full")
}

func TestModel_QuitConfirmsUnsavedChanges(t *testing.T) {
	m, _ := newTestModel(t, bingo.TargetOne)

	_, cmd := send(t, m, tuitest.KeyPress('q'))
	require.NotNil(t, cmd, "clean board quits immediately")
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = send(t, m, tuitest.KeySpace())
	m, cmd = send(t, m, tuitest.KeyPress('q'))
	assert.Nil(t, cmd)
	assert.Contains(t, tuitest.StripANSI(m.Render()), "unsaved changes")

	_, cmd = send(t, m, tuitest.KeyCtrl('c'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CustomKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings[config.ActionToggle] = []string{"x"}
	b := board.New("x", bingo.TargetOne, nil)

	m := New(context.Background(), b, filepath.Join(t.TempDir(), "b.yaml"), &cfg)

	m, _ = send(t, m, tuitest.KeySpace())
	assert.False(t, m.Dirty(), "space no longer bound")

	m, _ = send(t, m, tuitest.KeyPress('x'))
	assert.True(t, m.Dirty())
}

func TestModel_ViewDetail(t *testing.T) {
	m, _ := newTestModel(t, bingo.TargetOne)

	view := tuitest.StripANSI(m.Render())
	assert.Contains(t, view, "[0] Jinju · Jung-gu (not visited)")
	assert.Contains(t, view, ">○ Jinju")

	m, _ = send(t, m, tuitest.KeySpace())
	assert.Contains(t, tuitest.StripANSI(m.Render()), "[0] Jinju · Jung-gu (visited)")
}
