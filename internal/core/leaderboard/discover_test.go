package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/board"
)

func TestDiscoverAndLoadAll(t *testing.T) {
	dir := t.TempDir()

	b1 := board.New("one", bingo.TargetOne, nil)
	b1.User = "mina"
	done := b1.CreatedAt.Add(2 * time.Hour)
	b1.IsCompleted, b1.CompletedAt = true, &done
	require.NoError(t, board.Save(filepath.Join(dir, "a.json"), b1))

	b2 := board.New("two", bingo.TargetThree, nil)
	b2.User = "joon"
	require.NoError(t, board.Save(filepath.Join(dir, "nested", "deep", "b.yaml"), b2))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	pattern := filepath.Join(dir, DefaultPattern)
	files, err := Discover([]string{pattern, pattern})
	require.NoError(t, err)
	assert.Len(t, files, 3, "duplicates removed and txt ignored")

	boards := LoadAll(zerolog.Nop(), files)
	require.Len(t, boards, 2)

	lb := Build(boards, 0)
	require.Len(t, lb.FastestCompletions, 1)
	assert.Equal(t, "mina", lb.FastestCompletions[0].User)
	assert.Equal(t, "2h 0m", lb.FastestCompletions[0].CompletionTime)
}

func TestDiscover_InvalidPattern(t *testing.T) {
	_, err := Discover([]string{"boards/[.json"})
	require.Error(t, err)
}
