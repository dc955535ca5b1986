package styles

import (
	"testing"

	lipglossv1 "github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	names := ThemeNames()
	require.Contains(t, names, DefaultTheme)

	for _, name := range names {
		p, ok := GetPalette(name)
		require.True(t, ok, name)
		assert.NotNil(t, p.Primary, name)
		assert.NotNil(t, p.Success, name)
	}

	_, ok := GetPalette("neon")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	gruvbox, ok := GetPalette("gruvbox")
	require.True(t, ok)
	SetTheme(gruvbox)

	assert.Equal(t, gruvbox.Success, ColorSuccess)
	assert.Equal(t, gruvbox, CurrentPalette)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, *colorHexPtr(ColorPrimary), *cfg.H1.Color)
	assert.Nil(t, colorHexPtr(nil))
}

func TestFormTheme(t *testing.T) {
	theme := FormTheme()
	require.NotNil(t, theme)

	want := lipglossv1.Color(*colorHexPtr(ColorPrimary))
	assert.Equal(t, want, theme.Focused.Title.GetForeground())
	assert.Equal(t, lipglossv1.NoColor{}, v1Color(nil))
}
