package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// v1Color converts a palette color for huh, which still styles with
// lipgloss v1.
func v1Color(c color.Color) lipglossv1.TerminalColor {
	hex := colorHexPtr(c)
	if hex == nil {
		return lipglossv1.NoColor{}
	}
	return lipglossv1.Color(*hex)
}

// FormTheme returns a huh theme matching the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := v1Color(ColorPrimary)
	secondary := v1Color(ColorSecondary)
	fg := v1Color(ColorForeground)
	muted := v1Color(ColorMuted)
	errColor := v1Color(ColorError)
	success := v1Color(ColorSuccess)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(secondary)
	t.Focused.Option = t.Focused.Option.Foreground(fg)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(success)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(secondary)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipglossv1.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	return t
}
