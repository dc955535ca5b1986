package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/internal/core/styles"
)

// Markdown builds a report of the board: progress, completed lines, the
// cells and any reviews.
func Markdown(b *board.Board, ev board.Evaluation) string {
	var sb strings.Builder

	title := b.Title
	if title == "" {
		title = "Untitled board"
	}
	fmt.Fprintf(&sb, "# %s\n\n", escape(title))

	if ev.Banner != "" {
		fmt.Fprintf(&sb, "**%s**\n\n", ev.Banner)
	}

	fmt.Fprintf(&sb, "- Progress: %d/%d cells (%.1f%%)\n",
		ev.Progress.ActivatedCount, ev.Progress.TotalCells, ev.Progress.Percentage)
	fmt.Fprintf(&sb, "- Goal: %s", b.Target())
	if b.IsCompleted || ev.Assessment.GoalAchieved {
		sb.WriteString(" (achieved)")
	}
	sb.WriteString("\n")
	if b.User != "" {
		fmt.Fprintf(&sb, "- Player: %s\n", escape(b.User))
	}
	sb.WriteString("\n")

	sb.WriteString("## Completed lines\n\n")
	if len(ev.Lines) == 0 {
		sb.WriteString("_None yet._\n\n")
	} else {
		sb.WriteString("| Line | Positions |\n| --- | --- |\n")
		for _, l := range ev.Lines {
			fmt.Fprintf(&sb, "| %s | %s |\n", l.Name(), joinInts(l[:]))
		}
		sb.WriteString("\n")
	}

	activated := bingo.ActivatedPositions(b.EngineCells())
	sb.WriteString("## Board\n\n| Position | Restaurant | State |\n| --- | --- | --- |\n")
	for p := 0; p < bingo.CellCount; p++ {
		state := "pending"
		switch {
		case ev.Highlight.Has(p):
			state = "**in line**"
		case activated.Has(p):
			state = "visited"
		}
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", p, escape(Label(b, p)), state)
	}

	if len(b.Reviews) > 0 {
		sb.WriteString("\n## Reviews\n\n")
		names := restaurantNames(b)
		for _, r := range b.Reviews {
			name := names[r.RestaurantID]
			if name == "" {
				name = fmt.Sprintf("restaurant %d", r.RestaurantID)
			}
			fmt.Fprintf(&sb, "### %s (%s)\n\n", escape(name), strings.Repeat("★", max(r.Rating, 0)))
			if r.VisitedDate != "" {
				fmt.Fprintf(&sb, "_Visited %s_\n\n", r.VisitedDate)
			}
			fmt.Fprintf(&sb, "> %s\n\n", strings.ReplaceAll(strings.TrimSpace(r.Content), "\n", "\n> "))
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// RenderMarkdown renders md for the terminal using the active theme.
func RenderMarkdown(md string, width int) (string, error) {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func restaurantNames(b *board.Board) map[int64]string {
	names := make(map[int64]string, len(b.Cells))
	for _, c := range b.Cells {
		if c.Restaurant != nil {
			names[c.Restaurant.ID] = c.Restaurant.Name
		}
	}
	return names
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

var mdEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")

func escape(s string) string {
	return mdEscaper.Replace(s)
}
