// Package board holds bingo board snapshots: the cells, the restaurants
// behind them and the reviews written so far. Snapshots are read from and
// written to JSON or YAML files and evaluated with package bingo.
package board

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/bingo/internal/core/bingo"
)

// Board is a user's snapshot of one bingo board.
type Board struct {
	ID              string       `json:"id" yaml:"id"`
	Title           string       `json:"title" yaml:"title"`
	TemplateTitle   string       `json:"template_title,omitempty" yaml:"template_title,omitempty"`
	User            string       `json:"user,omitempty" yaml:"user,omitempty"`
	TargetLineCount bingo.Target `json:"target_line_count" yaml:"target_line_count"`
	IsCompleted     bool         `json:"is_completed" yaml:"is_completed"`
	CreatedAt       time.Time    `json:"created_at" yaml:"created_at"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Cells           []Cell       `json:"cells" yaml:"cells"`
	Reviews         []Review     `json:"reviews,omitempty" yaml:"reviews,omitempty"`
}

// Cell is one square of a board. Position is nil when the source omitted it
// or gave something other than an integer; such cells are kept for display
// but never take part in line detection.
type Cell struct {
	Position    *int        `json:"position,omitempty" yaml:"position,omitempty"`
	IsActivated Flag        `json:"is_activated" yaml:"is_activated"`
	Restaurant  *Restaurant `json:"restaurant,omitempty" yaml:"restaurant,omitempty"`
}

// Restaurant is the place a cell asks the user to visit.
type Restaurant struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Address  string `json:"address,omitempty" yaml:"address,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Review is a user's review of a restaurant on this board.
type Review struct {
	RestaurantID int64  `json:"restaurant_id" yaml:"restaurant_id"`
	Rating       int    `json:"rating" yaml:"rating"`
	Content      string `json:"content" yaml:"content"`
	VisitedDate  string `json:"visited_date,omitempty" yaml:"visited_date,omitempty"`
	IsPublic     bool   `json:"is_public" yaml:"is_public"`
}

// Flag is a lenient boolean. Anything other than a literal true decodes to
// false instead of failing the whole snapshot.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		*f = false
		return nil
	}
	*f = Flag(b)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err != nil {
		*f = false
		return nil
	}
	*f = Flag(b)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A position that is not an
// integer leaves Position nil instead of failing the snapshot.
func (c *Cell) UnmarshalJSON(data []byte) error {
	type plain Cell
	var fields struct {
		plain
		Position json.RawMessage `json:"position"`
	}

	*c = Cell{}
	if err := json.Unmarshal(data, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil
		}
	}

	*c = Cell(fields.plain)
	c.Position = nil
	if raw := bytes.TrimSpace(fields.Position); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		var n int
		if err := json.Unmarshal(raw, &n); err == nil {
			c.Position = &n
		}
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same position rules as
// UnmarshalJSON.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	*c = Cell{}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	var pos *int
	rest := *node
	rest.Content = make([]*yaml.Node, 0, len(node.Content))
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Value != "position" {
			rest.Content = append(rest.Content, k, v)
			continue
		}
		if v.Kind == yaml.ScalarNode && v.ShortTag() == "!!int" {
			var n int
			if err := v.Decode(&n); err == nil {
				pos = &n
			}
		}
	}

	type plain Cell
	var fields plain
	if err := rest.Decode(&fields); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return nil
		}
	}

	*c = Cell(fields)
	c.Position = pos
	return nil
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	out := *b
	if b.CompletedAt != nil {
		t := *b.CompletedAt
		out.CompletedAt = &t
	}
	out.Reviews = append([]Review(nil), b.Reviews...)
	out.Cells = make([]Cell, len(b.Cells))
	for i, c := range b.Cells {
		if c.Position != nil {
			p := *c.Position
			c.Position = &p
		}
		if c.Restaurant != nil {
			r := *c.Restaurant
			c.Restaurant = &r
		}
		out.Cells[i] = c
	}
	return &out
}

// ReviewActivated reports whether the cell at p counts as visited because its
// restaurant has a review, regardless of its own flag.
func (b *Board) ReviewActivated(p int) bool {
	c := b.CellAt(p)
	if c == nil || c.Restaurant == nil {
		return false
	}
	_, ok := b.reviewedRestaurants()[c.Restaurant.ID]
	return ok
}

// New creates an empty board with a fresh ID. Restaurants are placed at their
// index; a board always has 25 cells even when fewer restaurants are given.
func New(title string, target bingo.Target, restaurants []Restaurant) *Board {
	b := &Board{
		ID:              uuid.NewString(),
		Title:           title,
		TargetLineCount: target,
		CreatedAt:       time.Now().UTC(),
		Cells:           make([]Cell, bingo.CellCount),
	}
	for i := range b.Cells {
		pos := i
		b.Cells[i].Position = &pos
		if i < len(restaurants) {
			r := restaurants[i]
			b.Cells[i].Restaurant = &r
		}
	}
	return b
}

// reviewedRestaurants returns the set of restaurant IDs with a review.
func (b *Board) reviewedRestaurants() map[int64]struct{} {
	set := make(map[int64]struct{}, len(b.Reviews))
	for _, r := range b.Reviews {
		set[r.RestaurantID] = struct{}{}
	}
	return set
}

// EngineCells converts the snapshot to engine cells. A cell counts as
// activated when it is flagged or when its restaurant has a review. Cells
// without a position are dropped.
func (b *Board) EngineCells() []bingo.Cell {
	items := make([]bingo.TemplateItem, 0, len(b.Cells))
	flagged := make([]bingo.Cell, 0, len(b.Cells))

	for _, c := range b.Cells {
		if c.Position == nil {
			continue
		}
		flagged = append(flagged, bingo.Cell{Position: *c.Position, IsActivated: bool(c.IsActivated)})
		if c.Restaurant != nil {
			items = append(items, bingo.TemplateItem{Position: *c.Position, RestaurantID: c.Restaurant.ID})
		}
	}

	if len(b.Reviews) == 0 {
		return flagged
	}
	// Duplicate positions are OR-combined by the engine.
	return append(flagged, bingo.ActivateFromReviews(items, b.reviewedRestaurants())...)
}

// CellAt returns the cell at position p, or nil.
func (b *Board) CellAt(p int) *Cell {
	for i := range b.Cells {
		if pos := b.Cells[i].Position; pos != nil && *pos == p {
			return &b.Cells[i]
		}
	}
	return nil
}

// Toggle flips the activation flag of the cell at p, creating the cell if the
// snapshot does not have one. It reports the new state.
func (b *Board) Toggle(p int) bool {
	c := b.CellAt(p)
	if c == nil {
		pos := p
		b.Cells = append(b.Cells, Cell{Position: &pos})
		c = &b.Cells[len(b.Cells)-1]
	}
	c.IsActivated = !c.IsActivated
	return bool(c.IsActivated)
}

// Target returns the board's line target, falling back to one line when the
// snapshot left it unset.
func (b *Board) Target() bingo.Target {
	if b.TargetLineCount <= 0 {
		return bingo.TargetOne
	}
	return b.TargetLineCount
}

// Evaluation is everything derived from a board at one point in time.
type Evaluation struct {
	Lines      []bingo.Line      `json:"completed_lines"`
	Highlight  bingo.PositionSet `json:"-"`
	Count      int               `json:"completed_line_count"`
	Progress   bingo.Progress    `json:"progress"`
	Assessment bingo.Assessment  `json:"assessment"`
	Banner     string            `json:"banner,omitempty"`
}

// Evaluate runs line detection and goal assessment on the snapshot.
func (b *Board) Evaluate() Evaluation {
	cells := b.EngineCells()
	lines := bingo.CompletedLines(cells)
	return Evaluation{
		Lines:      lines,
		Highlight:  bingo.HighlightedPositions(lines),
		Count:      len(lines),
		Progress:   bingo.ProgressOf(cells),
		Assessment: bingo.Assess(cells, b.Target(), b.IsCompleted),
		Banner:     bingo.Banner(len(lines)),
	}
}

// MarkCompleted records completion when ev achieved the goal. It returns true
// if the board transitioned to completed.
func (b *Board) MarkCompleted(ev Evaluation, now time.Time) bool {
	if b.IsCompleted || !ev.Assessment.GoalAchieved {
		return false
	}
	b.IsCompleted = true
	t := now.UTC()
	b.CompletedAt = &t
	return true
}

// Duration is the time from creation to completion, false if the board is
// not completed.
func (b *Board) Duration() (time.Duration, bool) {
	if !b.IsCompleted || b.CompletedAt == nil {
		return 0, false
	}
	return b.CompletedAt.Sub(b.CreatedAt), true
}
