package board

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/validate"
)

// Lint checks a snapshot for problems the evaluator tolerates silently:
// off-board or duplicate positions, unknown review targets and malformed
// reviews. It returns criterio.FieldErrors, or nil for a clean board.
func (b *Board) Lint() error {
	return criterio.ValidateStruct(
		criterio.Run("target_line_count", b.TargetLineCount, validTarget),
		b.lintCells(),
		b.lintReviews(),
	)
}

func validTarget(t bingo.Target) error {
	if !t.Valid() {
		return fmt.Errorf("must be one of 1, 3 or 5, got %d", int(t))
	}
	return nil
}

func (b *Board) lintCells() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[int]int, len(b.Cells))

	for i, c := range b.Cells {
		field := fmt.Sprintf("cells[%d].position", i)
		if c.Position == nil {
			errs = errs.Append(field, fmt.Errorf("missing or not an integer, cell is ignored"))
			continue
		}

		p := *c.Position
		if !bingo.InRange(p) {
			errs = errs.Append(field, fmt.Errorf("%d is outside 0-%d", p, bingo.CellCount-1))
			continue
		}
		if first, ok := seen[p]; ok {
			errs = errs.Append(field, fmt.Errorf("duplicate position %d (first at cells[%d])", p, first))
			continue
		}
		seen[p] = i
	}

	return errs.ToError()
}

func (b *Board) lintReviews() error {
	var errs criterio.FieldErrorsBuilder

	onBoard := make(map[int64]bool, len(b.Cells))
	for _, c := range b.Cells {
		if c.Restaurant != nil {
			onBoard[c.Restaurant.ID] = true
		}
	}

	reviewed := make(map[int64]bool, len(b.Reviews))
	for i, r := range b.Reviews {
		field := fmt.Sprintf("reviews[%d]", i)

		if !onBoard[r.RestaurantID] {
			errs = errs.Append(field+".restaurant_id", fmt.Errorf("restaurant %d is not on this board", r.RestaurantID))
		}
		if reviewed[r.RestaurantID] {
			errs = errs.Append(field+".restaurant_id", fmt.Errorf("restaurant %d already reviewed", r.RestaurantID))
		}
		reviewed[r.RestaurantID] = true

		if err := validate.Rating(r.Rating); err != nil {
			errs = errs.Append(field+".rating", err)
		}
		if err := validate.ReviewContent(r.Content); err != nil {
			errs = errs.Append(field+".content", err)
		}
	}

	return errs.ToError()
}
