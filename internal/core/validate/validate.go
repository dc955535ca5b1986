// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/bingo/internal/core/bingo"
)

const (
	MaxTitleLength   = 80
	MinReviewLength  = 10
	MinRating        = 1
	MaxRating        = 5
	maxUsernameRunes = 32
)

// Title validates a board title is non-empty after trimming whitespace and
// fits on one line of the board header.
func Title(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title must be at most %d characters", MaxTitleLength)
	}
	return nil
}

// TitleField returns a criterio validator for board titles.
func TitleField(field, title string) error {
	return criterio.Run(field, title, Title)
}

// Username validates an optional username. Empty is allowed; otherwise it
// must not contain whitespace.
func Username(name string) error {
	if name == "" {
		return nil
	}
	if utf8.RuneCountInString(name) > maxUsernameRunes {
		return fmt.Errorf("username must be at most %d characters", maxUsernameRunes)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("username must not contain whitespace")
	}
	return nil
}

// Target parses and validates a line target typed by the user.
func Target(s string) (bingo.Target, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("target must be a number")
	}
	t := bingo.Target(n)
	if !t.Valid() {
		return 0, fmt.Errorf("target must be one of 1, 3 or 5, got %d", n)
	}
	return t, nil
}

// Rating validates a review rating.
func Rating(r int) error {
	if r < MinRating || r > MaxRating {
		return fmt.Errorf("must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// ReviewContent validates the body of a review.
func ReviewContent(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < MinReviewLength {
		return fmt.Errorf("must be at least %d characters", MinReviewLength)
	}
	return nil
}
