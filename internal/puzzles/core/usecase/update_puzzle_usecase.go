package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"herring/internal/puzzles/core/domain"
	"herring/internal/puzzles/core/ports"
)

var (
	ErrEmptyUpdate         = errors.New("no fields to update")
	ErrInvalidPuzzleUpdate = errors.New("invalid puzzle update")
)

const (
	maxFieldLen   = 200
	maxHuntURLLen = 1000
)

type UpdatePuzzleUseCase struct {
	repo ports.PuzzleRepositoryPort
}

func NewUpdatePuzzleUseCase(repo ports.PuzzleRepositoryPort) *UpdatePuzzleUseCase {
	return &UpdatePuzzleUseCase{repo: repo}
}

// Execute applies the non-nil fields of u and returns the puzzle slug.
func (uc *UpdatePuzzleUseCase) Execute(ctx context.Context, id int64, u domain.PuzzleUpdate) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: id must be positive", ErrInvalidPuzzleUpdate)
	}
	if u.IsEmpty() {
		return "", ErrEmptyUpdate
	}

	checks := []struct {
		name  string
		value *string
		max   int
	}{
		{"answer", u.Answer, maxFieldLen},
		{"note", u.Note, maxFieldLen},
		{"tags", u.Tags, maxFieldLen},
		{"hunt_url", u.HuntURL, maxHuntURLLen},
	}
	for _, c := range checks {
		if c.value != nil && utf8.RuneCountInString(*c.value) > c.max {
			return "", fmt.Errorf("%w: %s longer than %d characters", ErrInvalidPuzzleUpdate, c.name, c.max)
		}
	}

	return uc.repo.UpdatePuzzle(ctx, id, u)
}
