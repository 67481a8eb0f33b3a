package ports

import (
	"context"
	"errors"

	"herring/internal/puzzles/core/domain"
)

var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrRoundNotFound  = errors.New("round not found")
	ErrSlugTaken      = errors.New("slug already taken")
)

type PuzzleRepositoryPort interface {
	// ListRounds and ListPuzzles return the hunt in display order.
	ListRounds(ctx context.Context, huntID int) ([]domain.Round, error)
	ListPuzzles(ctx context.Context, huntID int) ([]domain.Puzzle, error)

	GetPuzzle(ctx context.Context, id int64) (*domain.Puzzle, error)

	// UpdatePuzzle returns the slug of the updated puzzle.
	UpdatePuzzle(ctx context.Context, id int64, u domain.PuzzleUpdate) (string, error)

	CreateRound(ctx context.Context, r *domain.Round) error
	// CreatePuzzle returns ErrSlugTaken when p.Slug is in use.
	CreatePuzzle(ctx context.Context, p *domain.Puzzle) error
}

// ActiveParticipantsReader lists recently active channel members per puzzle slug.
type ActiveParticipantsReader interface {
	ActiveParticipantsBySlug(ctx context.Context, since int64) (map[string][]string, error)
}
