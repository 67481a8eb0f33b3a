package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"herring/internal/puzzles/core/domain"
	"herring/internal/puzzles/core/ports"
)

var (
	ErrInvalidRound  = errors.New("invalid round")
	ErrInvalidPuzzle = errors.New("invalid puzzle")
)

const maxSlugAttempts = 20

type CreateRoundInput struct {
	Number  int
	Name    string
	HuntURL string
}

type CreateRoundUseCase struct {
	repo   ports.PuzzleRepositoryPort
	huntID int
}

func NewCreateRoundUseCase(repo ports.PuzzleRepositoryPort, huntID int) *CreateRoundUseCase {
	return &CreateRoundUseCase{repo: repo, huntID: huntID}
}

func (uc *CreateRoundUseCase) Execute(ctx context.Context, in CreateRoundInput) (*domain.Round, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRound)
	}
	if utf8.RuneCountInString(name) > maxFieldLen {
		return nil, fmt.Errorf("%w: name longer than %d characters", ErrInvalidRound, maxFieldLen)
	}
	if utf8.RuneCountInString(in.HuntURL) > maxHuntURLLen {
		return nil, fmt.Errorf("%w: hunt_url longer than %d characters", ErrInvalidRound, maxHuntURLLen)
	}

	number := in.Number
	if number == 0 {
		number = 1
	}

	r := &domain.Round{
		HuntID:  uc.huntID,
		Number:  number,
		Name:    name,
		HuntURL: in.HuntURL,
	}
	if err := uc.repo.CreateRound(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

type CreatePuzzleInput struct {
	RoundID int64
	Name    string
	Number  *int
	IsMeta  bool
	HuntURL string
}

type CreatePuzzleUseCase struct {
	repo   ports.PuzzleRepositoryPort
	huntID int
}

func NewCreatePuzzleUseCase(repo ports.PuzzleRepositoryPort, huntID int) *CreatePuzzleUseCase {
	return &CreatePuzzleUseCase{repo: repo, huntID: huntID}
}

// Execute inserts a puzzle under its round. The slug comes from the title
// and gets a numeric suffix while it collides with an existing one.
func (uc *CreatePuzzleUseCase) Execute(ctx context.Context, in CreatePuzzleInput) (*domain.Puzzle, error) {
	if in.RoundID <= 0 {
		return nil, fmt.Errorf("%w: round id must be positive", ErrInvalidPuzzle)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidPuzzle)
	}
	if utf8.RuneCountInString(name) > maxFieldLen {
		return nil, fmt.Errorf("%w: name longer than %d characters", ErrInvalidPuzzle, maxFieldLen)
	}
	if utf8.RuneCountInString(in.HuntURL) > maxHuntURLLen {
		return nil, fmt.Errorf("%w: hunt_url longer than %d characters", ErrInvalidPuzzle, maxHuntURLLen)
	}

	base := domain.TitleToSlug(name)

	p := &domain.Puzzle{
		RoundID: in.RoundID,
		HuntID:  uc.huntID,
		Name:    name,
		Number:  in.Number,
		IsMeta:  in.IsMeta,
		HuntURL: in.HuntURL,
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		p.Slug = base
		if attempt > 1 {
			p.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		err := uc.repo.CreatePuzzle(ctx, p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ports.ErrSlugTaken) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %q after %d attempts", ports.ErrSlugTaken, base, maxSlugAttempts)
}
