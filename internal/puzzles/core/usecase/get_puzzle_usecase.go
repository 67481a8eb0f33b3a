package usecase

import (
	"context"

	"herring/internal/puzzles/core/domain"
	"herring/internal/puzzles/core/ports"
)

type GetPuzzleUseCase struct {
	repo ports.PuzzleRepositoryPort
}

func NewGetPuzzleUseCase(repo ports.PuzzleRepositoryPort) *GetPuzzleUseCase {
	return &GetPuzzleUseCase{repo: repo}
}

func (uc *GetPuzzleUseCase) Execute(ctx context.Context, id int64) (*domain.Puzzle, error) {
	if id <= 0 {
		return nil, ports.ErrPuzzleNotFound
	}
	return uc.repo.GetPuzzle(ctx, id)
}
