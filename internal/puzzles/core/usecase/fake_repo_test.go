package usecase

import (
	"context"
	"time"

	"herring/internal/puzzles/core/domain"
)

// 2025-11-14T18:00:00Z
var fixedNow = time.UnixMilli(1763143200000)

func fixedClock() time.Time { return fixedNow }

// fakePuzzleRepo implements ports.PuzzleRepositoryPort for tests.
type fakePuzzleRepo struct {
	ListRoundsFn   func(ctx context.Context, huntID int) ([]domain.Round, error)
	ListPuzzlesFn  func(ctx context.Context, huntID int) ([]domain.Puzzle, error)
	GetFn          func(ctx context.Context, id int64) (*domain.Puzzle, error)
	UpdateFn       func(ctx context.Context, id int64, u domain.PuzzleUpdate) (string, error)
	CreateRoundFn  func(ctx context.Context, r *domain.Round) error
	CreatePuzzleFn func(ctx context.Context, p *domain.Puzzle) error

	updateCalled bool
	triedSlugs   []string
}

func (f *fakePuzzleRepo) ListRounds(ctx context.Context, huntID int) ([]domain.Round, error) {
	if f.ListRoundsFn != nil {
		return f.ListRoundsFn(ctx, huntID)
	}
	return nil, nil
}

func (f *fakePuzzleRepo) ListPuzzles(ctx context.Context, huntID int) ([]domain.Puzzle, error) {
	if f.ListPuzzlesFn != nil {
		return f.ListPuzzlesFn(ctx, huntID)
	}
	return nil, nil
}

func (f *fakePuzzleRepo) GetPuzzle(ctx context.Context, id int64) (*domain.Puzzle, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &domain.Puzzle{ID: id}, nil
}

func (f *fakePuzzleRepo) UpdatePuzzle(ctx context.Context, id int64, u domain.PuzzleUpdate) (string, error) {
	f.updateCalled = true
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, u)
	}
	return "slug", nil
}

func (f *fakePuzzleRepo) CreateRound(ctx context.Context, r *domain.Round) error {
	if f.CreateRoundFn != nil {
		return f.CreateRoundFn(ctx, r)
	}
	r.ID = 1
	return nil
}

func (f *fakePuzzleRepo) CreatePuzzle(ctx context.Context, p *domain.Puzzle) error {
	f.triedSlugs = append(f.triedSlugs, p.Slug)
	if f.CreatePuzzleFn != nil {
		return f.CreatePuzzleFn(ctx, p)
	}
	p.ID = 1
	return nil
}

type fakeParticipants struct {
	Fn        func(ctx context.Context, since int64) (map[string][]string, error)
	lastSince int64
}

func (f *fakeParticipants) ActiveParticipantsBySlug(ctx context.Context, since int64) (map[string][]string, error) {
	f.lastSince = since
	if f.Fn != nil {
		return f.Fn(ctx, since)
	}
	return map[string][]string{}, nil
}
