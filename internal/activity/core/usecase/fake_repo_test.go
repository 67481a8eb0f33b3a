package usecase

import (
	"context"
	"time"

	"herring/internal/activity/core/domain"
	"herring/internal/activity/core/ports"
)

// 2025-11-14T18:00:00Z
var fixedNow = time.UnixMilli(1763143200000)

func fixedClock() time.Time { return fixedNow }

// fakeActivityRepo implements ports.ActivityRepositoryPort for tests.
type fakeActivityRepo struct {
	LoadFn         func(ctx context.Context, slug string) (*ports.PuzzleActivity, error)
	SaveFn         func(ctx context.Context, slug string, t domain.Tracker) error
	ActiveFn       func(ctx context.Context, slug string, since int64) ([]domain.Participant, error)
	TouchFn        func(ctx context.Context, p domain.Participant) error
	SetMemberFn    func(ctx context.Context, p domain.Participant) error
	RefreshCountFn func(ctx context.Context, slug string) (int, error)

	saved       []domain.Tracker
	touched     []domain.Participant
	memberships []domain.Participant
	lastSince   int64
	loadCalled  bool
}

func (f *fakeActivityRepo) LoadActivity(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
	f.loadCalled = true
	if f.LoadFn != nil {
		return f.LoadFn(ctx, slug)
	}
	return &ports.PuzzleActivity{Slug: slug}, nil
}

func (f *fakeActivityRepo) SaveTracker(ctx context.Context, slug string, t domain.Tracker) error {
	f.saved = append(f.saved, t)
	if f.SaveFn != nil {
		return f.SaveFn(ctx, slug, t)
	}
	return nil
}

func (f *fakeActivityRepo) ActiveParticipants(ctx context.Context, slug string, since int64) ([]domain.Participant, error) {
	f.lastSince = since
	if f.ActiveFn != nil {
		return f.ActiveFn(ctx, slug, since)
	}
	return nil, nil
}

func (f *fakeActivityRepo) TouchParticipant(ctx context.Context, p domain.Participant) error {
	f.touched = append(f.touched, p)
	if f.TouchFn != nil {
		return f.TouchFn(ctx, p)
	}
	return nil
}

func (f *fakeActivityRepo) SetMembership(ctx context.Context, p domain.Participant) error {
	f.memberships = append(f.memberships, p)
	if f.SetMemberFn != nil {
		return f.SetMemberFn(ctx, p)
	}
	return nil
}

func (f *fakeActivityRepo) RefreshChannelCount(ctx context.Context, slug string) (int, error) {
	if f.RefreshCountFn != nil {
		return f.RefreshCountFn(ctx, slug)
	}
	return 0, nil
}
