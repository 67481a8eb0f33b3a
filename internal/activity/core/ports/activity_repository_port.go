package ports

import (
	"context"
	"errors"

	"herring/internal/activity/core/domain"
)

var ErrPuzzleNotFound = errors.New("puzzle not found")

type PuzzleActivity struct {
	Slug         string
	ChannelCount int
	Tracker      domain.Tracker
}

type ActivityRepositoryPort interface {
	// LoadActivity returns ErrPuzzleNotFound for an unknown slug.
	LoadActivity(ctx context.Context, slug string) (*PuzzleActivity, error)
	SaveTracker(ctx context.Context, slug string, t domain.Tracker) error

	// ActiveParticipants lists channel members seen after since (unix ms),
	// most recent first.
	ActiveParticipants(ctx context.Context, slug string, since int64) ([]domain.Participant, error)

	// TouchParticipant marks the user as a member and moves its last activity
	// forward, never backward.
	TouchParticipant(ctx context.Context, p domain.Participant) error
	SetMembership(ctx context.Context, p domain.Participant) error
	RefreshChannelCount(ctx context.Context, slug string) (int, error)
}
