package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	activity "herring/internal/activity/core/domain"
	"herring/internal/puzzles/core/domain"
)

func newListRounds(repo *fakePuzzleRepo, parts *fakeParticipants) *ListRoundsUseCase {
	uc := NewListRoundsUseCase(repo, parts, 7)
	uc.now = fixedClock
	return uc
}

func TestListRounds_GroupsAndDecorates(t *testing.T) {
	now := fixedNow.UnixMilli()
	var gotHunt int

	repo := &fakePuzzleRepo{
		ListRoundsFn: func(ctx context.Context, huntID int) ([]domain.Round, error) {
			gotHunt = huntID
			return []domain.Round{
				{ID: 1, HuntID: 7, Number: 1, Name: "Intro"},
				{ID: 2, HuntID: 7, Number: 2, Name: "Empty"},
			}, nil
		},
		ListPuzzlesFn: func(ctx context.Context, huntID int) ([]domain.Puzzle, error) {
			return []domain.Puzzle{
				{ID: 10, RoundID: 1, Slug: "meta", IsMeta: true, ActivityTracker: 1, LastActive: now - 30_000},
				{ID: 11, RoundID: 1, Slug: "quiet"},
				{ID: 12, RoundID: 99, Slug: "orphan"},
			}, nil
		},
	}
	parts := &fakeParticipants{
		Fn: func(ctx context.Context, since int64) (map[string][]string, error) {
			return map[string][]string{"meta": {"alice", "bob"}}, nil
		},
	}

	views, err := newListRounds(repo, parts).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotHunt != 7 {
		t.Fatalf("expected hunt 7, got %d", gotHunt)
	}
	if parts.lastSince != now-activity.ActiveWindowMS {
		t.Fatalf("unexpected since %d", parts.lastSince)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(views))
	}
	if len(views[0].Puzzles) != 2 {
		t.Fatalf("expected 2 puzzles in round 1, got %d", len(views[0].Puzzles))
	}
	if views[1].Puzzles == nil || len(views[1].Puzzles) != 0 {
		t.Fatalf("expected empty non-nil puzzle list, got %#v", views[1].Puzzles)
	}

	meta := views[0].Puzzles[0]
	if meta.ActivityHisto != "000000000000001" {
		t.Errorf("unexpected histo %q", meta.ActivityHisto)
	}
	if meta.LastActiveText != "30s ago" {
		t.Errorf("unexpected last active text %q", meta.LastActiveText)
	}
	if len(meta.ChannelActive) != 2 {
		t.Errorf("expected 2 active names, got %v", meta.ChannelActive)
	}
	if len(meta.ActivityBuckets) != activity.Buckets || meta.ActivityBuckets[activity.Buckets-1] != 1 {
		t.Errorf("unexpected buckets %v", meta.ActivityBuckets)
	}

	quiet := views[0].Puzzles[1]
	if quiet.ActivityBuckets != nil {
		t.Errorf("expected no chart for never active puzzle, got %v", quiet.ActivityBuckets)
	}
	if quiet.LastActiveText != "never" {
		t.Errorf("unexpected last active text %q", quiet.LastActiveText)
	}
	if quiet.ChannelActive == nil {
		t.Error("expected empty non-nil active list")
	}
}

func TestListRounds_MalformedHistogramIsLogged(t *testing.T) {
	var logs bytes.Buffer

	repo := &fakePuzzleRepo{
		ListRoundsFn: func(ctx context.Context, huntID int) ([]domain.Round, error) {
			return []domain.Round{{ID: 1, HuntID: 7, Number: 1, Name: "Intro"}}, nil
		},
		ListPuzzlesFn: func(ctx context.Context, huntID int) ([]domain.Puzzle, error) {
			return []domain.Puzzle{{ID: 10, RoundID: 1, Slug: "lighthouse"}}, nil
		},
	}

	uc := newListRounds(repo, &fakeParticipants{})
	uc.logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	uc.summarize = func(rec activity.ActivityRecord, now int64) (activity.Summary, error) {
		return activity.Summary{LastActiveText: "never"}, fmt.Errorf("%w: bad digit", activity.ErrMalformedHistogram)
	}

	views, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := views[0].Puzzles[0]; got.ActivityBuckets != nil || got.LastActiveText != "never" {
		t.Fatalf("unexpected view %+v", got)
	}

	line := logs.String()
	if !strings.Contains(line, "level=DEBUG") || !strings.Contains(line, "slug=lighthouse") {
		t.Fatalf("expected debug log for the omitted chart, got %q", line)
	}
}

func TestListRounds_RepositoryErrors(t *testing.T) {
	boom := errors.New("db failure")

	tests := []struct {
		name  string
		repo  *fakePuzzleRepo
		parts *fakeParticipants
	}{
		{
			name: "rounds",
			repo: &fakePuzzleRepo{ListRoundsFn: func(ctx context.Context, huntID int) ([]domain.Round, error) {
				return nil, boom
			}},
			parts: &fakeParticipants{},
		},
		{
			name: "puzzles",
			repo: &fakePuzzleRepo{ListPuzzlesFn: func(ctx context.Context, huntID int) ([]domain.Puzzle, error) {
				return nil, boom
			}},
			parts: &fakeParticipants{},
		},
		{
			name: "participants",
			repo: &fakePuzzleRepo{},
			parts: &fakeParticipants{Fn: func(ctx context.Context, since int64) (map[string][]string, error) {
				return nil, boom
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newListRounds(tt.repo, tt.parts).Execute(context.Background())
			if !errors.Is(err, boom) {
				t.Fatalf("expected repository error, got %v", err)
			}
		})
	}
}
