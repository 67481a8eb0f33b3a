package usecase

import (
	"context"
	"log/slog"
	"time"

	activity "herring/internal/activity/core/domain"
	"herring/internal/puzzles/core/domain"
	"herring/internal/puzzles/core/ports"
)

type PuzzleView struct {
	Puzzle          domain.Puzzle
	ChannelActive   []string
	ActivityHisto   string
	ActivityBuckets []int // nil: no chart
	LastActiveText  string
}

type RoundView struct {
	Round   domain.Round
	Puzzles []PuzzleView
}

type ListRoundsUseCase struct {
	repo         ports.PuzzleRepositoryPort
	participants ports.ActiveParticipantsReader
	huntID       int
	logger       *slog.Logger
	now          func() time.Time
	summarize    func(activity.ActivityRecord, int64) (activity.Summary, error)
}

func NewListRoundsUseCase(repo ports.PuzzleRepositoryPort, participants ports.ActiveParticipantsReader, huntID int) *ListRoundsUseCase {
	return &ListRoundsUseCase{
		repo:         repo,
		participants: participants,
		huntID:       huntID,
		logger:       slog.Default(),
		now:          time.Now,
		summarize:    activity.Summarize,
	}
}

// Execute returns every round of the hunt with its puzzles, each decorated
// with an activity summary relative to now.
func (uc *ListRoundsUseCase) Execute(ctx context.Context) ([]RoundView, error) {
	rounds, err := uc.repo.ListRounds(ctx, uc.huntID)
	if err != nil {
		return nil, err
	}

	puzzles, err := uc.repo.ListPuzzles(ctx, uc.huntID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UnixMilli()

	active, err := uc.participants.ActiveParticipantsBySlug(ctx, now-activity.ActiveWindowMS)
	if err != nil {
		return nil, err
	}

	views := make([]RoundView, len(rounds))
	index := make(map[int64]int, len(rounds))
	for i, r := range rounds {
		views[i] = RoundView{Round: r, Puzzles: []PuzzleView{}}
		index[r.ID] = i
	}

	for _, p := range puzzles {
		i, ok := index[p.RoundID]
		if !ok {
			continue
		}
		views[i].Puzzles = append(views[i].Puzzles, uc.decorate(ctx, p, active[p.Slug], now))
	}

	return views, nil
}

func (uc *ListRoundsUseCase) decorate(ctx context.Context, p domain.Puzzle, names []string, now int64) PuzzleView {
	histo := p.Tracker().Histogram()
	if names == nil {
		names = []string{}
	}

	rec := activity.ActivityRecord{
		ChannelCount:       p.ChannelCount,
		ActiveParticipants: names,
		Histogram:          histo,
		LastActiveAt:       p.LastActive,
	}
	summary, err := uc.summarize(rec, now)
	if err != nil {
		uc.logger.DebugContext(ctx, "activity chart omitted", "slug", p.Slug, "histogram", histo, "error", err)
	}

	return PuzzleView{
		Puzzle:          p,
		ChannelActive:   names,
		ActivityHisto:   histo,
		ActivityBuckets: summary.Buckets,
		LastActiveText:  summary.LastActiveText,
	}
}
