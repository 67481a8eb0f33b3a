package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"herring/internal/activity/core/domain"
	"herring/internal/activity/core/ports"
)

var ErrInvalidActivityQuery = errors.New("invalid activity query")

type ActivityView struct {
	Record         domain.ActivityRecord
	Buckets        []int // nil: no chart
	LastActiveText string
}

type GetActivityUseCase struct {
	repo      ports.ActivityRepositoryPort
	logger    *slog.Logger
	now       func() time.Time
	summarize func(domain.ActivityRecord, int64) (domain.Summary, error)
}

func NewGetActivityUseCase(repo ports.ActivityRepositoryPort) *GetActivityUseCase {
	return &GetActivityUseCase{
		repo:      repo,
		logger:    slog.Default(),
		now:       time.Now,
		summarize: domain.Summarize,
	}
}

// Execute loads the activity of one puzzle and summarizes it relative to now.
// A histogram that cannot be decoded only drops the chart.
func (uc *GetActivityUseCase) Execute(ctx context.Context, slug string) (*ActivityView, error) {
	if slug == "" {
		return nil, ErrInvalidActivityQuery
	}

	pa, err := uc.repo.LoadActivity(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := uc.now().UnixMilli()

	participants, err := uc.repo.ActiveParticipants(ctx, slug, now-domain.ActiveWindowMS)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name())
	}

	rec := domain.ActivityRecord{
		ChannelCount:       pa.ChannelCount,
		ActiveParticipants: names,
		Histogram:          pa.Tracker.Histogram(),
		LastActiveAt:       pa.Tracker.LastActive,
	}

	summary, err := uc.summarize(rec, now)
	if err != nil {
		uc.logger.DebugContext(ctx, "activity chart omitted", "slug", slug, "histogram", rec.Histogram, "error", err)
	}

	return &ActivityView{
		Record:         rec,
		Buckets:        summary.Buckets,
		LastActiveText: summary.LastActiveText,
	}, nil
}
