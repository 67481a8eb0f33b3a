package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"herring/internal/activity/core/domain"
	"herring/internal/activity/core/ports"

	"github.com/puzpuzpuz/xsync/v3"
)

var (
	ErrInvalidActivity = errors.New("invalid activity")
	ErrFutureTime      = errors.New("timestamp cannot be in the future")
)

type RecordActivityInput struct {
	Slug        string
	UserID      string
	DisplayName string
	Timestamp   int64 // unix ms, 0 = now
}

type RecordActivityUseCase struct {
	repo  ports.ActivityRepositoryPort
	locks *xsync.MapOf[string, *sync.Mutex]
	now   func() time.Time
}

func NewRecordActivityUseCase(repo ports.ActivityRepositoryPort) *RecordActivityUseCase {
	return &RecordActivityUseCase{
		repo:  repo,
		locks: xsync.NewMapOf[string, *sync.Mutex](),
		now:   time.Now,
	}
}

// Execute folds one chat message into the puzzle's tracker and the author's
// participation row. It returns whether the tracker changed.
func (uc *RecordActivityUseCase) Execute(ctx context.Context, in RecordActivityInput) (bool, error) {
	at, err := uc.validate(in, uc.now().UnixMilli())
	if err != nil {
		return false, err
	}

	return uc.record(ctx, in, at)
}

func (uc *RecordActivityUseCase) validate(in RecordActivityInput, now int64) (int64, error) {
	if in.Slug == "" || in.UserID == "" || in.Timestamp < 0 {
		return 0, ErrInvalidActivity
	}

	at := in.Timestamp
	if at == 0 {
		at = now
	}
	if at > now {
		return 0, ErrFutureTime
	}
	return at, nil
}

func (uc *RecordActivityUseCase) record(ctx context.Context, in RecordActivityInput, at int64) (bool, error) {
	// tracker updates are read-modify-write
	mu, _ := uc.locks.LoadOrCompute(in.Slug, func() *sync.Mutex { return &sync.Mutex{} })
	mu.Lock()
	defer mu.Unlock()

	pa, err := uc.repo.LoadActivity(ctx, in.Slug)
	if err != nil {
		return false, err
	}

	changed := pa.Tracker.Record(at)
	if changed {
		if err := uc.repo.SaveTracker(ctx, in.Slug, pa.Tracker); err != nil {
			return false, err
		}
	}

	err = uc.repo.TouchParticipant(ctx, domain.Participant{
		Slug:        in.Slug,
		UserID:      in.UserID,
		DisplayName: in.DisplayName,
		IsMember:    true,
		LastActive:  at,
	})
	if err != nil {
		return false, err
	}

	return changed, nil
}

type BatchResult struct {
	Recorded  int
	Unchanged int
}

// RecordBatch applies messages in order, typically a chat bot flushing what
// it buffered. Nothing is written unless every message is valid.
func (uc *RecordActivityUseCase) RecordBatch(ctx context.Context, msgs []RecordActivityInput) (BatchResult, error) {
	var res BatchResult

	now := uc.now().UnixMilli()
	times := make([]int64, len(msgs))
	for i, in := range msgs {
		at, err := uc.validate(in, now)
		if err != nil {
			return res, fmt.Errorf("message %d: %w", i, err)
		}
		times[i] = at
	}

	for i, in := range msgs {
		changed, err := uc.record(ctx, in, times[i])
		if err != nil {
			return res, fmt.Errorf("message %d: %w", i, err)
		}

		if changed {
			res.Recorded++
		} else {
			res.Unchanged++
		}
	}

	return res, nil
}
