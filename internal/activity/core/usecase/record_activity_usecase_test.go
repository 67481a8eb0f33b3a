package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"herring/internal/activity/core/domain"
	"herring/internal/activity/core/ports"
)

func newRecordUC(repo ports.ActivityRepositoryPort) *RecordActivityUseCase {
	uc := NewRecordActivityUseCase(repo)
	uc.now = fixedClock
	return uc
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestRecordActivity_NewPeriod(t *testing.T) {
	now := fixedNow.UnixMilli()

	repo := &fakeActivityRepo{
		LoadFn: func(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
			return &ports.PuzzleActivity{
				Slug:    slug,
				Tracker: domain.Tracker{Bits: 1, LastActive: now - 2*domain.PeriodMS},
			}, nil
		},
	}

	uc := newRecordUC(repo)

	changed, err := uc.Execute(context.Background(), RecordActivityInput{
		Slug:        "lighthouse",
		UserID:      "alice#0001",
		DisplayName: "Alice",
		Timestamp:   now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatalf("expected changed=true")
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 SaveTracker call, got %d", len(repo.saved))
	}
	if repo.saved[0].Bits != 0b101 || repo.saved[0].LastActive != now {
		t.Fatalf("unexpected saved tracker: %+v", repo.saved[0])
	}

	if len(repo.touched) != 1 {
		t.Fatalf("expected 1 TouchParticipant call, got %d", len(repo.touched))
	}
	p := repo.touched[0]
	if p.Slug != "lighthouse" || p.UserID != "alice#0001" || !p.IsMember || p.LastActive != now {
		t.Fatalf("unexpected participant: %+v", p)
	}
}

func TestRecordActivity_ZeroTimestampMeansNow(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := newRecordUC(repo)

	if _, err := uc.Execute(context.Background(), RecordActivityInput{Slug: "lighthouse", UserID: "bob"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.saved[0].LastActive != fixedNow.UnixMilli() {
		t.Fatalf("expected last_active=now, got %d", repo.saved[0].LastActive)
	}
}

func TestRecordActivity_UnchangedSkipsSave(t *testing.T) {
	now := fixedNow.UnixMilli()

	repo := &fakeActivityRepo{
		LoadFn: func(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
			return &ports.PuzzleActivity{Slug: slug, Tracker: domain.Tracker{Bits: 1, LastActive: now}}, nil
		},
	}
	uc := newRecordUC(repo)

	changed, err := uc.Execute(context.Background(), RecordActivityInput{
		Slug:      "lighthouse",
		UserID:    "bob",
		Timestamp: now - 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatalf("expected changed=false")
	}
	if len(repo.saved) != 0 {
		t.Fatalf("tracker should not be saved when unchanged")
	}
	// participation is still refreshed
	if len(repo.touched) != 1 {
		t.Fatalf("expected participant to be touched")
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestRecordActivity_Invalid(t *testing.T) {
	tests := []RecordActivityInput{
		{Slug: "", UserID: "bob"},
		{Slug: "lighthouse", UserID: ""},
		{Slug: "lighthouse", UserID: "bob", Timestamp: -5},
	}

	for _, in := range tests {
		repo := &fakeActivityRepo{}
		uc := newRecordUC(repo)

		changed, err := uc.Execute(context.Background(), in)
		if !errors.Is(err, ErrInvalidActivity) {
			t.Fatalf("expected ErrInvalidActivity, got %v", err)
		}
		if changed {
			t.Fatalf("expected changed=false")
		}
		if repo.loadCalled {
			t.Fatalf("repository should not be called on invalid input")
		}
	}
}

func TestRecordActivity_FutureTimestamp(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := newRecordUC(repo)

	_, err := uc.Execute(context.Background(), RecordActivityInput{
		Slug:      "lighthouse",
		UserID:    "bob",
		Timestamp: fixedNow.UnixMilli() + 1,
	})
	if !errors.Is(err, ErrFutureTime) {
		t.Fatalf("expected ErrFutureTime, got %v", err)
	}
}

// ------------------------------------------------------------
// REPOSITORY ERRORS
// ------------------------------------------------------------

func TestRecordActivity_LoadError(t *testing.T) {
	repo := &fakeActivityRepo{
		LoadFn: func(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
			return nil, ports.ErrPuzzleNotFound
		},
	}
	uc := newRecordUC(repo)

	_, err := uc.Execute(context.Background(), RecordActivityInput{Slug: "missing", UserID: "bob"})
	if !errors.Is(err, ports.ErrPuzzleNotFound) {
		t.Fatalf("expected ErrPuzzleNotFound, got %v", err)
	}
	if len(repo.touched) != 0 {
		t.Fatalf("participant must not be touched for a missing puzzle")
	}
}

func TestRecordActivity_SaveError(t *testing.T) {
	repo := &fakeActivityRepo{
		SaveFn: func(ctx context.Context, slug string, tr domain.Tracker) error {
			return errors.New("db failure")
		},
	}
	uc := newRecordUC(repo)

	_, err := uc.Execute(context.Background(), RecordActivityInput{Slug: "lighthouse", UserID: "bob"})
	if err == nil || err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
}

// ------------------------------------------------------------
// CONCURRENCY
// ------------------------------------------------------------

func TestRecordActivity_SerializesPerSlug(t *testing.T) {
	now := fixedNow.UnixMilli()

	var (
		mu       sync.Mutex
		stored   = domain.Tracker{LastActive: now - 20*domain.PeriodMS}
		inFlight int
		overlap  bool
	)

	repo := &fakeActivityRepo{
		LoadFn: func(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
			mu.Lock()
			defer mu.Unlock()
			inFlight++
			if inFlight > 1 {
				overlap = true
			}
			return &ports.PuzzleActivity{Slug: slug, Tracker: stored}, nil
		},
		TouchFn: func(ctx context.Context, p domain.Participant) error {
			mu.Lock()
			defer mu.Unlock()
			inFlight--
			return nil
		},
		SaveFn: func(ctx context.Context, slug string, tr domain.Tracker) error {
			mu.Lock()
			defer mu.Unlock()
			stored = tr
			return nil
		},
	}
	uc := newRecordUC(repo)

	var wg sync.WaitGroup
	for i := int64(0); i < 10; i++ {
		wg.Add(1)
		go func(back int64) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), RecordActivityInput{
				Slug:      "lighthouse",
				UserID:    "bob",
				Timestamp: now - back*domain.PeriodMS,
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if overlap {
		t.Fatalf("updates for one slug must not overlap")
	}
	// every one of the last ten periods ends up active, whatever the order
	if stored.Bits != 0x3ff || stored.LastActive != now {
		t.Fatalf("unexpected final tracker: bits=%b last_active=%d", stored.Bits, stored.LastActive)
	}
}

// ------------------------------------------------------------
// BATCH
// ------------------------------------------------------------

func TestRecordBatch_CountsRecordedAndUnchanged(t *testing.T) {
	now := fixedNow.UnixMilli()
	trackers := map[string]*domain.Tracker{
		"lighthouse": {},
		"anagram":    {},
	}

	repo := &fakeActivityRepo{
		LoadFn: func(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
			return &ports.PuzzleActivity{Slug: slug, Tracker: *trackers[slug]}, nil
		},
		SaveFn: func(ctx context.Context, slug string, tr domain.Tracker) error {
			*trackers[slug] = tr
			return nil
		},
	}

	res, err := newRecordUC(repo).RecordBatch(context.Background(), []RecordActivityInput{
		{Slug: "lighthouse", UserID: "alice", Timestamp: now - 1000},
		{Slug: "lighthouse", UserID: "bob", Timestamp: now - 1500}, // earlier, same period
		{Slug: "anagram", UserID: "carol"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Recorded != 2 || res.Unchanged != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if trackers["anagram"].LastActive != now {
		t.Fatalf("zero timestamp should mean now, got %d", trackers["anagram"].LastActive)
	}
	if len(repo.touched) != 3 {
		t.Fatalf("expected every author touched, got %d", len(repo.touched))
	}
}

func TestRecordBatch_InvalidMessageWritesNothing(t *testing.T) {
	repo := &fakeActivityRepo{}

	_, err := newRecordUC(repo).RecordBatch(context.Background(), []RecordActivityInput{
		{Slug: "lighthouse", UserID: "alice"},
		{Slug: "lighthouse", UserID: "bob", Timestamp: fixedNow.UnixMilli() + 60_000},
	})
	if !errors.Is(err, ErrFutureTime) {
		t.Fatalf("expected ErrFutureTime, got %v", err)
	}
	if repo.loadCalled || len(repo.touched) != 0 {
		t.Fatal("repository must not be touched when validation fails")
	}
}

func TestRecordBatch_RepositoryErrorStops(t *testing.T) {
	repo := &fakeActivityRepo{
		LoadFn: func(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
			if slug == "missing" {
				return nil, ports.ErrPuzzleNotFound
			}
			return &ports.PuzzleActivity{Slug: slug}, nil
		},
	}

	res, err := newRecordUC(repo).RecordBatch(context.Background(), []RecordActivityInput{
		{Slug: "lighthouse", UserID: "alice"},
		{Slug: "missing", UserID: "bob"},
		{Slug: "lighthouse", UserID: "carol"},
	})
	if !errors.Is(err, ports.ErrPuzzleNotFound) {
		t.Fatalf("expected ErrPuzzleNotFound, got %v", err)
	}
	if res.Recorded != 1 || len(repo.touched) != 1 {
		t.Fatalf("expected processing to stop at the failing message, got %+v and %d touches", res, len(repo.touched))
	}
}
