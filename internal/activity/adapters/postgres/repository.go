package postgres

import (
	"context"

	"herring/internal/activity/core/domain"
	"herring/internal/activity/core/ports"
)

type ActivityRepository struct {
	db DB
}

func NewActivityRepository(db DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

var _ ports.ActivityRepositoryPort = (*ActivityRepository)(nil)

const selectActivitySQL = `
SELECT channel_count, activity_tracker, last_active
FROM puzzles
WHERE slug = $1`

func (r *ActivityRepository) LoadActivity(ctx context.Context, slug string) (*ports.PuzzleActivity, error) {
	rows, err := r.db.QueryContext(ctx, selectActivitySQL, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ports.ErrPuzzleNotFound
	}

	var count, bits, lastActive int64
	if err := rows.Scan(&count, &bits, &lastActive); err != nil {
		return nil, err
	}

	return &ports.PuzzleActivity{
		Slug:         slug,
		ChannelCount: int(count),
		Tracker:      domain.Tracker{Bits: uint64(bits), LastActive: lastActive},
	}, nil
}

const updateTrackerSQL = `
UPDATE puzzles
SET activity_tracker = $1, last_active = $2
WHERE slug = $3`

func (r *ActivityRepository) SaveTracker(ctx context.Context, slug string, t domain.Tracker) error {
	// the window is 60 bits wide, so the tracker always fits a signed BIGINT
	res, err := r.db.ExecContext(ctx, updateTrackerSQL, int64(t.Bits), t.LastActive, slug)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrPuzzleNotFound
	}
	return nil
}

const selectActiveParticipantsSQL = `
SELECT user_id, display_name, last_active
FROM channel_participation
WHERE puzzle_slug = $1 AND is_member = TRUE AND last_active > $2
ORDER BY last_active DESC, user_id`

func (r *ActivityRepository) ActiveParticipants(ctx context.Context, slug string, since int64) ([]domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx, selectActiveParticipantsSQL, slug, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		p := domain.Participant{Slug: slug, IsMember: true}
		if err := rows.Scan(&p.UserID, &p.DisplayName, &p.LastActive); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const selectAllActiveParticipantsSQL = `
SELECT puzzle_slug, user_id, display_name
FROM channel_participation
WHERE is_member = TRUE AND last_active > $1
ORDER BY puzzle_slug, last_active DESC, user_id`

// ActiveParticipantsBySlug returns the display names of recently active
// members for every puzzle, keyed by slug.
func (r *ActivityRepository) ActiveParticipantsBySlug(ctx context.Context, since int64) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, selectAllActiveParticipantsSQL, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.Slug, &p.UserID, &p.DisplayName); err != nil {
			return nil, err
		}
		out[p.Slug] = append(out[p.Slug], p.Name())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Both upserts select from puzzles so an unknown slug inserts nothing
// instead of tripping the foreign key. Parameters in a select list carry no
// column type, hence the casts.
const touchParticipantSQL = `
INSERT INTO channel_participation (puzzle_slug, user_id, display_name, is_member, last_active)
SELECT slug, CAST($2 AS TEXT), CAST($3 AS TEXT), TRUE, CAST($4 AS BIGINT) FROM puzzles WHERE slug = $1
ON CONFLICT (puzzle_slug, user_id) DO UPDATE SET
    is_member = TRUE,
    display_name = CASE WHEN excluded.display_name <> '' THEN excluded.display_name ELSE channel_participation.display_name END,
    last_active = CASE WHEN excluded.last_active > channel_participation.last_active THEN excluded.last_active ELSE channel_participation.last_active END`

func (r *ActivityRepository) TouchParticipant(ctx context.Context, p domain.Participant) error {
	return r.upsert(ctx, touchParticipantSQL, p.Slug, p.UserID, p.DisplayName, p.LastActive)
}

const setMembershipSQL = `
INSERT INTO channel_participation (puzzle_slug, user_id, display_name, is_member, last_active)
SELECT slug, CAST($2 AS TEXT), CAST($3 AS TEXT), CAST($4 AS BOOLEAN), 0 FROM puzzles WHERE slug = $1
ON CONFLICT (puzzle_slug, user_id) DO UPDATE SET
    is_member = excluded.is_member,
    display_name = CASE WHEN excluded.display_name <> '' THEN excluded.display_name ELSE channel_participation.display_name END`

func (r *ActivityRepository) SetMembership(ctx context.Context, p domain.Participant) error {
	return r.upsert(ctx, setMembershipSQL, p.Slug, p.UserID, p.DisplayName, p.IsMember)
}

func (r *ActivityRepository) upsert(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrPuzzleNotFound
	}
	return nil
}

const refreshChannelCountSQL = `
UPDATE puzzles
SET channel_count = (
    SELECT COUNT(*) FROM channel_participation
    WHERE puzzle_slug = $1 AND is_member = TRUE
)
WHERE slug = $1
RETURNING channel_count`

func (r *ActivityRepository) RefreshChannelCount(ctx context.Context, slug string) (int, error) {
	rows, err := r.db.QueryContext(ctx, refreshChannelCountSQL, slug)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, ports.ErrPuzzleNotFound
	}

	var count int64
	if err := rows.Scan(&count); err != nil {
		return 0, err
	}

	return int(count), rows.Err()
}
