package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"herring/internal/database"
	"herring/internal/puzzles/core/domain"
	"herring/internal/puzzles/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DB is all the repository needs; writes use RETURNING and go through
// QueryContext as well.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type PuzzleRepository struct {
	db DB
}

func NewPuzzleRepository(db DB) *PuzzleRepository {
	return &PuzzleRepository{db: db}
}

var _ ports.PuzzleRepositoryPort = (*PuzzleRepository)(nil)

const selectRoundsSQL = `
SELECT id, hunt_id, number, name, hunt_url
FROM rounds
WHERE hunt_id = $1
ORDER BY number, id`

func (r *PuzzleRepository) ListRounds(ctx context.Context, huntID int) ([]domain.Round, error) {
	rows, err := r.db.QueryContext(ctx, selectRoundsSQL, huntID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Round
	for rows.Next() {
		var (
			rd           domain.Round
			hunt, number int64
		)
		if err := rows.Scan(&rd.ID, &hunt, &number, &rd.Name, &rd.HuntURL); err != nil {
			return nil, err
		}
		rd.HuntID = int(hunt)
		rd.Number = int(number)
		out = append(out, rd)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const puzzleColumns = `id, round_id, hunt_id, name, slug, number, answer, note, tags, is_meta,
    hunt_url, sheet_id, channel_count, activity_tracker, last_active`

const selectPuzzlesSQL = `
SELECT ` + puzzleColumns + `
FROM puzzles
WHERE hunt_id = $1
ORDER BY round_id, is_meta DESC, number, id`

func (r *PuzzleRepository) ListPuzzles(ctx context.Context, huntID int) ([]domain.Puzzle, error) {
	rows, err := r.db.QueryContext(ctx, selectPuzzlesSQL, huntID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Puzzle
	for rows.Next() {
		p, err := scanPuzzle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const selectPuzzleSQL = `
SELECT ` + puzzleColumns + `
FROM puzzles
WHERE id = $1`

func (r *PuzzleRepository) GetPuzzle(ctx context.Context, id int64) (*domain.Puzzle, error) {
	rows, err := r.db.QueryContext(ctx, selectPuzzleSQL, id)
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

	p, err := scanPuzzle(rows)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func scanPuzzle(rows RowScanner) (domain.Puzzle, error) {
	var (
		p                 domain.Puzzle
		hunt, count, bits int64
		number            sql.NullInt64
		sheetID           sql.NullString
	)

	err := rows.Scan(
		&p.ID, &p.RoundID, &hunt, &p.Name, &p.Slug, &number,
		&p.Answer, &p.Note, &p.Tags, &p.IsMeta,
		&p.HuntURL, &sheetID, &count, &bits, &p.LastActive,
	)
	if err != nil {
		return p, err
	}

	p.HuntID = int(hunt)
	p.ChannelCount = int(count)
	p.ActivityTracker = uint64(bits)
	p.SheetID = sheetID.String
	if number.Valid {
		n := int(number.Int64)
		p.Number = &n
	}

	return p, nil
}

func (r *PuzzleRepository) UpdatePuzzle(ctx context.Context, id int64, u domain.PuzzleUpdate) (string, error) {
	var (
		sets     []string
		args     []any
		argIndex = 1
	)

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, *value)
		argIndex++
	}

	add("answer", u.Answer)
	add("note", u.Note)
	add("tags", u.Tags)
	add("hunt_url", u.HuntURL)

	if len(sets) == 0 {
		return "", fmt.Errorf("update puzzle %d: no fields", id)
	}

	query := fmt.Sprintf("UPDATE puzzles SET %s WHERE id = $%d RETURNING slug", strings.Join(sets, ", "), argIndex)
	args = append(args, id)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", err
		}
		return "", ports.ErrPuzzleNotFound
	}

	var slug string
	if err := rows.Scan(&slug); err != nil {
		return "", err
	}

	return slug, rows.Err()
}

const insertRoundSQL = `
INSERT INTO rounds (hunt_id, number, name, hunt_url)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *PuzzleRepository) CreateRound(ctx context.Context, rd *domain.Round) error {
	rows, err := r.db.QueryContext(ctx, insertRoundSQL, rd.HuntID, rd.Number, rd.Name, rd.HuntURL)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return fmt.Errorf("insert round %q: no id returned", rd.Name)
	}

	return rows.Scan(&rd.ID)
}

// The puzzle inherits its hunt from the round; selecting from rounds turns an
// unknown round into an empty result instead of a foreign key error.
const insertPuzzleSQL = `
INSERT INTO puzzles (round_id, hunt_id, name, slug, number, is_meta, hunt_url)
SELECT id, hunt_id, CAST($2 AS TEXT), CAST($3 AS TEXT), CAST($4 AS INTEGER), CAST($5 AS BOOLEAN), CAST($6 AS TEXT)
FROM rounds
WHERE id = $1
RETURNING id, hunt_id`

func (r *PuzzleRepository) CreatePuzzle(ctx context.Context, p *domain.Puzzle) error {
	var number sql.NullInt64
	if p.Number != nil {
		number = sql.NullInt64{Int64: int64(*p.Number), Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, insertPuzzleSQL, p.RoundID, p.Name, p.Slug, number, p.IsMeta, p.HuntURL)
	if err != nil {
		return mapInsertError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return mapInsertError(err)
		}
		return ports.ErrRoundNotFound
	}

	var hunt int64
	if err := rows.Scan(&p.ID, &hunt); err != nil {
		return err
	}
	p.HuntID = int(hunt)

	return rows.Err()
}

func mapInsertError(err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ports.ErrSlugTaken, err)
	}
	return err
}
