package blitz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) Repo {
	return &pgRepo{pool: pool}
}

func (r *pgRepo) ListProblems(ctx context.Context, contestID int64) ([]Problem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, contest_id, problem_id
		FROM blitz_problems
		WHERE contest_id = $1
		ORDER BY problem_id
	`, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to select blitz problems: %w", err)
	}
	defer rows.Close()

	var problems []Problem
	for rows.Next() {
		var p Problem
		if err := rows.Scan(&p.ID, &p.ContestID, &p.ProblemID); err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, rows.Err()
}

func (r *pgRepo) GetProblem(ctx context.Context, id int64) (*Problem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, contest_id, problem_id
		FROM blitz_problems
		WHERE id = $1
	`, id)

	var p Problem
	err := row.Scan(&p.ID, &p.ContestID, &p.ProblemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select blitz problem: %w", err)
	}
	return &p, nil
}

func (r *pgRepo) CountStarts(ctx context.Context, problemID int64) (int, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM blitz_starts
		WHERE problem_id = $1
	`, problemID)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count blitz starts: %w", err)
	}
	return count, nil
}

func (r *pgRepo) GetStart(ctx context.Context, problemID int64, userUUID uuid.UUID) (*Start, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT problem_id, user_uuid, started_at, bid
		FROM blitz_starts
		WHERE problem_id = $1 AND user_uuid = $2
	`, problemID, userUUID)

	var start Start
	err := row.Scan(&start.ProblemID, &start.UserUUID, &start.Time, &start.Bid)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select blitz start: %w", err)
	}
	return &start, nil
}

// CreateStart relies on the (problem_id, user_uuid) unique constraint:
// a second open is a no-op and the original start time survives.
func (r *pgRepo) CreateStart(ctx context.Context, problemID int64, userUUID uuid.UUID, at time.Time) (*Start, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blitz_starts (problem_id, user_uuid, started_at, bid)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (problem_id, user_uuid) DO NOTHING
	`, problemID, userUUID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to insert blitz start: %w", err)
	}
	return r.GetStart(ctx, problemID, userUUID)
}

func (r *pgRepo) UpdateBid(ctx context.Context, problemID int64, userUUID uuid.UUID, bid int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE blitz_starts
		SET bid = $3
		WHERE problem_id = $1 AND user_uuid = $2
	`, problemID, userUUID, bid)
	if err != nil {
		return fmt.Errorf("failed to update blitz bid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("start of problem %d not found", problemID)
	}
	return nil
}
