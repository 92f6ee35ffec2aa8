package blitz

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repo is the persistence boundary for blitz problems and per-user
// starts. Implementations return (nil, nil) for missing records.
type Repo interface {
	// ListProblems returns the contest's blitz problems ordered by judge
	// problem id.
	ListProblems(ctx context.Context, contestID int64) ([]Problem, error)
	GetProblem(ctx context.Context, id int64) (*Problem, error)
	// CountStarts counts how many users have opened the problem.
	CountStarts(ctx context.Context, problemID int64) (int, error)
	GetStart(ctx context.Context, problemID int64, userUUID uuid.UUID) (*Start, error)
	// CreateStart records the start with a zero bid unless one already
	// exists and returns the stored record either way, so opening twice
	// never restarts the clock.
	CreateStart(ctx context.Context, problemID int64, userUUID uuid.UUID, at time.Time) (*Start, error)
	// UpdateBid rewrites the bid of an existing start.
	UpdateBid(ctx context.Context, problemID int64, userUUID uuid.UUID, bid int) error
}
