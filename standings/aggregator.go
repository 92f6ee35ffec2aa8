package standings

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoJudge is returned when a contest has no linked judge configuration.
// It is a distinct signal from a contest with zero problems: callers must
// treat it as "no standings exist", not as an empty board.
var ErrNoJudge = errors.New("contest has no judge link")

// Source supplies raw standings for a contest. Implementations may cache
// or poll however they like; the aggregator only requires the shape.
// A contest without judge configuration yields ErrNoJudge.
type Source interface {
	LoadContest(ctx context.Context, contestID int64, userIDs []int64) (*Table, error)
}

// Aggregator turns whatever a Source returns into canonical form:
// every requested participant gets a row of exactly len(Problems) results
// aligned to the contest's fixed problem order.
type Aggregator struct {
	src Source
}

func NewAggregator(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// Aggregate loads the contest and normalizes the result. For a fixed
// underlying judge state the output is stable regardless of submission
// order or of the order of userIDs.
func (a *Aggregator) Aggregate(ctx context.Context, contestID int64, userIDs []int64) (*Table, error) {
	table, err := a.src.LoadContest(ctx, contestID, userIDs)
	if err != nil {
		if errors.Is(err, ErrNoJudge) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load contest %d: %w", contestID, err)
	}

	normalized := &Table{
		ContestID: table.ContestID,
		Name:      table.Name,
		Problems:  table.Problems,
		Users:     make(map[int64][]UserResult, len(userIDs)),
	}

	width := len(table.Problems)
	for _, id := range userIDs {
		row, ok := table.Users[id]
		if !ok {
			normalized.Users[id] = make([]UserResult, width)
			continue
		}
		aligned := make([]UserResult, width)
		copy(aligned, row)
		normalized.Users[id] = aligned
	}

	return normalized, nil
}
