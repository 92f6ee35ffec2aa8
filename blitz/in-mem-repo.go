package blitz

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemRepo keeps blitz problems and starts in memory. Used in tests and
// local development.
type InMemRepo struct {
	mu       sync.RWMutex
	problems map[int64]Problem
	starts   map[int64]map[uuid.UUID]Start
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		problems: make(map[int64]Problem),
		starts:   make(map[int64]map[uuid.UUID]Start),
	}
}

func (r *InMemRepo) PutProblem(problem Problem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems[problem.ID] = problem
}

// PutStart seeds a start record as-is, bypassing the create-once rule.
func (r *InMemRepo) PutStart(start Start) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.starts[start.ProblemID] == nil {
		r.starts[start.ProblemID] = make(map[uuid.UUID]Start)
	}
	r.starts[start.ProblemID][start.UserUUID] = start
}

func (r *InMemRepo) ListProblems(ctx context.Context, contestID int64) ([]Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var problems []Problem
	for _, p := range r.problems {
		if p.ContestID == contestID {
			problems = append(problems, p)
		}
	}
	sort.Slice(problems, func(i, j int) bool {
		return problems[i].ProblemID < problems[j].ProblemID
	})
	return problems, nil
}

func (r *InMemRepo) GetProblem(ctx context.Context, id int64) (*Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.problems[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *InMemRepo) CountStarts(ctx context.Context, problemID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.starts[problemID]), nil
}

func (r *InMemRepo) GetStart(ctx context.Context, problemID int64, userUUID uuid.UUID) (*Start, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if start, ok := r.starts[problemID][userUUID]; ok {
		return &start, nil
	}
	return nil, nil
}

func (r *InMemRepo) CreateStart(ctx context.Context, problemID int64, userUUID uuid.UUID, at time.Time) (*Start, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.starts[problemID][userUUID]; ok {
		return &existing, nil
	}
	if r.starts[problemID] == nil {
		r.starts[problemID] = make(map[uuid.UUID]Start)
	}
	start := Start{ProblemID: problemID, UserUUID: userUUID, Time: at}
	r.starts[problemID][userUUID] = start
	return &start, nil
}

func (r *InMemRepo) UpdateBid(ctx context.Context, problemID int64, userUUID uuid.UUID, bid int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, ok := r.starts[problemID][userUUID]
	if !ok {
		return fmt.Errorf("start of problem %d not found", problemID)
	}
	start.Bid = bid
	r.starts[problemID][userUUID] = start
	return nil
}
