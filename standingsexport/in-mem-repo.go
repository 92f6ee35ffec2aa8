package standingsexport

import (
	"context"
	"sync"
)

type InMemRepo struct {
	mu      sync.RWMutex
	rosters map[int64][]Participant
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{rosters: make(map[int64][]Participant)}
}

func (r *InMemRepo) PutRoster(contestID int64, roster []Participant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rosters[contestID] = roster
}

func (r *InMemRepo) ListParticipants(ctx context.Context, contestID int64) ([]Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	roster := make([]Participant, len(r.rosters[contestID]))
	copy(roster, r.rosters[contestID])
	return roster, nil
}
