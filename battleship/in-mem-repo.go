package battleship

import (
	"context"
	"sync"
)

// InMemRepo keeps boards in memory. Used in tests and local development.
type InMemRepo struct {
	mu     sync.RWMutex
	boards map[int64]Battleship
	teams  map[int64][]TeamData // battleship id -> teams
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		boards: make(map[int64]Battleship),
		teams:  make(map[int64][]TeamData),
	}
}

func (r *InMemRepo) PutBattleship(board Battleship, teams []TeamData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards[board.ID] = board
	r.teams[board.ID] = teams
}

func (r *InMemRepo) GetBattleship(ctx context.Context, id int64) (*Battleship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if board, ok := r.boards[id]; ok {
		return &board, nil
	}
	return nil, nil
}

func (r *InMemRepo) ListTeams(ctx context.Context, battleshipID int64) ([]TeamData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	teams := make([]TeamData, len(r.teams[battleshipID]))
	copy(teams, r.teams[battleshipID])
	return teams, nil
}
