package polechudes

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// InMemRepo keeps a game in memory. Used in tests and local development.
// A single write lock serializes guess submission, giving the same
// at-most-one-winning-guess guarantee the pg repo gets from a row lock.
type InMemRepo struct {
	mu          sync.RWMutex
	games       map[int64]Game
	teams       map[int64]Team
	reveals     map[int64][]LetterReveal
	guesses     map[int64][]WordGuess
	nextGuessID int64
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		games:   make(map[int64]Game),
		teams:   make(map[int64]Team),
		reveals: make(map[int64][]LetterReveal),
		guesses: make(map[int64][]WordGuess),
	}
}

func (r *InMemRepo) PutGame(game Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[game.ID] = game
}

func (r *InMemRepo) PutTeam(team Team) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.ID] = team
}

func (r *InMemRepo) GetGame(ctx context.Context, id int64) (*Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if game, ok := r.games[id]; ok {
		return &game, nil
	}
	return nil, nil
}

func (r *InMemRepo) GetTeam(ctx context.Context, id int64) (*Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if team, ok := r.teams[id]; ok {
		return &team, nil
	}
	return nil, nil
}

func (r *InMemRepo) ListTeams(ctx context.Context, gameID int64) ([]Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var teams []Team
	for _, team := range r.teams {
		if team.GameID == gameID {
			teams = append(teams, team)
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (r *InMemRepo) ListReveals(ctx context.Context, teamID int64) ([]LetterReveal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reveals := make([]LetterReveal, len(r.reveals[teamID]))
	copy(reveals, r.reveals[teamID])
	return reveals, nil
}

func (r *InMemRepo) ListGuesses(ctx context.Context, teamID int64) ([]WordGuess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	guesses := make([]WordGuess, len(r.guesses[teamID]))
	copy(guesses, r.guesses[teamID])
	return guesses, nil
}

func (r *InMemRepo) UpdateTeamStanding(ctx context.Context, teamID int64, score int, wordIdx int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[teamID]
	if !ok {
		return fmt.Errorf("team %d not found", teamID)
	}
	team.Score = score
	team.WordIdx = wordIdx
	r.teams[teamID] = team
	return nil
}

func (r *InMemRepo) SubmitGuess(ctx context.Context, teamID int64, rawGuess string) (*WordGuess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team %d not found", teamID)
	}
	game, ok := r.games[team.GameID]
	if !ok {
		return nil, fmt.Errorf("game %d not found", team.GameID)
	}

	// the cursor is re-derived under the lock, not read from the team row
	wordIdx := ResolvedPrefix(len(game.Words), r.guesses[teamID])
	guess, err := EvaluateGuess(&game, wordIdx, rawGuess)
	if err != nil {
		return nil, err
	}

	r.nextGuessID++
	guess.ID = r.nextGuessID
	guess.TeamID = teamID
	r.guesses[teamID] = append(r.guesses[teamID], guess)
	return &guess, nil
}

func (r *InMemRepo) AddReveal(ctx context.Context, teamID int64, letter string) (*LetterReveal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team %d not found", teamID)
	}
	game, ok := r.games[team.GameID]
	if !ok {
		return nil, fmt.Errorf("game %d not found", team.GameID)
	}

	reveal := LetterReveal{
		TeamID:  teamID,
		WordIdx: ResolvedPrefix(len(game.Words), r.guesses[teamID]),
		Letter:  letter,
	}
	r.reveals[teamID] = append(r.reveals[teamID], reveal)
	return &reveal, nil
}
