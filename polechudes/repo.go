package polechudes

import "context"

// Repo is the persistence boundary for games, teams, reveals and guesses.
// Reveals and guesses are append-only and always returned oldest-first.
// Implementations return (nil, nil) for missing games/teams.
type Repo interface {
	GetGame(ctx context.Context, id int64) (*Game, error)
	GetTeam(ctx context.Context, id int64) (*Team, error)
	// ListTeams returns the game's teams ordered by ID.
	ListTeams(ctx context.Context, gameID int64) ([]Team, error)
	ListReveals(ctx context.Context, teamID int64) ([]LetterReveal, error)
	ListGuesses(ctx context.Context, teamID int64) ([]WordGuess, error)
	// UpdateTeamStanding persists a recomputed score and word cursor.
	UpdateTeamStanding(ctx context.Context, teamID int64, score int, wordIdx int) error
	// SubmitGuess evaluates rawGuess against the team's current word and
	// appends the resulting record. The whole operation is serialized per
	// team (row lock or equivalent): the current word ordinal is re-derived
	// from the guess history inside the critical section, so at most one
	// winning guess can ever exist per (team, word). Returns
	// *LengthMismatchError or ErrAllWordsGuessed without persisting
	// anything.
	SubmitGuess(ctx context.Context, teamID int64, rawGuess string) (*WordGuess, error)
	// AddReveal appends a letter reveal for the team's current word.
	AddReveal(ctx context.Context, teamID int64, letter string) (*LetterReveal, error)
}
