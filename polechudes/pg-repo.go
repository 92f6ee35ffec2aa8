package polechudes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) Repo {
	return &pgRepo{pool: pool}
}

func (r *pgRepo) GetGame(ctx context.Context, id int64) (*Game, error) {
	return getGame(ctx, r.pool, id)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getGame(ctx context.Context, q querier, id int64) (*Game, error) {
	row := q.QueryRow(ctx, `
		SELECT id, name, contest_id, alphabet, guess_bonus, miss_penalty
		FROM pc_games
		WHERE id = $1
	`, id)

	var game Game
	err := row.Scan(&game.ID, &game.Name, &game.ContestID,
		&game.Alphabet, &game.GuessBonus, &game.MissPenalty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select game: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT hint, text
		FROM pc_words
		WHERE game_id = $1
		ORDER BY word_idx
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var word Word
		if err := rows.Scan(&word.Hint, &word.Text); err != nil {
			return nil, err
		}
		game.Words = append(game.Words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &game, nil
}

func (r *pgRepo) GetTeam(ctx context.Context, id int64) (*Team, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, game_id, name, user_uuid, score, word_idx
		FROM pc_teams
		WHERE id = $1
	`, id)

	var team Team
	err := row.Scan(&team.ID, &team.GameID, &team.Name,
		&team.UserUUID, &team.Score, &team.WordIdx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select team: %w", err)
	}

	if team.Members, err = r.selectMembers(ctx, team.ID); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *pgRepo) ListTeams(ctx context.Context, gameID int64) ([]Team, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, game_id, name, user_uuid, score, word_idx
		FROM pc_teams
		WHERE game_id = $1
		ORDER BY id
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to select teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var team Team
		err := rows.Scan(&team.ID, &team.GameID, &team.Name,
			&team.UserUUID, &team.Score, &team.WordIdx)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range teams {
		if teams[i].Members, err = r.selectMembers(ctx, teams[i].ID); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func (r *pgRepo) selectMembers(ctx context.Context, teamID int64) ([]Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT participant_id, name
		FROM pc_team_members
		WHERE team_id = $1
		ORDER BY participant_id
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to select team members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ParticipantID, &m.Name); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *pgRepo) ListReveals(ctx context.Context, teamID int64) ([]LetterReveal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT team_id, word_idx, letter
		FROM pc_letters
		WHERE team_id = $1
		ORDER BY id
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to select reveals: %w", err)
	}
	defer rows.Close()

	var reveals []LetterReveal
	for rows.Next() {
		var rev LetterReveal
		if err := rows.Scan(&rev.TeamID, &rev.WordIdx, &rev.Letter); err != nil {
			return nil, err
		}
		reveals = append(reveals, rev)
	}
	return reveals, rows.Err()
}

func (r *pgRepo) ListGuesses(ctx context.Context, teamID int64) ([]WordGuess, error) {
	return listGuesses(ctx, r.pool, teamID)
}

func listGuesses(ctx context.Context, q querier, teamID int64) ([]WordGuess, error) {
	rows, err := q.Query(ctx, `
		SELECT id, team_id, word_idx, guess, guessed, score
		FROM pc_guesses
		WHERE team_id = $1
		ORDER BY id
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to select guesses: %w", err)
	}
	defer rows.Close()

	var guesses []WordGuess
	for rows.Next() {
		var g WordGuess
		err := rows.Scan(&g.ID, &g.TeamID, &g.WordIdx, &g.Guess, &g.Guessed, &g.Score)
		if err != nil {
			return nil, err
		}
		guesses = append(guesses, g)
	}
	return guesses, rows.Err()
}

func (r *pgRepo) UpdateTeamStanding(ctx context.Context, teamID int64, score int, wordIdx int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE pc_teams
		SET score = $2, word_idx = $3
		WHERE id = $1
	`, teamID, score, wordIdx)
	if err != nil {
		return fmt.Errorf("failed to update team standing: %w", err)
	}
	return nil
}

// SubmitGuess locks the team row for the duration of the transaction and
// re-derives the current word ordinal from the guess history before
// appending, so two concurrent submissions cannot both win one word.
func (r *pgRepo) SubmitGuess(ctx context.Context, teamID int64, rawGuess string) (*WordGuess, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // safe to call, does nothing if already committed

	gameID, err := lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	game, err := getGame(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	guesses, err := listGuesses(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	wordIdx := ResolvedPrefix(len(game.Words), guesses)
	guess, err := EvaluateGuess(game, wordIdx, rawGuess)
	if err != nil {
		return nil, err
	}
	guess.TeamID = teamID

	row := tx.QueryRow(ctx, `
		INSERT INTO pc_guesses (team_id, word_idx, guess, guessed, score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, guess.TeamID, guess.WordIdx, guess.Guess, guess.Guessed, guess.Score)
	if err := row.Scan(&guess.ID); err != nil {
		return nil, fmt.Errorf("failed to insert guess: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit guess: %w", err)
	}
	return &guess, nil
}

func (r *pgRepo) AddReveal(ctx context.Context, teamID int64, letter string) (*LetterReveal, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	gameID, err := lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	game, err := getGame(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	guesses, err := listGuesses(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	reveal := LetterReveal{
		TeamID:  teamID,
		WordIdx: ResolvedPrefix(len(game.Words), guesses),
		Letter:  letter,
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO pc_letters (team_id, word_idx, letter)
		VALUES ($1, $2, $3)
	`, reveal.TeamID, reveal.WordIdx, reveal.Letter)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reveal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit reveal: %w", err)
	}
	return &reveal, nil
}

func lockTeam(ctx context.Context, tx pgx.Tx, teamID int64) (gameID int64, err error) {
	row := tx.QueryRow(ctx, `
		SELECT game_id
		FROM pc_teams
		WHERE id = $1
		FOR UPDATE
	`, teamID)
	if err := row.Scan(&gameID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("team %d not found", teamID)
		}
		return 0, fmt.Errorf("failed to lock team: %w", err)
	}
	return gameID, nil
}
