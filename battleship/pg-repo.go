package battleship

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

func (r *pgRepo) GetBattleship(ctx context.Context, id int64) (*Battleship, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, contest_id, public
		FROM battleships
		WHERE id = $1
	`, id)

	var board Battleship
	err := row.Scan(&board.ID, &board.Name, &board.ContestID, &board.Public)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select battleship: %w", err)
	}
	return &board, nil
}

func (r *pgRepo) ListTeams(ctx context.Context, battleshipID int64) ([]TeamData, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, battleship_id, name, team_order
		FROM battleship_teams
		WHERE battleship_id = $1
		ORDER BY team_order, id
	`, battleshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to select battleship teams: %w", err)
	}
	defer rows.Close()

	var teams []TeamData
	for rows.Next() {
		var team TeamData
		if err := rows.Scan(&team.ID, &team.BattleshipID, &team.Name, &team.Order); err != nil {
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
		if teams[i].Ships, err = r.selectShips(ctx, teams[i].ID); err != nil {
			return nil, err
		}
	}

	return teams, nil
}

func (r *pgRepo) selectMembers(ctx context.Context, teamID int64) ([]Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT participant_id, name, member_order
		FROM battleship_team_members
		WHERE team_id = $1
		ORDER BY member_order, participant_id
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to select team members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ParticipantID, &m.Name, &m.Order); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *pgRepo) selectShips(ctx context.Context, teamID int64) ([]Ship, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT x, y
		FROM battleship_ships
		WHERE team_id = $1
		ORDER BY id
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to select ships: %w", err)
	}
	defer rows.Close()

	var ships []Ship
	for rows.Next() {
		var ship Ship
		if err := rows.Scan(&ship.X, &ship.Y); err != nil {
			return nil, err
		}
		ships = append(ships, ship)
	}
	return ships, rows.Err()
}
