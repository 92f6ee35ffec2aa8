package battleship

import "context"

// Repo is the persistence boundary for boards, teams, members and ships.
// Implementations return (nil, nil) for a missing board.
type Repo interface {
	GetBattleship(ctx context.Context, id int64) (*Battleship, error)
	// ListTeams returns the board's teams ordered by (Order, ID), each
	// with its members and ships.
	ListTeams(ctx context.Context, battleshipID int64) ([]TeamData, error)
}
