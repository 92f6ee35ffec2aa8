package battleship

import (
	"context"
	"errors"
	"fmt"

	"github.com/algocode/backend/standings"
	"github.com/algocode/backend/user/auth"
)

type BattleshipSrvc struct {
	repo Repo
	agg  *standings.Aggregator
}

func NewBattleshipSrvc(repo Repo, agg *standings.Aggregator) *BattleshipSrvc {
	return &BattleshipSrvc{repo: repo, agg: agg}
}

type BoardView struct {
	Name     string              `json:"name"`
	Problems []standings.Problem `json:"problem_names"`
	Fields   []TeamField         `json:"fields"`
}

// PlayerView renders the board with the RevealHitsOnly ship policy.
// Non-public boards are rejected for non-admin callers before any team
// or standings data is touched.
func (s *BattleshipSrvc) PlayerView(ctx context.Context, boardID int64, caller auth.Caller) (*BoardView, error) {
	board, err := s.repo.GetBattleship(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get battleship %d: %w", boardID, err)
	}
	if board == nil {
		return nil, newErrBoardNotFound()
	}
	if !board.Public && !caller.IsAdmin {
		return nil, newErrBoardNotPublic()
	}
	return s.render(ctx, board, RevealHitsOnly)
}

// AdminView renders the board with every ship cell exposed. Admin only.
func (s *BattleshipSrvc) AdminView(ctx context.Context, boardID int64, caller auth.Caller) (*BoardView, error) {
	if !caller.IsAdmin {
		return nil, newErrBoardNotPublic()
	}
	board, err := s.repo.GetBattleship(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get battleship %d: %w", boardID, err)
	}
	if board == nil {
		return nil, newErrBoardNotFound()
	}
	return s.render(ctx, board, RevealAll)
}

func (s *BattleshipSrvc) render(ctx context.Context, board *Battleship, policy ShipPolicy) (*BoardView, error) {
	teams, err := s.repo.ListTeams(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list battleship teams: %w", err)
	}

	var participants []int64
	for _, team := range teams {
		for _, member := range team.Members {
			participants = append(participants, member.ParticipantID)
		}
	}

	table, err := s.agg.Aggregate(ctx, board.ContestID, participants)
	if err != nil {
		if !errors.Is(err, standings.ErrNoJudge) {
			return nil, err
		}
		table = nil // board exists without standings: render the empty state
	}

	view := &BoardView{
		Name:   board.Name,
		Fields: Render(table, teams, policy),
	}
	if table != nil {
		view.Problems = table.Problems
	}
	return view, nil
}
