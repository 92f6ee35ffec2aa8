package battleship_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algocode/backend/battleship"
	"github.com/algocode/backend/srvcerror"
	"github.com/algocode/backend/standings"
	"github.com/algocode/backend/user/auth"
)

type tableSource struct {
	table *standings.Table
	err   error
	calls int
}

func (s *tableSource) LoadContest(ctx context.Context, contestID int64, userIDs []int64) (*standings.Table, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func setupSrvc(t *testing.T, board battleship.Battleship, src standings.Source) *battleship.BattleshipSrvc {
	t.Helper()
	repo := battleship.NewInMemRepo()
	repo.PutBattleship(board, singleTeam(battleship.Ship{X: 0, Y: 0}))
	return battleship.NewBattleshipSrvc(repo, standings.NewAggregator(src))
}

func TestPlayerViewPublicBoard(t *testing.T) {
	srvc := setupSrvc(t,
		battleship.Battleship{ID: 1, Name: "Sea Battle", ContestID: 101, Public: true},
		&tableSource{table: twoProblemTable()})

	view, err := srvc.PlayerView(context.Background(), 1, auth.Caller{})
	require.NoError(t, err)
	assert.Equal(t, "Sea Battle", view.Name)
	require.Len(t, view.Fields, 1)
	assert.Equal(t, 1, view.Fields[0].ShipSuccess)
	require.Len(t, view.Problems, 2)
}

func TestPlayerViewNonPublicBoardRejected(t *testing.T) {
	src := &tableSource{table: twoProblemTable()}
	srvc := setupSrvc(t,
		battleship.Battleship{ID: 1, ContestID: 101, Public: false}, src)

	_, err := srvc.PlayerView(context.Background(), 1, auth.Caller{LoggedIn: true})
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, battleship.ErrCodeBoardNotPublic, srvcErr.ErrorCode())
	assert.Zero(t, src.calls, "standings must not be computed before the access check")
}

func TestPlayerViewNonPublicBoardAllowedForAdmin(t *testing.T) {
	srvc := setupSrvc(t,
		battleship.Battleship{ID: 1, ContestID: 101, Public: false},
		&tableSource{table: twoProblemTable()})

	_, err := srvc.PlayerView(context.Background(), 1, auth.Admin())
	assert.NoError(t, err)
}

func TestAdminViewRequiresAdmin(t *testing.T) {
	srvc := setupSrvc(t,
		battleship.Battleship{ID: 1, ContestID: 101, Public: true},
		&tableSource{table: twoProblemTable()})

	_, err := srvc.AdminView(context.Background(), 1, auth.Caller{LoggedIn: true})
	assert.Error(t, err)

	view, err := srvc.AdminView(context.Background(), 1, auth.Admin())
	require.NoError(t, err)
	assert.Equal(t, 1, view.Fields[0].ShipSuccess)
}

func TestViewBoardNotFound(t *testing.T) {
	srvc := battleship.NewBattleshipSrvc(
		battleship.NewInMemRepo(),
		standings.NewAggregator(&tableSource{table: twoProblemTable()}))

	_, err := srvc.PlayerView(context.Background(), 42, auth.Caller{})
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, battleship.ErrCodeBoardNotFound, srvcErr.ErrorCode())
}

func TestViewNoJudgeLinkRendersZeroedGrid(t *testing.T) {
	srvc := setupSrvc(t,
		battleship.Battleship{ID: 1, Name: "Sea Battle", ContestID: 101, Public: true},
		&tableSource{err: standings.ErrNoJudge})

	view, err := srvc.PlayerView(context.Background(), 1, auth.Caller{})
	require.NoError(t, err, "a board without judge standings must render, not fail")
	require.Len(t, view.Fields, 1)
	assert.Empty(t, view.Problems)
	assert.Zero(t, view.Fields[0].Success)
}
