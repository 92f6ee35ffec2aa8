package blitz_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algocode/backend/blitz"
	"github.com/algocode/backend/srvcerror"
	"github.com/algocode/backend/user/auth"
)

func setup(t *testing.T) (*blitz.BlitzSrvc, *blitz.InMemRepo, auth.Caller) {
	t.Helper()
	repo := blitz.NewInMemRepo()
	repo.PutProblem(blitz.Problem{ID: 1, ContestID: 50, ProblemID: 201})
	repo.PutProblem(blitz.Problem{ID: 2, ContestID: 50, ProblemID: 202})

	srvc := blitz.NewBlitzSrvc(repo)
	player := auth.Caller{LoggedIn: true, UUID: uuid.New(), Username: "petya"}
	return srvc, repo, player
}

func TestContestViewBeforeAndAfterOpen(t *testing.T) {
	srvc, _, player := setup(t)
	ctx := context.Background()

	view, err := srvc.ContestViewFor(ctx, 50, player)
	require.NoError(t, err)
	require.Len(t, view.Problems, 2)
	assert.Equal(t, int64(201), view.Problems[0].JudgeProblemID)
	for _, p := range view.Problems {
		assert.False(t, p.Started)
		assert.Zero(t, p.StartsNumber)
	}

	require.NoError(t, srvc.OpenProblem(ctx, 1, player))

	view, err = srvc.ContestViewFor(ctx, 50, player)
	require.NoError(t, err)
	opened := view.Problems[0]
	assert.True(t, opened.Started)
	assert.Equal(t, 1, opened.StartsNumber)
	assert.Zero(t, opened.Bid)
	assert.Greater(t, opened.BidTimeLeft, 0)
	assert.False(t, view.Problems[1].Started)
}

func TestContestViewShowsOnlyOwnStart(t *testing.T) {
	srvc, _, player := setup(t)
	ctx := context.Background()
	other := auth.Caller{LoggedIn: true, UUID: uuid.New()}

	require.NoError(t, srvc.OpenProblem(ctx, 1, other))

	view, err := srvc.ContestViewFor(ctx, 50, player)
	require.NoError(t, err)
	// the start counter is public, the started flag is not
	assert.Equal(t, 1, view.Problems[0].StartsNumber)
	assert.False(t, view.Problems[0].Started)
}

func TestOpenProblemIdempotent(t *testing.T) {
	srvc, repo, player := setup(t)
	ctx := context.Background()

	require.NoError(t, srvc.OpenProblem(ctx, 1, player))
	first, err := repo.GetStart(ctx, 1, player.UUID)
	require.NoError(t, err)
	require.NotNil(t, first)

	require.NoError(t, srvc.MakeBid(ctx, 1, player, 7))
	require.NoError(t, srvc.OpenProblem(ctx, 1, player))

	again, err := repo.GetStart(ctx, 1, player.UUID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, first.Time, again.Time, "reopening must not restart the clock")
	assert.Equal(t, 7, again.Bid, "reopening must not reset the bid")

	count, err := repo.CountStarts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpenProblemNotFound(t *testing.T) {
	srvc, _, player := setup(t)

	err := srvc.OpenProblem(context.Background(), 999, player)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, blitz.ErrCodeProblemNotFound, srvcErr.ErrorCode())
}

func TestMakeBidWithinWindow(t *testing.T) {
	srvc, _, player := setup(t)
	ctx := context.Background()

	require.NoError(t, srvc.OpenProblem(ctx, 1, player))
	require.NoError(t, srvc.MakeBid(ctx, 1, player, 5))
	// a bid may be changed while the window is open
	require.NoError(t, srvc.MakeBid(ctx, 1, player, 8))

	view, err := srvc.ContestViewFor(ctx, 50, player)
	require.NoError(t, err)
	assert.Equal(t, 8, view.Problems[0].Bid)
	assert.Equal(t, 8, view.Problems[0].BidLeft)
}

func TestMakeBidAfterWindowClosed(t *testing.T) {
	srvc, repo, player := setup(t)
	ctx := context.Background()

	repo.PutStart(blitz.Start{
		ProblemID: 1,
		UserUUID:  player.UUID,
		Time:      time.Now().Add(-4 * time.Minute),
		Bid:       5,
	})

	err := srvc.MakeBid(ctx, 1, player, 9)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, blitz.ErrCodeBidWindowClosed, srvcErr.ErrorCode())

	start, err := repo.GetStart(ctx, 1, player.UUID)
	require.NoError(t, err)
	assert.Equal(t, 5, start.Bid, "late bid must not be stored")
}

func TestMakeBidValidation(t *testing.T) {
	srvc, _, player := setup(t)
	ctx := context.Background()

	t.Run("not started", func(t *testing.T) {
		err := srvc.MakeBid(ctx, 1, player, 5)
		srvcErr := &srvcerror.Error{}
		require.ErrorAs(t, err, &srvcErr)
		assert.Equal(t, blitz.ErrCodeProblemNotStarted, srvcErr.ErrorCode())
	})

	t.Run("negative bid", func(t *testing.T) {
		require.NoError(t, srvc.OpenProblem(ctx, 1, player))
		err := srvc.MakeBid(ctx, 1, player, -1)
		srvcErr := &srvcerror.Error{}
		require.ErrorAs(t, err, &srvcErr)
		assert.Equal(t, blitz.ErrCodeInvalidBid, srvcErr.ErrorCode())
	})
}

func TestBlitzRequiresLogin(t *testing.T) {
	srvc, _, _ := setup(t)
	ctx := context.Background()
	anon := auth.Caller{}

	_, err := srvc.ContestViewFor(ctx, 50, anon)
	assertUnauthorized(t, err)
	assertUnauthorized(t, srvc.OpenProblem(ctx, 1, anon))
	assertUnauthorized(t, srvc.MakeBid(ctx, 1, anon, 5))
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, srvcerror.ErrCodeUnauthorized, srvcErr.ErrorCode())
}
