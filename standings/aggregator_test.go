package standings_test

import (
	"context"
	"testing"

	"github.com/algocode/backend/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	table *standings.Table
	err   error
}

func (s *stubSource) LoadContest(ctx context.Context, contestID int64, userIDs []int64) (*standings.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func threeProblemTable() *standings.Table {
	return &standings.Table{
		ContestID: 101,
		Name:      "Div 2 Round 1",
		Problems: []standings.Problem{
			{Index: 0, Short: "A"},
			{Index: 1, Short: "B"},
			{Index: 2, Short: "C"},
		},
		Users: map[int64][]standings.UserResult{
			7: {
				{Verdict: standings.VerdictOK, Penalty: 1},
				{Verdict: standings.VerdictRejected, Penalty: 2},
			},
		},
	}
}

func TestAggregateAlignsEveryRowToProblemCount(t *testing.T) {
	agg := standings.NewAggregator(&stubSource{table: threeProblemTable()})

	table, err := agg.Aggregate(context.Background(), 101, []int64{7, 8, 9})
	require.NoError(t, err)

	require.Len(t, table.Problems, 3)
	for _, id := range []int64{7, 8, 9} {
		row, ok := table.Users[id]
		require.True(t, ok, "user %d must have a row", id)
		assert.Len(t, row, len(table.Problems), "user %d row must match problem count", id)
	}

	// partial row got padded with none results
	assert.Equal(t, standings.VerdictOK, table.Users[7][0].Verdict)
	assert.Equal(t, standings.VerdictNone, table.Users[7][2].Verdict)
	assert.Equal(t, 0, table.Users[7][2].Penalty)
}

func TestAggregateUserWithZeroSubmissions(t *testing.T) {
	agg := standings.NewAggregator(&stubSource{table: threeProblemTable()})

	table, err := agg.Aggregate(context.Background(), 101, []int64{42})
	require.NoError(t, err)

	row := table.Users[42]
	require.Len(t, row, 3)
	for _, res := range row {
		assert.Equal(t, standings.VerdictNone, res.Verdict)
		assert.Equal(t, 0, res.Penalty)
	}
}

func TestAggregateNoJudgeLink(t *testing.T) {
	agg := standings.NewAggregator(&stubSource{err: standings.ErrNoJudge})

	table, err := agg.Aggregate(context.Background(), 101, []int64{7})
	assert.Nil(t, table)
	assert.ErrorIs(t, err, standings.ErrNoJudge)
}

func TestAggregateDistinguishesAbsentFromEmpty(t *testing.T) {
	empty := &standings.Table{ContestID: 101, Users: map[int64][]standings.UserResult{}}
	agg := standings.NewAggregator(&stubSource{table: empty})

	table, err := agg.Aggregate(context.Background(), 101, []int64{7})
	require.NoError(t, err)
	require.NotNil(t, table, "zero problems is a valid table, not absence")
	assert.Empty(t, table.Problems)
	assert.Len(t, table.Users[7], 0)
}

func TestTableRowFallback(t *testing.T) {
	table := threeProblemTable()
	row := table.Row(999)
	require.Len(t, row, 3)
	assert.Equal(t, standings.VerdictNone, row[0].Verdict)
}
