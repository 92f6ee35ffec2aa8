package battleship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algocode/backend/battleship"
	"github.com/algocode/backend/standings"
)

func twoProblemTable() *standings.Table {
	return &standings.Table{
		ContestID: 101,
		Problems: []standings.Problem{
			{Index: 0, Short: "A"},
			{Index: 1, Short: "B"},
		},
		Users: map[int64][]standings.UserResult{
			7: {
				{Verdict: standings.VerdictOK, Penalty: 1},
				{Verdict: standings.VerdictRejected, Penalty: 2},
			},
		},
	}
}

func singleTeam(ships ...battleship.Ship) []battleship.TeamData {
	return []battleship.TeamData{{
		Team:    battleship.Team{ID: 1, Name: "Nautilus"},
		Members: []battleship.Member{{ParticipantID: 7, Name: "petya", Order: 0}},
		Ships:   ships,
	}}
}

func TestRenderPlayerViewShipOnSolvedCell(t *testing.T) {
	fields := battleship.Render(twoProblemTable(), singleTeam(battleship.Ship{X: 0, Y: 0}), battleship.RevealHitsOnly)

	require.Len(t, fields, 1)
	field := fields[0]
	require.Len(t, field.Rows, 1)

	assert.Equal(t, []int{battleship.CellShipHit, battleship.CellFailed}, field.Rows[0].Problems)
	assert.Equal(t, 3, field.Rows[0].Submits)
	assert.Equal(t, 1, field.Success)
	assert.Equal(t, 3, field.Fail)
	assert.Equal(t, 1, field.ShipSuccess)
	assert.Equal(t, 0, field.ShipFail)
}

func TestRenderPlayerViewShipOnUnsolvedCellStaysInvisible(t *testing.T) {
	fields := battleship.Render(twoProblemTable(), singleTeam(battleship.Ship{X: 1, Y: 0}), battleship.RevealHitsOnly)

	field := fields[0]
	assert.Equal(t, []int{battleship.CellSolved, battleship.CellFailed}, field.Rows[0].Problems)
	assert.Equal(t, 0, field.ShipSuccess)
	assert.Equal(t, 1, field.ShipFail, "solved non-ship cell counts as ship fail")
	assert.LessOrEqual(t, field.ShipSuccess, field.Success)
}

func TestRenderAdminViewMarksShipsUnconditionally(t *testing.T) {
	teams := singleTeam(battleship.Ship{X: 0, Y: 0}, battleship.Ship{X: 1, Y: 0})
	fields := battleship.Render(twoProblemTable(), teams, battleship.RevealAll)

	field := fields[0]
	assert.Equal(t, []int{battleship.CellShipHit, battleship.CellShipHit}, field.Rows[0].Problems)
	// ship on the unsolved cell still counts, so ship successes exceed successes
	assert.Equal(t, 2, field.ShipSuccess)
	assert.Equal(t, 1, field.Success)
	assert.Equal(t, field.Success-field.ShipSuccess, field.ShipFail)
}

func TestRenderShipFailInvariant(t *testing.T) {
	for _, policy := range []battleship.ShipPolicy{battleship.RevealHitsOnly, battleship.RevealAll} {
		teams := singleTeam(battleship.Ship{X: 0, Y: 0}, battleship.Ship{X: 1, Y: 0})
		fields := battleship.Render(twoProblemTable(), teams, policy)
		for _, field := range fields {
			assert.Equal(t, field.Success-field.ShipSuccess, field.ShipFail)
		}
	}
}

func TestRenderRowsOrderedByMemberOrderThenID(t *testing.T) {
	table := twoProblemTable()
	table.Users[8] = []standings.UserResult{{}, {}}
	teams := []battleship.TeamData{{
		Team: battleship.Team{ID: 1, Name: "Nautilus"},
		Members: []battleship.Member{
			{ParticipantID: 8, Name: "vasya", Order: 1},
			{ParticipantID: 7, Name: "petya", Order: 0},
		},
	}}

	fields := battleship.Render(table, teams, battleship.RevealHitsOnly)
	require.Len(t, fields[0].Rows, 2)
	assert.Equal(t, "petya", fields[0].Rows[0].Name)
	assert.Equal(t, "vasya", fields[0].Rows[1].Name)
}

func TestRenderAbsentStandingsGivesZeroedGrid(t *testing.T) {
	teams := singleTeam(battleship.Ship{X: 0, Y: 0})
	fields := battleship.Render(nil, teams, battleship.RevealHitsOnly)

	require.Len(t, fields, 1)
	field := fields[0]
	require.Len(t, field.Rows, 1)
	assert.Empty(t, field.Rows[0].Problems)
	assert.Zero(t, field.Success)
	assert.Zero(t, field.Fail)
	assert.Zero(t, field.ShipSuccess)
	assert.Zero(t, field.ShipFail)
}

func TestRenderIgnoresOutOfBoundsShips(t *testing.T) {
	teams := singleTeam(battleship.Ship{X: 5, Y: 0}, battleship.Ship{X: 0, Y: 3})
	fields := battleship.Render(twoProblemTable(), teams, battleship.RevealAll)
	assert.Zero(t, fields[0].ShipSuccess)
}
