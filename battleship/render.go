package battleship

import (
	"sort"

	"github.com/algocode/backend/standings"
)

// Grid cell values.
const (
	CellFailed    = -1 // attempted with nonzero penalty, never solved
	CellUntouched = 0
	CellSolved    = 1
	CellShipHit   = 2
)

// ShipPolicy selects how ship cells are overlaid on the solved grid.
type ShipPolicy int

const (
	// RevealHitsOnly marks a ship cell as hit only if the underlying
	// problem is already solved; ships on unsolved cells stay invisible.
	// This is the player-facing view.
	RevealHitsOnly ShipPolicy = iota
	// RevealAll marks every ship cell as hit regardless of solve state,
	// exposing ship placement. This is the admin view.
	RevealAll
)

type Row struct {
	Name     string `json:"name"`
	Problems []int  `json:"problems"`
	Submits  int    `json:"submits"`
}

type TeamField struct {
	Name        string `json:"name"`
	Rows        []Row  `json:"field"`
	Success     int    `json:"success"`
	Fail        int    `json:"fail"`
	ShipSuccess int    `json:"ship_success"`
	ShipFail    int    `json:"ship_fail"`
}

// Render builds the per-team grids from canonical standings. A nil table
// (contest without a judge link) yields zeroed zero-width grids rather
// than an error. The invariant ShipFail == Success - ShipSuccess holds
// for every team under both policies.
func Render(table *standings.Table, teams []TeamData, policy ShipPolicy) []TeamField {
	width := 0
	if table != nil {
		width = len(table.Problems)
	}

	fields := make([]TeamField, len(teams))
	for i, team := range teams {
		field := TeamField{Name: team.Name}

		members := make([]Member, len(team.Members))
		copy(members, team.Members)
		sort.SliceStable(members, func(a, b int) bool {
			if members[a].Order != members[b].Order {
				return members[a].Order < members[b].Order
			}
			return members[a].ParticipantID < members[b].ParticipantID
		})

		field.Rows = make([]Row, len(members))
		for j, member := range members {
			row := Row{Name: member.Name, Problems: make([]int, width)}
			if table != nil {
				for p, res := range table.Row(member.ParticipantID) {
					row.Submits += res.Penalty
					field.Fail += res.Penalty
					if res.Verdict == standings.VerdictOK {
						row.Problems[p] = CellSolved
						field.Success++
					} else if res.Penalty > 0 {
						row.Problems[p] = CellFailed
					}
				}
			}
			field.Rows[j] = row
		}

		for _, ship := range team.Ships {
			if ship.Y < 0 || ship.Y >= len(field.Rows) {
				continue
			}
			if ship.X < 0 || ship.X >= width {
				continue
			}
			cell := &field.Rows[ship.Y].Problems[ship.X]
			switch policy {
			case RevealHitsOnly:
				if *cell == CellSolved {
					*cell = CellShipHit
					field.ShipSuccess++
				}
			case RevealAll:
				*cell = CellShipHit
				field.ShipSuccess++
			}
		}
		field.ShipFail = field.Success - field.ShipSuccess

		fields[i] = field
	}

	return fields
}
