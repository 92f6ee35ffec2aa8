package battleship

// Battleship is one game board tied to a contest. Non-public boards are
// visible to admins only.
type Battleship struct {
	ID        int64
	Name      string
	ContestID int64
	Public    bool
}

type Team struct {
	ID           int64
	BattleshipID int64
	Name         string
	Order        int
}

// Member ordering (Order, then ParticipantID) decides which row of the
// team's grid the participant occupies.
type Member struct {
	ParticipantID int64
	Name          string
	Order         int
}

// Ship is a fixed board coordinate: X is a problem ordinal, Y a row
// ordinal within the team. Placement is independent of solve state.
type Ship struct {
	X int
	Y int
}

// TeamData is a team with everything needed to render its grid.
type TeamData struct {
	Team
	Members []Member
	Ships   []Ship
}
