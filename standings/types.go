package standings

// Verdict is the judging outcome for a (user, problem) pair.
// VerdictNone means the user never submitted anything for the problem.
type Verdict string

const (
	VerdictNone     Verdict = ""
	VerdictOK       Verdict = "OK"
	VerdictRejected Verdict = "RJ"
)

// Problem is a contest problem. Index is the problem's ordinal in the
// contest's fixed problem order; Short is its display label ("A", "B", ...).
type Problem struct {
	Index int    `json:"index"`
	Short string `json:"short"`
}

// UserResult is one cell of the standings table. Penalty counts all
// submission attempts charged for the problem, successful or not.
type UserResult struct {
	Verdict Verdict `json:"verdict"`
	Penalty int     `json:"penalty"`
}

// Table is the canonical standings form consumed by every derived view.
// Every requested participant has a row of exactly len(Problems) results,
// aligned by problem ordinal; a participant with no submissions has a row
// of all-none results.
type Table struct {
	ContestID int64                  `json:"contest_id"`
	Name      string                 `json:"name"`
	Problems  []Problem              `json:"problems"`
	Users     map[int64][]UserResult `json:"users"`
}

// EmptyRow returns an all-none result row of the table's width.
func (t *Table) EmptyRow() []UserResult {
	return make([]UserResult, len(t.Problems))
}

// Row returns the participant's result row, or an all-none row if the
// table has no entry for the participant.
func (t *Table) Row(userID int64) []UserResult {
	if row, ok := t.Users[userID]; ok {
		return row
	}
	return t.EmptyRow()
}
