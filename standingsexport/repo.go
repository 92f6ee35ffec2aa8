package standingsexport

import "context"

// Repo stores contest rosters: which judge users belong to a contest
// and how they are displayed in exports.
type Repo interface {
	ListParticipants(ctx context.Context, contestID int64) ([]Participant, error)
}
