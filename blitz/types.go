package blitz

import (
	"time"

	"github.com/google/uuid"
)

// Problem is one timed problem of a contest's blitz round. The round is
// a betting game: a player opens a problem, which starts its clock, and
// then has a short window to bet on how fast they will solve it.
type Problem struct {
	ID        int64
	ContestID int64
	ProblemID int64 // judge-side problem id, defines the listing order
}

// Start is the persisted fact "this user opened this problem at this
// time". At most one exists per (problem, user); the bid may be rewritten
// while the betting window is open, the start time never changes.
type Start struct {
	ProblemID int64
	UserUUID  uuid.UUID
	Time      time.Time
	Bid       int
}
