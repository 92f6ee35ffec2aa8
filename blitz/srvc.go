package blitz

import (
	"context"
	"fmt"
	"time"

	"github.com/algocode/backend/srvcerror"
	"github.com/algocode/backend/user/auth"
)

type BlitzSrvc struct {
	repo Repo
	now  func() time.Time
}

func NewBlitzSrvc(repo Repo) *BlitzSrvc {
	return &BlitzSrvc{repo: repo, now: time.Now}
}

type ProblemView struct {
	ProblemID      int64 `json:"problem_id"`
	JudgeProblemID int64 `json:"judge_problem_id"`
	StartsNumber   int   `json:"starts_number"`
	Started        bool  `json:"started"`
	Bid            int   `json:"bid"`
	BidLeft        int   `json:"bid_left"`
	BidTimeLeft    int   `json:"bid_time_left"`
}

type ContestView struct {
	ContestID int64         `json:"contest_id"`
	Problems  []ProblemView `json:"problems"`
}

// ContestViewFor lists the contest's blitz problems with the caller's
// own start state: whether they opened each problem, the bid they placed
// and what it is worth right now. Bid fields are zero until the caller
// has started the problem.
func (s *BlitzSrvc) ContestViewFor(ctx context.Context, contestID int64, caller auth.Caller) (*ContestView, error) {
	if !caller.LoggedIn {
		return nil, srvcerror.ErrUnauthorized()
	}

	problems, err := s.repo.ListProblems(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blitz problems of contest %d: %w", contestID, err)
	}

	now := s.now()
	view := &ContestView{ContestID: contestID}
	for _, p := range problems {
		pv := ProblemView{ProblemID: p.ID, JudgeProblemID: p.ProblemID}

		pv.StartsNumber, err = s.repo.CountStarts(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count starts of problem %d: %w", p.ID, err)
		}

		start, err := s.repo.GetStart(ctx, p.ID, caller.UUID)
		if err != nil {
			return nil, fmt.Errorf("failed to get start of problem %d: %w", p.ID, err)
		}
		if start != nil {
			pv.Started = true
			pv.Bid = start.Bid
			pv.BidLeft = BidLeft(*start, now)
			pv.BidTimeLeft = BidTimeLeft(*start, now)
		}

		view.Problems = append(view.Problems, pv)
	}

	return view, nil
}

// OpenProblem starts the caller's clock on the problem. Opening an
// already-open problem changes nothing.
func (s *BlitzSrvc) OpenProblem(ctx context.Context, problemID int64, caller auth.Caller) error {
	if !caller.LoggedIn {
		return srvcerror.ErrUnauthorized()
	}

	problem, err := s.repo.GetProblem(ctx, problemID)
	if err != nil {
		return fmt.Errorf("failed to get blitz problem %d: %w", problemID, err)
	}
	if problem == nil {
		return newErrProblemNotFound()
	}

	if _, err := s.repo.CreateStart(ctx, problemID, caller.UUID, s.now()); err != nil {
		return fmt.Errorf("failed to create start of problem %d: %w", problemID, err)
	}
	return nil
}

// MakeBid sets the caller's bid on a problem they have opened. Rejected
// once the betting window has closed.
func (s *BlitzSrvc) MakeBid(ctx context.Context, problemID int64, caller auth.Caller, bid int) error {
	if !caller.LoggedIn {
		return srvcerror.ErrUnauthorized()
	}
	if bid < 0 {
		return newErrInvalidBid()
	}

	start, err := s.repo.GetStart(ctx, problemID, caller.UUID)
	if err != nil {
		return fmt.Errorf("failed to get start of problem %d: %w", problemID, err)
	}
	if start == nil {
		return newErrProblemNotStarted()
	}
	if !BidOpen(*start, s.now()) {
		return newErrBidWindowClosed()
	}

	if err := s.repo.UpdateBid(ctx, problemID, caller.UUID, bid); err != nil {
		return fmt.Errorf("failed to update bid on problem %d: %w", problemID, err)
	}
	return nil
}
