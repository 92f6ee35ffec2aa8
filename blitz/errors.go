package blitz

import (
	"net/http"

	"github.com/algocode/backend/srvcerror"
)

const ErrCodeProblemNotFound = "blitz_problem_not_found"

func newErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"blitz problem was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeProblemNotStarted = "blitz_problem_not_started"

func newErrProblemNotStarted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotStarted,
		"open the problem before placing a bid",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeBidWindowClosed = "blitz_bid_window_closed"

func newErrBidWindowClosed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeBidWindowClosed,
		"the betting window for this problem has closed",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidBid = "blitz_invalid_bid"

func newErrInvalidBid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidBid,
		"bid must not be negative",
	).SetHttpStatusCode(http.StatusBadRequest)
}
