package battleship

import (
	"net/http"

	"github.com/algocode/backend/srvcerror"
)

const ErrCodeBoardNotFound = "battleship_not_found"

func newErrBoardNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeBoardNotFound,
		"battleship board was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeBoardNotPublic = "battleship_not_public"

func newErrBoardNotPublic() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeBoardNotPublic,
		"battleship board is not public",
	).SetHttpStatusCode(http.StatusForbidden)
}
