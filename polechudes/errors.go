package polechudes

import (
	"net/http"

	"github.com/algocode/backend/srvcerror"
)

const ErrCodeGameNotFound = "pole_chudes_game_not_found"

func newErrGameNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeGameNotFound,
		"pole chudes game was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeTeamNotFound = "pole_chudes_team_not_found"

func newErrTeamNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNotFound,
		"pole chudes team was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotYourTeam = "pole_chudes_not_your_team"

func newErrNotYourTeam() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotYourTeam,
		"this team is not assigned to you",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeLetterNotInAlphabet = "pole_chudes_letter_not_in_alphabet"

func newErrLetterNotInAlphabet() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeLetterNotInAlphabet,
		"the letter is not part of the game alphabet",
	).SetHttpStatusCode(http.StatusBadRequest)
}
