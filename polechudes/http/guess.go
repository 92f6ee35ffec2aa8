package http

import (
	"encoding/json"
	"net/http"

	"github.com/algocode/backend/httpjson"
	"github.com/algocode/backend/logger"
	"github.com/algocode/backend/user/auth"
)

// PostGuess submits a word guess. A length mismatch comes back as a
// success envelope with accepted=false and a message, never as a server
// failure.
func (h *PoleChudesHttpHandler) PostGuess(w http.ResponseWriter, r *http.Request) {
	teamID, ok := idParam(r, "teamId")
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type guessRequest struct {
		Word string `json:"word"`
	}

	var request guessRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	result, err := h.srvc.SubmitGuess(r.Context(), teamID, caller, request.Word)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result)
}

func (h *PoleChudesHttpHandler) PostLetter(w http.ResponseWriter, r *http.Request) {
	teamID, ok := idParam(r, "teamId")
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type letterRequest struct {
		Letter string `json:"letter"`
	}

	var request letterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	if err := h.srvc.RevealLetter(r.Context(), teamID, caller, request.Letter); err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, nil)
}
