package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/algocode/backend/httpjson"
	"github.com/algocode/backend/logger"
	"github.com/algocode/backend/polechudes"
	"github.com/algocode/backend/user/auth"
)

type PoleChudesHttpHandler struct {
	srvc *polechudes.PoleChudesSrvc
}

func NewPoleChudesHttpHandler(srvc *polechudes.PoleChudesSrvc) *PoleChudesHttpHandler {
	return &PoleChudesHttpHandler{srvc: srvc}
}

func (h *PoleChudesHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/polechudes/{gameId}/teams", h.GetTeams)
	r.Get("/polechudes/teams/{teamId}", h.GetTeam)
	r.Post("/polechudes/teams/{teamId}/guesses", h.PostGuess)
	r.Post("/polechudes/teams/{teamId}/letters", h.PostLetter)
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (h *PoleChudesHttpHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	gameID, ok := idParam(r, "gameId")
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	list, err := h.srvc.ListTeams(r.Context(), gameID)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, list)
}

func (h *PoleChudesHttpHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := idParam(r, "teamId")
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	view, err := h.srvc.TeamViewFor(r.Context(), teamID, caller)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, view)
}
