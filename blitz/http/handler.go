package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/algocode/backend/blitz"
	"github.com/algocode/backend/httpjson"
	"github.com/algocode/backend/logger"
	"github.com/algocode/backend/user/auth"
)

type BlitzHttpHandler struct {
	srvc *blitz.BlitzSrvc
}

func NewBlitzHttpHandler(srvc *blitz.BlitzSrvc) *BlitzHttpHandler {
	return &BlitzHttpHandler{srvc: srvc}
}

func (h *BlitzHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/blitz/{contestId}", h.GetContest)
	r.Post("/blitz/problems/{problemId}/open", h.PostOpen)
	r.Post("/blitz/problems/{problemId}/bid", h.PostBid)
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (h *BlitzHttpHandler) GetContest(w http.ResponseWriter, r *http.Request) {
	contestID, ok := idParam(r, "contestId")
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	view, err := h.srvc.ContestViewFor(r.Context(), contestID, caller)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, view)
}

func (h *BlitzHttpHandler) PostOpen(w http.ResponseWriter, r *http.Request) {
	problemID, ok := idParam(r, "problemId")
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	if err := h.srvc.OpenProblem(r.Context(), problemID, caller); err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, nil)
}

func (h *BlitzHttpHandler) PostBid(w http.ResponseWriter, r *http.Request) {
	problemID, ok := idParam(r, "problemId")
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type bidRequest struct {
		Bid int `json:"bid"`
	}
	var request bidRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	if err := h.srvc.MakeBid(r.Context(), problemID, caller, request.Bid); err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, nil)
}
