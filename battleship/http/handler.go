package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/algocode/backend/battleship"
	"github.com/algocode/backend/httpjson"
	"github.com/algocode/backend/logger"
	"github.com/algocode/backend/user/auth"
)

type BattleshipHttpHandler struct {
	srvc *battleship.BattleshipSrvc
}

func NewBattleshipHttpHandler(srvc *battleship.BattleshipSrvc) *BattleshipHttpHandler {
	return &BattleshipHttpHandler{srvc: srvc}
}

func (h *BattleshipHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/battleship/{boardId}", h.GetBoard)
	r.Get("/battleship/{boardId}/admin", h.GetBoardAdmin)
}

func (h *BattleshipHttpHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := strconv.ParseInt(chi.URLParam(r, "boardId"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	view, err := h.srvc.PlayerView(r.Context(), boardID, caller)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, view)
}

func (h *BattleshipHttpHandler) GetBoardAdmin(w http.ResponseWriter, r *http.Request) {
	boardID, err := strconv.ParseInt(chi.URLParam(r, "boardId"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	caller := auth.CallerFromContext(r.Context())
	view, err := h.srvc.AdminView(r.Context(), boardID, caller)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, view)
}
