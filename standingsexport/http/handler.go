package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/algocode/backend/httpjson"
	"github.com/algocode/backend/logger"
	"github.com/algocode/backend/srvcerror"
	"github.com/algocode/backend/standingsexport"
	"github.com/algocode/backend/user/auth"
)

type ExportHttpHandler struct {
	srvc *standingsexport.ExportSrvc
}

func NewExportHttpHandler(srvc *standingsexport.ExportSrvc) *ExportHttpHandler {
	return &ExportHttpHandler{srvc: srvc}
}

func (h *ExportHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/export/standings", h.GetStandings)
	r.Get("/export/contests/{contestId}/csv", h.GetContestCSV)
	r.Post("/export/snapshots", h.PostSnapshot)
}

// parseContestIDs reads the comma-separated "contests" query parameter.
func parseContestIDs(r *http.Request) ([]int64, error) {
	raw := r.URL.Query().Get("contests")
	if raw == "" {
		return nil, fmt.Errorf("contests parameter is required")
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid contest id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *ExportHttpHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if !caller.IsAdmin {
		httpjson.HandleError(logger.FromContext(r.Context()), w, srvcerror.ErrForbidden())
		return
	}

	contestIDs, err := parseContestIDs(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.srvc.BuildDocument(r.Context(), contestIDs)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, doc)
}

func (h *ExportHttpHandler) GetContestCSV(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if !caller.IsAdmin {
		httpjson.HandleError(logger.FromContext(r.Context()), w, srvcerror.ErrForbidden())
		return
	}

	contestID, err := strconv.ParseInt(chi.URLParam(r, "contestId"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	table, roster, err := h.srvc.ContestTable(r.Context(), contestID)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	if table == nil {
		http.Error(w, "contest has no judge link", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"contest-%d.csv\"", contestID))
	if err := standingsexport.WriteCSV(w, table, roster); err != nil {
		logger.FromContext(r.Context()).Error("failed to stream contest csv", "error", err)
	}
}

func (h *ExportHttpHandler) PostSnapshot(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if !caller.IsAdmin {
		httpjson.HandleError(logger.FromContext(r.Context()), w, srvcerror.ErrForbidden())
		return
	}

	contestIDs, err := parseContestIDs(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	url, err := h.srvc.Snapshot(r.Context(), contestIDs)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	type snapshotResponse struct {
		URL string `json:"url"`
	}
	httpjson.WriteSuccessJson(w, snapshotResponse{URL: url})
}
