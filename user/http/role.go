package http

import (
	"net/http"

	"github.com/algocode/backend/httpjson"
	"github.com/algocode/backend/user/auth"
)

// GetRole returns the role of the currently logged-in user
func (h *UserHttpHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	type RoleResponse struct {
		Role string `json:"role"`
	}

	caller := auth.CallerFromContext(r.Context())
	if !caller.LoggedIn {
		httpjson.WriteSuccessJson(w, RoleResponse{Role: "guest"})
		return
	}

	if caller.IsAdmin {
		httpjson.WriteSuccessJson(w, RoleResponse{Role: "admin"})
		return
	}

	httpjson.WriteSuccessJson(w, RoleResponse{Role: "user"})
}
