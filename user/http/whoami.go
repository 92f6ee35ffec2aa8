package http

import (
	"log/slog"
	"net/http"

	"github.com/algocode/backend/httpjson"
	"github.com/algocode/backend/srvcerror"
	"github.com/algocode/backend/user/auth"
)

func (h *UserHttpHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if !caller.LoggedIn {
		httpjson.HandleError(slog.Default(), w, srvcerror.ErrUnauthorized())
		return
	}

	user, err := h.userSrvc.GetUserByUUID(r.Context(), caller.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, User{
		UUID:     user.UUID.String(),
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	})
}
