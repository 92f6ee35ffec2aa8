package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/algocode/backend/user"
)

type UserHttpHandler struct {
	userSrvc *user.UserSrvc
	JwtKey   []byte
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc: userSrvc,
		JwtKey:   jwtKey,
	}
}

func (h *UserHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/auth/login", h.Login)
	r.Post("/users", h.Register)
	r.Get("/users/me", h.WhoAmI)
	r.Get("/users/role", h.GetRole)
}
