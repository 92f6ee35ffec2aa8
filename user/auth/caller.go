package auth

import (
	"context"

	"github.com/google/uuid"
)

// Caller is the identity acting on a request, derived from JWT claims.
// The zero value is an anonymous caller.
type Caller struct {
	LoggedIn bool
	UUID     uuid.UUID
	Username string
	IsAdmin  bool
}

func Admin() Caller {
	return Caller{LoggedIn: true, Username: "admin", IsAdmin: true}
}

func CallerFromContext(ctx context.Context) Caller {
	claims, ok := ctx.Value(CtxJwtClaimsKey).(*JwtClaims)
	if !ok || claims == nil {
		return Caller{}
	}
	id, err := uuid.Parse(claims.UUID)
	if err != nil {
		return Caller{}
	}
	return Caller{
		LoggedIn: true,
		UUID:     id,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}
}
