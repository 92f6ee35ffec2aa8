package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserSrvc struct {
	postgres *pgxpool.Pool
}

func NewUserSrvc(pg *pgxpool.Pool) *UserSrvc {
	return &UserSrvc{postgres: pg}
}

type User struct {
	UUID     uuid.UUID
	Username string
	Email    string
	IsAdmin  bool
}

func (s *UserSrvc) GetUserByUUID(ctx context.Context, id uuid.UUID) (*User, error) {
	all, err := selectAllUsers(ctx, s.postgres)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	for _, u := range all {
		if u.UUID == id {
			return &User{
				UUID:     u.UUID,
				Username: u.Username,
				Email:    u.Email,
				IsAdmin:  u.IsAdmin,
			}, nil
		}
	}

	return nil, newErrUserNotFound()
}

func (s *UserSrvc) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	all, err := selectAllUsers(ctx, s.postgres)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	for _, u := range all {
		if u.Username == username {
			return &User{
				UUID:     u.UUID,
				Username: u.Username,
				Email:    u.Email,
				IsAdmin:  u.IsAdmin,
			}, nil
		}
	}

	return nil, newErrUserNotFound()
}
