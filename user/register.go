package user

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserParams struct {
	Username string
	Email    string
	Password string
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (res *User, err error) {
	if err := validateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}

	all, err := selectAllUsers(ctx, s.postgres)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, user := range all {
		// username must be unique
		if user.Username == p.Username {
			return nil, newErrUsernameExists()
		}
		// email must be unique
		if user.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &dbUser{
		UUID:      uuid.New(),
		Username:  p.Username,
		Email:     p.Email,
		BcryptPwd: string(bcryptPwd),
		IsAdmin:   false,
		CreatedAt: time.Now(),
	}

	err = insertUser(ctx, s.postgres, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	res = &User{
		UUID:     row.UUID,
		Username: row.Username,
		Email:    row.Email,
		IsAdmin:  row.IsAdmin,
	}

	return res, nil
}

type dbUser struct {
	UUID      uuid.UUID
	Username  string
	Email     string
	BcryptPwd string
	IsAdmin   bool
	CreatedAt time.Time
}

func selectAllUsers(ctx context.Context, pg *pgxpool.Pool) ([]dbUser, error) {
	rows, err := pg.Query(ctx, `
		SELECT uuid, username, email, bcrypt_pwd, is_admin, created_at
		FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []dbUser
	for rows.Next() {
		var user dbUser
		err := rows.Scan(
			&user.UUID,
			&user.Username,
			&user.Email,
			&user.BcryptPwd,
			&user.IsAdmin,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func insertUser(ctx context.Context, pg *pgxpool.Pool, user *dbUser) error {
	_, err := pg.Exec(ctx, `
		INSERT INTO users (uuid, username, email, bcrypt_pwd, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		user.UUID,
		user.Username,
		user.Email,
		user.BcryptPwd,
		user.IsAdmin,
		user.CreatedAt,
	)
	return err
}

func validateUsername(username string) error {
	const minUsernameLength = 2
	const maxUsernameLength = 32
	if len(username) < minUsernameLength {
		return newErrUsernameTooShort(minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newErrUsernameTooLong()
	}
	return nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) > maxEmailLength {
		return newErrEmailTooLong()
	}

	if len(email) == 0 {
		return newErrEmailEmpty()
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return newErrEmailInvalid()
	}

	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}
