package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// GetByEmail fetches an account by normalized email.  Returns
// ErrUserNotFound when no row matches; every other error is a driver
// failure the caller should treat as internal.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,password,email,role,name,grade,school_name,school_province,school_subscription_status,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Password, &u.Email, &u.Role, &u.Name,
		&u.Grade, &u.SchoolName, &u.SchoolProvince, &u.SchoolSubscriptionStatus, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}
