package repository

import (
	"context"
	"database/sql"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

// AdminRepo serves the administrative listing and dashboard queries.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// ListUsers returns every account as a summary row.  The users table has no
// separate username column, so the display name doubles as the username.
func (r *AdminRepo) ListUsers(ctx context.Context) ([]model.AccountSummary, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, email, role FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.AccountSummary{}
	for rows.Next() {
		var u model.AccountSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Dashboard computes the admin dashboard counters in four scalar queries.
func (r *AdminRepo) Dashboard(ctx context.Context) (model.AdminDashboard, error) {
	var d model.AdminDashboard
	queries := []struct {
		sql  string
		dest *int64
	}{
		{"SELECT COUNT(*) FROM users", &d.TotalUsers},
		{"SELECT COUNT(*) FROM courses", &d.TotalCourses},
		{"SELECT COUNT(*) FROM users WHERE role='student'", &d.TotalStudents},
		{"SELECT COUNT(*) FROM users WHERE role='teacher'", &d.TotalTeachers},
	}
	for _, q := range queries {
		if err := r.DB.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
			return d, err
		}
	}
	return d, nil
}
