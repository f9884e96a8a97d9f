package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

// CourseRepo encapsulates all database queries related to courses.
type CourseRepo struct{ DB *sql.DB }

func NewCourseRepo(db *sql.DB) *CourseRepo { return &CourseRepo{DB: db} }

// List returns all courses.
func (r *CourseRepo) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id,name,description,teacher_id FROM courses")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.TeacherID); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetByID fetches a course by id.  Returns ErrCourseNotFound when no row
// matches.
func (r *CourseRepo) GetByID(ctx context.Context, id int64) (model.Course, error) {
	var c model.Course
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,description,teacher_id FROM courses WHERE id=? LIMIT 1", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.TeacherID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Course{}, ErrCourseNotFound
	}
	return c, err
}

// Create inserts a course and returns its auto-generated id.
func (r *CourseRepo) Create(ctx context.Context, name string, description *string, teacherID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO courses (name, description, teacher_id) VALUES (?,?,?)",
		name, description, teacherID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
