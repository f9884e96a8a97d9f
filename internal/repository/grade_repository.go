package repository

import (
	"context"
	"database/sql"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

type GradeRepo struct{ DB *sql.DB }

func NewGradeRepo(db *sql.DB) *GradeRepo { return &GradeRepo{DB: db} }

func (r *GradeRepo) scanList(rows *sql.Rows) ([]model.Grade, error) {
	grades := []model.Grade{}
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.StudentID, &g.CourseID, &g.Grade, &g.GradeType); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// List returns every grade record.
func (r *GradeRepo) List(ctx context.Context) ([]model.Grade, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,student_id,course_id,grade,grade_type FROM grades")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListByStudent returns grades for one student.
func (r *GradeRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Grade, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,student_id,course_id,grade,grade_type FROM grades WHERE student_id=?", studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

// Create inserts a grade and returns its auto-generated id.
func (r *GradeRepo) Create(ctx context.Context, studentID string, courseID int64, grade float64, gradeType string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO grades (student_id, course_id, grade, grade_type) VALUES (?,?,?,?)",
		studentID, courseID, grade, gradeType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
