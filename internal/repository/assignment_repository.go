package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

const assignmentColumns = "id,course_id,teacher_id,title,description,due_date,max_score,created_at"

type AssignmentRepo struct{ DB *sql.DB }

func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{DB: db} }

// List returns all assignments ordered by due date ascending, soonest first.
func (r *AssignmentRepo) List(ctx context.Context) ([]model.Assignment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+assignmentColumns+" FROM assignments ORDER BY due_date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []model.Assignment{}
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.CourseID, &a.TeacherID, &a.Title, &a.Description,
			&a.DueDate, &a.MaxScore, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetByID fetches an assignment by id.  Returns ErrAssignmentNotFound when
// no row matches.
func (r *AssignmentRepo) GetByID(ctx context.Context, id string) (model.Assignment, error) {
	var a model.Assignment
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+assignmentColumns+" FROM assignments WHERE id=? LIMIT 1", id).
		Scan(&a.ID, &a.CourseID, &a.TeacherID, &a.Title, &a.Description,
			&a.DueDate, &a.MaxScore, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Assignment{}, ErrAssignmentNotFound
	}
	return a, err
}

// CreateSubmission records a student submission for an assignment with the
// current instant as the submission time.
func (r *AssignmentRepo) CreateSubmission(ctx context.Context, s model.Submission) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO submissions (id, assignment_id, student_id, file_url, submitted_at) VALUES (?,?,?,?,?)",
		s.ID, s.AssignmentID, s.StudentID, s.FileURL, time.Now().UTC())
	return err
}
