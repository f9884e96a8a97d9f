package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

const quizColumns = "id,course_id,teacher_id,title,description,time_limit,passing_score,created_at"

type QuizRepo struct{ DB *sql.DB }

func NewQuizRepo(db *sql.DB) *QuizRepo { return &QuizRepo{DB: db} }

// List returns all quizzes with the most recently created first.
func (r *QuizRepo) List(ctx context.Context) ([]model.Quiz, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+quizColumns+" FROM quizzes ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := []model.Quiz{}
	for rows.Next() {
		var q model.Quiz
		if err := rows.Scan(&q.ID, &q.CourseID, &q.TeacherID, &q.Title, &q.Description,
			&q.TimeLimit, &q.PassingScore, &q.CreatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// GetByID fetches a quiz by id.  Returns ErrQuizNotFound when no row
// matches.
func (r *QuizRepo) GetByID(ctx context.Context, id string) (model.Quiz, error) {
	var q model.Quiz
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+quizColumns+" FROM quizzes WHERE id=? LIMIT 1", id).
		Scan(&q.ID, &q.CourseID, &q.TeacherID, &q.Title, &q.Description,
			&q.TimeLimit, &q.PassingScore, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Quiz{}, ErrQuizNotFound
	}
	return q, err
}

// CreateAttempt records a quiz attempt.  Started and completed timestamps
// are both set to the current instant since attempts are submitted whole.
func (r *QuizRepo) CreateAttempt(ctx context.Context, attempt model.QuizAttempt) error {
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO quiz_attempts (id, quiz_id, student_id, score, started_at, completed_at) VALUES (?,?,?,?,?,?)",
		attempt.ID, attempt.QuizID, attempt.StudentID, attempt.Score, now, now)
	return err
}
