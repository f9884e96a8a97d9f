package model

import "time"

// Quiz mirrors the `quizzes` table.
type Quiz struct {
	ID           string     `json:"id"`
	CourseID     *string    `json:"course_id"`
	TeacherID    string     `json:"teacher_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	TimeLimit    *int       `json:"time_limit"`
	PassingScore *float64   `json:"passing_score"`
	CreatedAt    *time.Time `json:"created_at"`
}

// QuizAttempt mirrors the `quiz_attempts` table.
type QuizAttempt struct {
	ID          string     `json:"id"`
	QuizID      string     `json:"quiz_id"`
	StudentID   string     `json:"student_id"`
	Score       *float64   `json:"score"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
