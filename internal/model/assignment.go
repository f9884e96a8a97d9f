package model

import "time"

// Assignment mirrors the `assignments` table.
type Assignment struct {
	ID          string     `json:"id"`
	CourseID    *string    `json:"course_id"`
	TeacherID   string     `json:"teacher_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	MaxScore    *float64   `json:"max_score"`
	CreatedAt   *time.Time `json:"created_at"`
}

// Submission mirrors the `submissions` table.  Score, feedback and graded_at
// stay null until a teacher grades the submission.
type Submission struct {
	ID           string     `json:"id"`
	AssignmentID string     `json:"assignment_id"`
	StudentID    string     `json:"student_id"`
	FileURL      *string    `json:"file_url"`
	SubmittedAt  *time.Time `json:"submitted_at"`
	Score        *float64   `json:"score"`
	Feedback     *string    `json:"feedback"`
	GradedAt     *time.Time `json:"graded_at"`
}
