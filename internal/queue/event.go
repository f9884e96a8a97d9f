// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names the publisher declares and writes to.
const (
	SubmissionReceivedQueue = "submission.received"
	QuizAttemptedQueue      = "quiz.attempted"
	AttendanceMarkedQueue   = "attendance.marked"
)

// SubmissionReceivedEvent is published when a student submits an assignment.
// It carries enough information for downstream consumers (notifications,
// analytics, the ML risk scorer) without querying the primary database.
type SubmissionReceivedEvent struct {
	SubmissionID string `json:"submission_id"`
	AssignmentID string `json:"assignment_id"`
	StudentID    string `json:"student_id"`
	FileURL      string `json:"file_url"`
	SubmittedAt  string `json:"submitted_at"`
}

// QuizAttemptedEvent is published when a quiz attempt is recorded.
type QuizAttemptedEvent struct {
	AttemptID   string  `json:"attempt_id"`
	QuizID      string  `json:"quiz_id"`
	StudentID   string  `json:"student_id"`
	Score       float64 `json:"score"`
	CompletedAt string  `json:"completed_at"`
}

// AttendanceMarkedEvent is published when an attendance record is created.
type AttendanceMarkedEvent struct {
	AttendanceID int64  `json:"attendance_id"`
	StudentID    string `json:"student_id"`
	CourseID     int64  `json:"course_id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
