package model

import "time"

// Student mirrors the `students` table.  Most columns are nullable in the
// schema, so they map to pointers here.  Risk fields (risk_status,
// risk_score) are precomputed elsewhere; this service only reads them.
type Student struct {
	ID                   string     `json:"id"`
	StudentID            string     `json:"student_id"` // NIM
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	Avatar               *string    `json:"avatar"`
	Semester             *int       `json:"semester"`
	Grade                *int       `json:"grade"`
	SchoolName           *string    `json:"school_name"`
	SchoolProvince       *string    `json:"school_province"`
	Phone                *string    `json:"phone"`
	ClassName            *string    `json:"class_name"`
	Major                *string    `json:"major"`
	EnrollmentDate       *time.Time `json:"enrollment_date"`
	Status               *string    `json:"status"`
	GPA                  *float64   `json:"gpa"`
	TotalCredits         *int       `json:"total_credits"`
	CompletedCredits     *int       `json:"completed_credits"`
	Address              *string    `json:"address"`
	ParentName           *string    `json:"parent_name"`
	ParentPhone          *string    `json:"parent_phone"`
	AttendanceRate       *float64   `json:"attendance_rate"`
	AssignmentCompletion *float64   `json:"assignment_completion"`
	QuizAverage          *float64   `json:"quiz_average"`
	RiskStatus           *string    `json:"risk_status"`
	RiskScore            *float64   `json:"risk_score"`
	CreatedAt            *time.Time `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}

// TeacherDashboard aggregates the metrics shown on the teacher dashboard.
// AverageAttendance is 0 when no student has an attendance rate yet.
type TeacherDashboard struct {
	TotalStudents     int64   `json:"total_students"`
	AverageAttendance float64 `json:"average_attendance"`
	AtRiskStudents    int64   `json:"at_risk_students"`
}
