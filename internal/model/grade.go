package model

// Grade mirrors the `grades` table.
type Grade struct {
	ID        int64   `json:"id"`
	StudentID string  `json:"student_id"`
	CourseID  int64   `json:"course_id"`
	Grade     float64 `json:"grade"`
	GradeType string  `json:"grade_type"`
}

// AdminDashboard aggregates the counters shown on the admin dashboard.
type AdminDashboard struct {
	TotalUsers    int64 `json:"total_users"`
	TotalCourses  int64 `json:"total_courses"`
	TotalStudents int64 `json:"total_students"`
	TotalTeachers int64 `json:"total_teachers"`
}
