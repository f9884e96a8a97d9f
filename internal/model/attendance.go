package model

// Attendance mirrors the `attendance` table.  Date is kept as the string
// submitted by the client (YYYY-MM-DD) rather than a DATETIME.
type Attendance struct {
	ID        int64  `json:"id"`
	StudentID string `json:"student_id"`
	CourseID  int64  `json:"course_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}
