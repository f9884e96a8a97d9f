package model

// Course mirrors the `courses` table.  Rows are keyed by an auto-increment
// id; teacher_id references users.id.
type Course struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	TeacherID   string  `json:"teacher_id"`
}
