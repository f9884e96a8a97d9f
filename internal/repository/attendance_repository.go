package repository

import (
	"context"
	"database/sql"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

type AttendanceRepo struct{ DB *sql.DB }

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{DB: db} }

func (r *AttendanceRepo) scanList(rows *sql.Rows) ([]model.Attendance, error) {
	records := []model.Attendance{}
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Date, &a.Status); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// List returns every attendance record.
func (r *AttendanceRepo) List(ctx context.Context) ([]model.Attendance, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,student_id,course_id,date,status FROM attendance")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListByCourse returns attendance records for one course.
func (r *AttendanceRepo) ListByCourse(ctx context.Context, courseID int64) ([]model.Attendance, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,student_id,course_id,date,status FROM attendance WHERE course_id=?", courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanList(rows)
}

// Create inserts an attendance record and returns its auto-generated id.
func (r *AttendanceRepo) Create(ctx context.Context, studentID string, courseID int64, date, status string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO attendance (student_id, course_id, date, status) VALUES (?,?,?,?)",
		studentID, courseID, date, status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
