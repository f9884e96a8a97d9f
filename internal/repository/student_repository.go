package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sekolahku/sekolahku-api/internal/model"
)

const studentColumns = "id,student_id,name,email,avatar,semester,grade,school_name,school_province," +
	"phone,class_name,major,enrollment_date,status,gpa,total_credits,completed_credits,address," +
	"parent_name,parent_phone,attendance_rate,assignment_completion,quiz_average,risk_status,risk_score," +
	"created_at,updated_at"

type StudentRepo struct{ DB *sql.DB }

func NewStudentRepo(db *sql.DB) *StudentRepo { return &StudentRepo{DB: db} }

func scanStudent(row interface{ Scan(...any) error }) (model.Student, error) {
	var s model.Student
	err := row.Scan(&s.ID, &s.StudentID, &s.Name, &s.Email, &s.Avatar, &s.Semester, &s.Grade,
		&s.SchoolName, &s.SchoolProvince, &s.Phone, &s.ClassName, &s.Major, &s.EnrollmentDate,
		&s.Status, &s.GPA, &s.TotalCredits, &s.CompletedCredits, &s.Address, &s.ParentName,
		&s.ParentPhone, &s.AttendanceRate, &s.AssignmentCompletion, &s.QuizAverage,
		&s.RiskStatus, &s.RiskScore, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// List returns every student ordered by name.
func (r *StudentRepo) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+studentColumns+" FROM students ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID fetches a single student.  Returns ErrStudentNotFound when the
// id has no row.
func (r *StudentRepo) GetByID(ctx context.Context, id string) (model.Student, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+studentColumns+" FROM students WHERE id=? LIMIT 1", id)
	s, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Student{}, ErrStudentNotFound
	}
	return s, err
}

// Dashboard computes the teacher dashboard aggregates in three scalar
// queries.  AVG returns NULL on an empty table, which maps to 0.
func (r *StudentRepo) Dashboard(ctx context.Context) (model.TeacherDashboard, error) {
	var d model.TeacherDashboard
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM students").Scan(&d.TotalStudents); err != nil {
		return d, err
	}
	var avg sql.NullFloat64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT AVG(attendance_rate) FROM students WHERE attendance_rate IS NOT NULL").Scan(&avg); err != nil {
		return d, err
	}
	if avg.Valid {
		d.AverageAttendance = avg.Float64
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM students WHERE risk_status IN ('high','moderate')").Scan(&d.AtRiskStudents); err != nil {
		return d, err
	}
	return d, nil
}
