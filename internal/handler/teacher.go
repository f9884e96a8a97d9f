package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/model"
	"github.com/sekolahku/sekolahku-api/internal/repository"
)

// StudentStore is the slice of the student repository the teacher handlers
// need.
type StudentStore interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id string) (model.Student, error)
	Dashboard(ctx context.Context) (model.TeacherDashboard, error)
}

// TeacherHandler serves the teacher-facing student listing and dashboard.
type TeacherHandler struct {
	Students StudentStore
}

func NewTeacherHandler(students StudentStore) *TeacherHandler {
	return &TeacherHandler{Students: students}
}

// ListStudents handles GET /api/teacher/students.
func (h *TeacherHandler) ListStudents(c echo.Context) error {
	students, err := h.Students.List(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, students)
}

// GetStudent handles GET /api/teacher/students/:id.
func (h *TeacherHandler) GetStudent(c echo.Context) error {
	s, err := h.Students.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return apperror.NotFound("Student not found")
		}
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, s)
}

// Dashboard handles GET /api/teacher/dashboard.
func (h *TeacherHandler) Dashboard(c echo.Context) error {
	d, err := h.Students.Dashboard(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, d)
}
