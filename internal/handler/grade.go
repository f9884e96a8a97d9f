package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/model"
)

// GradeStore is the slice of the grade repository the grade handlers need.
type GradeStore interface {
	List(ctx context.Context) ([]model.Grade, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Grade, error)
	Create(ctx context.Context, studentID string, courseID int64, grade float64, gradeType string) (int64, error)
}

type GradeHandler struct {
	Grades GradeStore
}

func NewGradeHandler(grades GradeStore) *GradeHandler {
	return &GradeHandler{Grades: grades}
}

type createGradeReq struct {
	StudentID string  `json:"student_id"`
	CourseID  int64   `json:"course_id"`
	Grade     float64 `json:"grade"`
	GradeType string  `json:"grade_type"`
}

// List handles GET /api/grades.
func (h *GradeHandler) List(c echo.Context) error {
	grades, err := h.Grades.List(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, grades)
}

// ListByStudent handles GET /api/grades/student/:student_id.
func (h *GradeHandler) ListByStudent(c echo.Context) error {
	grades, err := h.Grades.ListByStudent(c.Request().Context(), c.Param("student_id"))
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, grades)
}

// Create handles POST /api/grades.
func (h *GradeHandler) Create(c echo.Context) error {
	var req createGradeReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.StudentID == "" || req.CourseID == 0 || req.GradeType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student_id, course_id and grade_type are required")
	}

	id, err := h.Grades.Create(c.Request().Context(), req.StudentID, req.CourseID, req.Grade, req.GradeType)
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      id,
		"message": "Grade created successfully",
	})
}
