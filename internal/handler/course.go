package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/model"
	"github.com/sekolahku/sekolahku-api/internal/repository"
)

// CourseStore is the slice of the course repository the course handlers
// need.
type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id int64) (model.Course, error)
	Create(ctx context.Context, name string, description *string, teacherID string) (int64, error)
}

type CourseHandler struct {
	Courses CourseStore
}

func NewCourseHandler(courses CourseStore) *CourseHandler {
	return &CourseHandler{Courses: courses}
}

type createCourseReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	TeacherID   string  `json:"teacher_id"`
}

// List handles GET /api/courses.
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.Courses.List(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, courses)
}

// Get handles GET /api/courses/:id.
func (h *CourseHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	course, err := h.Courses.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return apperror.NotFound("Course not found")
		}
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, course)
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.TeacherID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and teacher_id are required")
	}

	id, err := h.Courses.Create(c.Request().Context(), req.Name, req.Description, req.TeacherID)
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      id,
		"message": "Course created successfully",
	})
}
