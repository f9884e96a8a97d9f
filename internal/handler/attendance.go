package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/model"
	"github.com/sekolahku/sekolahku-api/internal/queue"
)

// AttendanceStore is the slice of the attendance repository the attendance
// handlers need.
type AttendanceStore interface {
	List(ctx context.Context) ([]model.Attendance, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Attendance, error)
	Create(ctx context.Context, studentID string, courseID int64, date, status string) (int64, error)
}

type AttendanceHandler struct {
	Attendance AttendanceStore
	Events     EventPublisher
}

func NewAttendanceHandler(attendance AttendanceStore, events EventPublisher) *AttendanceHandler {
	return &AttendanceHandler{Attendance: attendance, Events: events}
}

type markAttendanceReq struct {
	StudentID string `json:"student_id"`
	CourseID  int64  `json:"course_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

// List handles GET /api/attendance.
func (h *AttendanceHandler) List(c echo.Context) error {
	records, err := h.Attendance.List(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, records)
}

// ListByCourse handles GET /api/attendance/course/:course_id.
func (h *AttendanceHandler) ListByCourse(c echo.Context) error {
	courseID, err := strconv.ParseInt(c.Param("course_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course_id")
	}
	records, err := h.Attendance.ListByCourse(c.Request().Context(), courseID)
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Mark handles POST /api/attendance.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markAttendanceReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.StudentID == "" || req.CourseID == 0 || req.Date == "" || req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student_id, course_id, date and status are required")
	}

	ctx := c.Request().Context()
	id, err := h.Attendance.Create(ctx, req.StudentID, req.CourseID, req.Date, req.Status)
	if err != nil {
		return apperror.Internal(err)
	}

	_ = h.Events.AttendanceMarked(ctx, queue.AttendanceMarkedEvent{
		AttendanceID: id,
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		Date:         req.Date,
		Status:       req.Status,
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"id":      id,
		"message": "Attendance marked successfully",
	})
}
