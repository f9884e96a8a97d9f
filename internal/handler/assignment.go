package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/model"
	"github.com/sekolahku/sekolahku-api/internal/queue"
	"github.com/sekolahku/sekolahku-api/internal/repository"
)

// AssignmentStore is the slice of the assignment repository the assignment
// handlers need.
type AssignmentStore interface {
	List(ctx context.Context) ([]model.Assignment, error)
	GetByID(ctx context.Context, id string) (model.Assignment, error)
	CreateSubmission(ctx context.Context, submission model.Submission) error
}

type AssignmentHandler struct {
	Assignments AssignmentStore
	Events      EventPublisher
}

func NewAssignmentHandler(assignments AssignmentStore, events EventPublisher) *AssignmentHandler {
	return &AssignmentHandler{Assignments: assignments, Events: events}
}

type submitAssignmentReq struct {
	StudentID string `json:"student_id"`
	FileURL   string `json:"file_url"`
}

// List handles GET /api/assignments, ordered by due date ascending.
func (h *AssignmentHandler) List(c echo.Context) error {
	assignments, err := h.Assignments.List(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, assignments)
}

// Get handles GET /api/assignments/:id.
func (h *AssignmentHandler) Get(c echo.Context) error {
	a, err := h.Assignments.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return apperror.NotFound("Assignment not found")
		}
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, a)
}

// Submit handles POST /api/assignments/:id/submit.  The submission row gets
// a fresh UUID; a SubmissionReceived event is published best effort after
// the insert.
func (h *AssignmentHandler) Submit(c echo.Context) error {
	assignmentID := c.Param("id")
	var req submitAssignmentReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.StudentID == "" || req.FileURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student_id and file_url are required")
	}

	ctx := c.Request().Context()
	if _, err := h.Assignments.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return apperror.NotFound("Assignment not found")
		}
		return apperror.Internal(err)
	}

	submission := model.Submission{
		ID:           uuid.NewString(),
		AssignmentID: assignmentID,
		StudentID:    req.StudentID,
		FileURL:      &req.FileURL,
	}
	if err := h.Assignments.CreateSubmission(ctx, submission); err != nil {
		return apperror.Internal(err)
	}

	// The request succeeds even when the broker is down.
	_ = h.Events.SubmissionReceived(ctx, queue.SubmissionReceivedEvent{
		SubmissionID: submission.ID,
		AssignmentID: assignmentID,
		StudentID:    req.StudentID,
		FileURL:      req.FileURL,
		SubmittedAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"status": "submitted"})
}
