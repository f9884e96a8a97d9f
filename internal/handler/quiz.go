package handler

import (
	"context"
	"encoding/json"
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

// QuizStore is the slice of the quiz repository the quiz handlers need.
type QuizStore interface {
	List(ctx context.Context) ([]model.Quiz, error)
	GetByID(ctx context.Context, id string) (model.Quiz, error)
	CreateAttempt(ctx context.Context, attempt model.QuizAttempt) error
}

type QuizHandler struct {
	Quizzes QuizStore
	Events  EventPublisher
}

func NewQuizHandler(quizzes QuizStore, events EventPublisher) *QuizHandler {
	return &QuizHandler{Quizzes: quizzes, Events: events}
}

type submitQuizReq struct {
	StudentID string          `json:"student_id"`
	Answers   json.RawMessage `json:"answers"` // recorded with the attempt once scoring lands
}

// List handles GET /api/quizzes, most recently created first.
func (h *QuizHandler) List(c echo.Context) error {
	quizzes, err := h.Quizzes.List(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, quizzes)
}

// Get handles GET /api/quizzes/:id.
func (h *QuizHandler) Get(c echo.Context) error {
	q, err := h.Quizzes.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return apperror.NotFound("Quiz not found")
		}
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, q)
}

// Submit handles POST /api/quizzes/:id/submit.  Answer scoring is not
// implemented; every attempt is recorded with a score of 0.
func (h *QuizHandler) Submit(c echo.Context) error {
	quizID := c.Param("id")
	var req submitQuizReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.StudentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student_id is required")
	}

	ctx := c.Request().Context()
	if _, err := h.Quizzes.GetByID(ctx, quizID); err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return apperror.NotFound("Quiz not found")
		}
		return apperror.Internal(err)
	}

	score := 0.0
	attempt := model.QuizAttempt{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		StudentID: req.StudentID,
		Score:     &score,
	}
	if err := h.Quizzes.CreateAttempt(ctx, attempt); err != nil {
		return apperror.Internal(err)
	}

	_ = h.Events.QuizAttempted(ctx, queue.QuizAttemptedEvent{
		AttemptID:   attempt.ID,
		QuizID:      quizID,
		StudentID:   req.StudentID,
		Score:       score,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"status": "submitted", "score": score})
}
