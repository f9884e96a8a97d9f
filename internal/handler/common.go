package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/sekolahku/sekolahku-api/internal/middleware"
	"github.com/sekolahku/sekolahku-api/internal/queue"
)

// EventPublisher is the slice of the queue publisher the handlers need.
// Publishing is best effort; handlers log nothing themselves and never fail
// a request over a broker problem.
type EventPublisher interface {
	SubmissionReceived(ctx context.Context, event queue.SubmissionReceivedEvent) error
	QuizAttempted(ctx context.Context, event queue.QuizAttemptedEvent) error
	AttendanceMarked(ctx context.Context, event queue.AttendanceMarkedEvent) error
}

// identity reads the authenticated identity stored by the JWT middleware.
// ok is false when any part is missing, which only happens if a handler is
// registered without the middleware.
func identity(c echo.Context) (id, email, role string, ok bool) {
	id, ok1 := c.Get(middleware.ContextUserID).(string)
	email, ok2 := c.Get(middleware.ContextEmail).(string)
	role, ok3 := c.Get(middleware.ContextRole).(string)
	return id, email, role, ok1 && ok2 && ok3
}
