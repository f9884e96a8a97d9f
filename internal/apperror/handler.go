package apperror

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler maps application errors to JSON responses.  It is
// installed as the Echo error handler so every failure path produces the
// same {"error": message} shape.  Framework errors (bad JSON bodies,
// unknown routes) pass through with their own status codes.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		switch appErr.Kind {
		case KindAuthentication:
			status = http.StatusUnauthorized
		case KindNotFound:
			status = http.StatusNotFound
		case KindInternal:
			status = http.StatusInternalServerError
		}
		message = appErr.Message
		if appErr.Err != nil {
			log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, appErr.Err)
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if sendErr := c.JSON(status, echo.Map{"error": message}); sendErr != nil {
		log.Printf("write error response: %v", sendErr)
	}
}
