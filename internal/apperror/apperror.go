// Package apperror defines the application error taxonomy and its mapping to
// HTTP responses.  Handlers return one of three kinds instead of writing ad
// hoc error bodies: authentication failures (401), missing rows (404) and
// internal failures (500).  Internal causes are logged server-side and never
// echoed to the client.
package apperror

import "fmt"

// Kind classifies an application error.
type Kind int

const (
	KindAuthentication Kind = iota // bad credentials, missing/invalid/expired token
	KindNotFound                   // no row for a given identifier
	KindInternal                   // database unreachable, signing failure, driver error
)

// Error is the single error type surfaced by handlers.  Message is what
// the client sees; Err carries the underlying cause for logging only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Authentication builds a 401 error with the given client-visible message.
func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

// NotFound builds a 404 error with the given client-visible message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Internal wraps an unexpected failure.  The cause is kept for logging; the
// client always receives the same generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}
