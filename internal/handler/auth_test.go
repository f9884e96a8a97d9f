package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/config"
	"github.com/sekolahku/sekolahku-api/internal/middleware"
	"github.com/sekolahku/sekolahku-api/internal/model"
	"github.com/sekolahku/sekolahku-api/internal/repository"
	"github.com/sekolahku/sekolahku-api/internal/utils"
)

type stubUserStore struct {
	user model.User
	err  error
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	if s.user.Email != email {
		return model.User{}, repository.ErrUserNotFound
	}
	return s.user, nil
}

func testConfig() config.Config {
	return config.Config{JWTSecret: "test-secret"}
}

// serve runs a handler func through an Echo context and renders any
// returned error with the application error handler, so response bodies
// match what a live server writes.
func serve(t *testing.T, method, target, body string, fn echo.HandlerFunc, setup func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func testUser(t *testing.T) model.User {
	t.Helper()
	hash, err := utils.HashPassword("pw1")
	require.NoError(t, err)
	return model.User{
		ID:       "u-1",
		Password: hash,
		Email:    "t@example.com",
		Role:     model.RoleTeacher,
		Name:     "Teacher One",
	}
}

func TestLoginSuccess(t *testing.T) {
	h := NewAuthHandler(testConfig(), &stubUserStore{user: testUser(t)})

	rec := serve(t, http.MethodPost, "/api/login",
		`{"email":"t@example.com","password":"pw1"}`, h.Login, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"id":"u-1"`)
	assert.Contains(t, body, `"email":"t@example.com"`)
	assert.Contains(t, body, `"name":"Teacher One"`)
	assert.Contains(t, body, `"role":"teacher"`)
	assert.Contains(t, body, `"token":"`)
	// The stored password value never appears in a response.
	assert.NotContains(t, body, "password")

	// Round trip: the issued token maps back to the account's identity.
	var resp loginResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims, err := utils.ParseAccessToken("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "t@example.com", claims.Email)
	assert.Equal(t, model.RoleTeacher, claims.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := NewAuthHandler(testConfig(), &stubUserStore{user: testUser(t)})

	rec := serve(t, http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"pw1"}`, h.Login, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewAuthHandler(testConfig(), &stubUserStore{user: testUser(t)})

	unknown := serve(t, http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"pw1"}`, h.Login, nil)
	wrongPw := serve(t, http.MethodPost, "/api/login",
		`{"email":"t@example.com","password":"pw2"}`, h.Login, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	// The two failure modes are byte-for-byte identical so callers cannot
	// probe which accounts exist.
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestLoginDatabaseDown(t *testing.T) {
	h := NewAuthHandler(testConfig(), &stubUserStore{err: errors.New("dial tcp: connection refused")})

	rec := serve(t, http.MethodPost, "/api/login",
		`{"email":"t@example.com","password":"pw1"}`, h.Login, nil)

	// Unavailability is an internal error, not an authentication error,
	// and the cause is never echoed to the client.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	h := NewAuthHandler(testConfig(), &stubUserStore{user: testUser(t)})

	rec := serve(t, http.MethodPost, "/api/login", `{"email":"t@example.com"}`, h.Login, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifySession(t *testing.T) {
	h := NewAuthHandler(testConfig(), &stubUserStore{})

	rec := serve(t, http.MethodGet, "/api/verifikasi-login", "", h.VerifySession, func(c echo.Context) {
		c.Set(middleware.ContextUserID, "u-1")
		c.Set(middleware.ContextEmail, "t@example.com")
		c.Set(middleware.ContextRole, "teacher")
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"status":"authenticated","user":{"id":"u-1","email":"t@example.com","role":"teacher"}}`,
		rec.Body.String())
}
