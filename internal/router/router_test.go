package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/config"
	"github.com/sekolahku/sekolahku-api/internal/handler"
	"github.com/sekolahku/sekolahku-api/internal/model"
	"github.com/sekolahku/sekolahku-api/internal/utils"
)

const testSecret = "router-test-secret"

// newTestServer registers the full route table with empty handlers.  The
// tests below only hit routes that are decided by the middleware chain, so
// the handlers never reach their nil stores.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler
	cfg := config.Config{JWTSecret: testSecret}
	Register(e, cfg, nil, Handlers{
		Auth:       &handler.AuthHandler{Cfg: cfg},
		Teacher:    &handler.TeacherHandler{},
		Course:     &handler.CourseHandler{},
		Assignment: &handler.AssignmentHandler{},
		Quiz:       &handler.QuizHandler{},
		Attendance: &handler.AttendanceHandler{},
		Grade:      &handler.GradeHandler{},
		Admin:      &handler.AdminHandler{},
	})
	return e
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, _, err := utils.NewAccessToken(testSecret, "u-1", "u@example.com", role)
	require.NoError(t, err)
	return tok
}

func TestHealthzIsPublic(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	e := newTestServer(t)

	for _, target := range []string{
		"/api/verifikasi-login",
		"/api/courses",
		"/api/teacher/students",
		"/api/admin/users",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRoleRestrictedGroups(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name   string
		target string
		role   string
		want   int
	}{
		{"student blocked from teacher group", "/api/teacher/students", model.RoleStudent, http.StatusForbidden},
		{"student blocked from admin group", "/api/admin/users", model.RoleStudent, http.StatusForbidden},
		{"teacher blocked from admin group", "/api/admin/users", model.RoleTeacher, http.StatusForbidden},
		{"parent blocked from teacher group", "/api/teacher/dashboard", model.RoleParent, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, tt.role))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestVerifySessionThroughFullStack(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/verifikasi-login", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, model.RoleStudent))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"status":"authenticated","user":{"id":"u-1","email":"u@example.com","role":"student"}}`,
		rec.Body.String())
}
