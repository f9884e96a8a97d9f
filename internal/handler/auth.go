package handler

import (
	"context"      // provides context with timeout for DB calls
	"errors"       // sentinel comparison for repository errors
	"net/http"     // HTTP status codes and primitives
	"strings"      // string normalization utilities
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/sekolahku/sekolahku-api/internal/apperror"   // typed application errors
	"github.com/sekolahku/sekolahku-api/internal/config"     // app configuration
	"github.com/sekolahku/sekolahku-api/internal/model"      // account record
	"github.com/sekolahku/sekolahku-api/internal/repository" // sentinel errors
	"github.com/sekolahku/sekolahku-api/internal/utils"      // token issuing
)

// invalidCredentials is the single message for both unknown email and wrong
// password.  The two cases must stay byte-identical so a caller cannot
// probe which accounts exist.
const invalidCredentials = "Invalid email or password"

// UserStore is the slice of the user repository the auth handler needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Login handles POST /api/login: verify credentials and mint a bearer
// token.  Credential mismatches are authentication errors; database or
// signing failures are internal errors, so clients can distinguish "try
// again" from "your credentials are wrong".
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperror.Authentication(invalidCredentials)
		}
		return apperror.Internal(err)
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return apperror.Authentication(invalidCredentials)
	}

	token, _, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Role)
	if err != nil {
		return apperror.Internal(err)
	}

	return c.JSON(http.StatusOK, loginResp{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		Token: token,
	})
}

// VerifySession handles GET /api/verifikasi-login: it simply echoes the
// identity the JWT middleware extracted, proving the presented token is
// valid.
func (h *AuthHandler) VerifySession(c echo.Context) error {
	id, email, role, ok := identity(c)
	if !ok {
		return apperror.Authentication("Invalid token")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "authenticated",
		"user": echo.Map{
			"id":    id,
			"email": email,
			"role":  role,
		},
	})
}
