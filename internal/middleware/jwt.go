package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"strings" // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/sekolahku/sekolahku-api/internal/apperror" // typed application errors
	"github.com/sekolahku/sekolahku-api/internal/utils"    // token parsing
)

// Context keys under which JWTAuth stores the authenticated identity.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject, email and role claims into the request
// context.  The provided secret must match the one used when issuing
// tokens.  This middleware wraps every protected route; handlers access the
// authenticated identity via c.Get(ContextUserID) and friends.  There is no
// fallback auth method: a missing or malformed Authorization header fails
// immediately, and all verification failures produce the same generic 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return apperror.Authentication("Missing or invalid Authorization header")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Token verification is pure computation; expired, tampered and
			// malformed tokens are deliberately indistinguishable here.
			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return apperror.Authentication("Invalid token")
			}

			// Handlers trust these values as-is for role-based checks.
			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}
