package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/model"
)

// AdminStore is the slice of the admin repository the admin handlers need.
type AdminStore interface {
	ListUsers(ctx context.Context) ([]model.AccountSummary, error)
	Dashboard(ctx context.Context) (model.AdminDashboard, error)
}

type AdminHandler struct {
	Admin AdminStore
}

func NewAdminHandler(admin AdminStore) *AdminHandler {
	return &AdminHandler{Admin: admin}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.Admin.ListUsers(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	d, err := h.Admin.Dashboard(c.Request().Context())
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, d)
}
