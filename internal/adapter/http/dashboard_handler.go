package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	"fund-management-backend/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get returns the projection for the caller's role.
func (h *DashboardHandler) Get(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	out, err := h.uc.For(c.Request().Context(), actor)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
