package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	"fund-management-backend/internal/usecase/schedule"

	"github.com/labstack/echo/v4"
)

type ScheduleHandler struct{ uc *schedule.Usecase }

func NewScheduleHandler(uc *schedule.Usecase) *ScheduleHandler { return &ScheduleHandler{uc: uc} }

func (h *ScheduleHandler) ListOwn(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	rows, err := h.uc.ListOwn(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
