package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	"fund-management-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	Amount         float64  `json:"amount"                    validate:"required,gt=0,dec2"`
	Purpose        string   `json:"purpose"                   validate:"required"`
	DurationMonths int      `json:"requested_duration_months" validate:"required,gt=0"`
	Description    string   `json:"description"`
	Guarantors     []string `json:"guarantors"                validate:"dive,hex32"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	actor := middleware.CurrentUser(c)
	out, err := h.uc.Create(c.Request().Context(), application.CreateInput{
		UserID:         actor.UserID,
		Amount:         req.Amount,
		Purpose:        req.Purpose,
		DurationMonths: req.DurationMonths,
		Description:    req.Description,
		Guarantors:     req.Guarantors,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ApplicationHandler) ListOwn(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	rows, err := h.uc.ListOwn(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ListForReviewer is country-scoped for coordinators and global for fund and
// general admins.
func (h *ApplicationHandler) ListForReviewer(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	rows, err := h.uc.ListForReviewer(c.Request().Context(), actor)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
