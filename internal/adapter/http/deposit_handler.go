package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	"fund-management-backend/internal/usecase/deposit"

	"github.com/labstack/echo/v4"
)

type DepositHandler struct{ uc *deposit.Usecase }

func NewDepositHandler(uc *deposit.Usecase) *DepositHandler { return &DepositHandler{uc: uc} }

type createDepositReq struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0,dec2"`
	Description string  `json:"description"`
}

func (h *DepositHandler) Create(c echo.Context) error {
	var req createDepositReq
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
	d, err := h.uc.Create(c.Request().Context(), actor.UserID, req.Amount, req.Description)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DepositHandler) ListOwn(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	rows, err := h.uc.ListOwn(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DepositHandler) ListAll(c echo.Context) error {
	rows, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
