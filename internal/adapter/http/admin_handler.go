package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/internal/usecase/fundpool"
	"fund-management-backend/internal/usecase/sysconfig"
	"fund-management-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

// AdminHandler covers the ledger, tunables, and user administration.
type AdminHandler struct {
	pool  *fundpool.Usecase
	cfg   *sysconfig.Usecase
	users *user.Usecase
}

func NewAdminHandler(pool *fundpool.Usecase, cfg *sysconfig.Usecase, users *user.Usecase) *AdminHandler {
	return &AdminHandler{pool: pool, cfg: cfg, users: users}
}

func (h *AdminHandler) FundPool(c echo.Context) error {
	p, err := h.pool.Get(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// RecalculateFundPool rebuilds the ledger from the movement tables. Manual
// repair path for drift.
func (h *AdminHandler) RecalculateFundPool(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	p, err := h.pool.Recalculate(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminHandler) SystemConfig(c echo.Context) error {
	cfg, err := h.cfg.Get(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

type updateConfigReq struct {
	MinimumDepositForGuarantor float64 `json:"minimum_deposit_for_guarantor" validate:"required,gt=0,dec2"`
	PriorityWeight             float64 `json:"priority_weight"               validate:"required,gt=0"`
	MaxLoanAmount              float64 `json:"max_loan_amount"               validate:"required,gt=0,dec2"`
	MaxLoanDurationMonths      int     `json:"max_loan_duration_months"      validate:"required,gt=0"`
	CountryCoordinatorLimit    float64 `json:"country_coordinator_limit"     validate:"required,gt=0,dec2"`
	FundAdminLimit             float64 `json:"fund_admin_limit"              validate:"required,gt=0,dec2"`
}

func (h *AdminHandler) UpdateSystemConfig(c echo.Context) error {
	var req updateConfigReq
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
	cfg, err := h.cfg.Update(c.Request().Context(), actor, sysconfig.UpdateInput(req))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	rows, err := h.users.ListAll(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type updateRoleReq struct {
	UserID string `json:"user_id" validate:"required,hex32"`
	Role   string `json:"role"    validate:"required,oneof=member country_coordinator fund_admin general_admin"`
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req updateRoleReq
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
	u, err := h.users.UpdateRole(c.Request().Context(), actor, req.UserID, userDomain.Role(req.Role))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
