package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	approvalDomain "fund-management-backend/internal/domain/approval"
	"fund-management-backend/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type decideReq struct {
	Action            string   `json:"action"             validate:"required,oneof=approve reject request_more_info escalate"`
	Notes             string   `json:"notes"`
	Conditions        string   `json:"conditions"`
	RecommendedAmount *float64 `json:"recommended_amount" validate:"omitempty,gt=0,dec2"`
}

func (h *ApprovalHandler) Decide(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req decideReq
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
	app, err := h.uc.Decide(c.Request().Context(), approval.DecideInput{
		ApplicationID:     applicationID,
		Actor:             actor,
		Action:            approvalDomain.Action(req.Action),
		Notes:             req.Notes,
		Conditions:        req.Conditions,
		RecommendedAmount: req.RecommendedAmount,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, app)
}

// Queue returns the review backlog scoped and capped to the caller's role.
func (h *ApprovalHandler) Queue(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	rows, err := h.uc.Queue(c.Request().Context(), actor)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ApprovalHandler) History(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	rows, err := h.uc.History(c.Request().Context(), applicationID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
