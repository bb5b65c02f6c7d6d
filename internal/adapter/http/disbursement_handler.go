package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	"fund-management-backend/internal/usecase/disbursement"

	"github.com/labstack/echo/v4"
)

type DisbursementHandler struct{ uc *disbursement.Usecase }

func NewDisbursementHandler(uc *disbursement.Usecase) *DisbursementHandler {
	return &DisbursementHandler{uc: uc}
}

type disburseReq struct {
	Method          string `json:"disbursement_method" validate:"omitempty,oneof=bank_transfer mobile_money check cash"`
	Notes           string `json:"notes"`
	ReferenceNumber string `json:"reference_number"`
}

func (h *DisbursementHandler) Disburse(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req disburseReq
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
	out, err := h.uc.Disburse(c.Request().Context(), disbursement.DisburseInput{
		ApplicationID:   applicationID,
		Actor:           actor,
		Notes:           req.Notes,
		ReferenceNumber: req.ReferenceNumber,
		Method:          req.Method,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Ready lists approved applications annotated with whether their guarantor
// gate and the pool balance currently allow payout.
func (h *DisbursementHandler) Ready(c echo.Context) error {
	rows, err := h.uc.ReadyForDisbursement(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DisbursementHandler) ListAll(c echo.Context) error {
	rows, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
