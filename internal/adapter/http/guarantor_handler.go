package http

import (
	"net/http"

	"fund-management-backend/internal/adapter/middleware"
	guarantorDomain "fund-management-backend/internal/domain/guarantor"
	"fund-management-backend/internal/usecase/guarantor"

	"github.com/labstack/echo/v4"
)

type GuarantorHandler struct{ uc *guarantor.Usecase }

func NewGuarantorHandler(uc *guarantor.Usecase) *GuarantorHandler {
	return &GuarantorHandler{uc: uc}
}

type respondReq struct {
	Decision string `json:"decision" validate:"required,oneof=accepted declined"`
}

func (h *GuarantorHandler) Respond(c echo.Context) error {
	guarantorID := c.Param("guarantor_id")
	if guarantorID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing guarantor_id path param"})
	}
	var req respondReq
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
	g, err := h.uc.Respond(c.Request().Context(), guarantorID, actor.UserID, guarantorDomain.Status(req.Decision))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GuarantorHandler) ListOwn(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	rows, err := h.uc.ListForUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Eligible lists members whose completed deposits clear the configured
// minimum, excluding the caller.
func (h *GuarantorHandler) Eligible(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	rows, err := h.uc.Eligible(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *GuarantorHandler) ListAll(c echo.Context) error {
	rows, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
