package handler

import (
	"log/slog"
	"net/http"

	"loyallink/internal/delivery/http/response"
	"loyallink/internal/domain/service"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitHandler holds dependencies for check-in handlers.
type VisitHandler struct {
	uc        usecase.VisitUsecase
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(uc usecase.VisitUsecase, qrService service.QRCodeService, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{
		uc:        uc,
		qrService: qrService,
		logger:    logger,
	}
}

// RecordVisit records a check-in for a customer of the authenticated business.
func (h *VisitHandler) RecordVisit(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	output, err := h.uc.RecordVisit(c.Request().Context(), businessID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Visit recorded successfully")
}

type qrCheckInRequest struct {
	QRData     string `json:"qr_data" validate:"required"`
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

// CheckInByQR records a check-in from scanned QR data. The business identity
// comes from the QR payload, not from an access token, so the endpoint can be
// called from a customer's phone.
func (h *VisitHandler) CheckInByQR(c echo.Context) error {
	var req qrCheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	businessID, err := h.qrService.ParseCheckInQR(req.QRData)
	if err != nil {
		return response.BadRequest(c, "INVALID_QR_CODE", "Invalid check-in QR code")
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	output, err := h.uc.RecordVisit(c.Request().Context(), businessID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Visit recorded successfully")
}
