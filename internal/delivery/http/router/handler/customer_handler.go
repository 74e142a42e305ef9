package handler

import (
	"log/slog"
	"net/http"

	"loyallink/internal/delivery/http/response"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer management handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,e164"`
}

// CreateCustomer enrolls a new customer for the authenticated business.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), businessID, usecase.CreateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer enrolled successfully")
}

// GetCustomer retrieves a single customer of the authenticated business.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), businessID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer retrieved successfully")
}

// ListCustomers lists the customers of the authenticated business.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	limit, offset := pagination(c)

	customers, err := h.uc.ListCustomers(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// GetCustomerVisits returns a customer's visit history.
func (h *CustomerHandler) GetCustomerVisits(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	limit, offset := pagination(c)

	visits, err := h.uc.GetCustomerVisits(c.Request().Context(), businessID, customerID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visits, "Visit history retrieved successfully")
}
