// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"loyallink/internal/delivery/http/middleware"
	"loyallink/internal/delivery/http/response"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pagination reads limit/offset query parameters with sane bounds.
func pagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxPageSize)
		}
	}

	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

// authedBusinessID extracts the authenticated business ID or writes a 401.
func authedBusinessID(c echo.Context) (uuid.UUID, error) {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Missing business identity")
	}

	return businessID, nil
}

// BusinessHandler holds dependencies for business account handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	VisitGoal         int    `json:"visit_goal" validate:"omitempty,min=1"`
	RewardTitle       string `json:"reward_title" validate:"required"`
	RewardDescription string `json:"reward_description"`
}

// Register handles the business registration request.
func (h *BusinessHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterBusinessInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		VisitGoal:         req.VisitGoal,
		RewardTitle:       req.RewardTitle,
		RewardDescription: req.RewardDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Business, "Business registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the business login request.
func (h *BusinessHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh handles the token rotation request.
func (h *BusinessHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the business logout request.
func (h *BusinessHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetProfile handles the request to get the current business's profile.
func (h *BusinessHandler) GetProfile(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	business, err := h.uc.GetProfile(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Profile retrieved successfully")
}

type updateSettingsRequest struct {
	Name              *string `json:"name"`
	VisitGoal         *int    `json:"visit_goal" validate:"omitempty,min=1"`
	RewardTitle       *string `json:"reward_title"`
	RewardDescription *string `json:"reward_description"`
	Plan              *string `json:"plan"`
}

// UpdateSettings handles partial updates to the loyalty settings.
func (h *BusinessHandler) UpdateSettings(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	business, err := h.uc.UpdateSettings(c.Request().Context(), businessID, usecase.UpdateSettingsInput{
		Name:              req.Name,
		VisitGoal:         req.VisitGoal,
		RewardTitle:       req.RewardTitle,
		RewardDescription: req.RewardDescription,
		Plan:              req.Plan,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Settings updated successfully")
}

// GetCheckInQR returns the PNG QR code customers scan to check in.
func (h *BusinessHandler) GetCheckInQR(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateCheckInQR(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetStats returns the dashboard counters of the business.
func (h *BusinessHandler) GetStats(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.GetStats(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
