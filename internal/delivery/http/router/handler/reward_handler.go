package handler

import (
	"log/slog"
	"net/http"

	"loyallink/internal/delivery/http/response"
	"loyallink/internal/domain/entity"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RewardHandler holds dependencies for reward lifecycle handlers.
type RewardHandler struct {
	uc     usecase.RewardUsecase
	logger *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler, injected by Fx.
func NewRewardHandler(uc usecase.RewardUsecase, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{
		uc:     uc,
		logger: logger,
	}
}

// IssueReward mints a pending reward for an eligible customer.
func (h *RewardHandler) IssueReward(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	output, err := h.uc.IssueReward(c.Request().Context(), businessID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	statusCode := http.StatusCreated
	message := "Reward issued successfully"
	if output.AlreadyPending {
		statusCode = http.StatusOK
		message = "Customer already has a pending reward"
	}

	return response.Success(c, statusCode, output, message)
}

type claimRequest struct {
	ClaimCode string `json:"claim_code" validate:"required,len=6,numeric"`
}

// ClaimReward redeems a pending reward by claim code.
func (h *RewardHandler) ClaimReward(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	var req claimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.uc.ClaimReward(c.Request().Context(), businessID, req.ClaimCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reward claimed successfully")
}

type publicClaimRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	ClaimCode  string `json:"claim_code" validate:"required,len=6,numeric"`
}

// ClaimRewardPublic redeems a reward from the customer-facing claim page,
// where the business identity comes from the claim link rather than a token.
func (h *RewardHandler) ClaimRewardPublic(c echo.Context) error {
	var req publicClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	output, err := h.uc.ClaimReward(c.Request().Context(), businessID, req.ClaimCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reward claimed successfully")
}

// GetClaimPreview renders the display data for the public claim page.
func (h *RewardHandler) GetClaimPreview(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("businessID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	claimCode := c.Param("code")
	if len(claimCode) != entity.ClaimCodeLength {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid claim code format")
	}

	preview, err := h.uc.GetClaimPreview(c.Request().Context(), businessID, claimCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, preview, "Claim preview retrieved successfully")
}

// ListRewards lists the rewards of the authenticated business.
func (h *RewardHandler) ListRewards(c echo.Context) error {
	businessID, err := authedBusinessID(c)
	if err != nil {
		return err
	}

	var status *entity.RewardStatus
	switch raw := c.QueryParam("status"); raw {
	case "":
	case string(entity.RewardStatusPending), string(entity.RewardStatusCompleted):
		s := entity.RewardStatus(raw)
		status = &s
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Unknown reward status filter")
	}

	limit, offset := pagination(c)

	rewards, err := h.uc.ListRewards(c.Request().Context(), businessID, status, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rewards, "Rewards retrieved successfully")
}
