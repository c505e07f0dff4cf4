package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/response"
)

type ReputationHandler struct {
	reputationUseCase *usecase.ReputationUseCase
	defaultLimit      int
}

func NewReputationHandler(reputationUseCase *usecase.ReputationUseCase, defaultLimit int) *ReputationHandler {
	return &ReputationHandler{
		reputationUseCase: reputationUseCase,
		defaultLimit:      defaultLimit,
	}
}

func (h *ReputationHandler) GetReputation(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	reputation, err := h.reputationUseCase.GetReputation(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reputation)
}

func (h *ReputationHandler) RecalculateReputation(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	// Hanya user sendiri yang boleh memicu perhitungan ulang; admin
	// memakai endpoint batch.
	uid, _ := c.Get("uid").(string)
	if uid != userID {
		return response.Error(c, errors.Forbidden("Cannot recalculate another user's reputation", nil))
	}

	reputation, err := h.reputationUseCase.CalculateReputation(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reputation)
}

func (h *ReputationHandler) RecomputeAll(c echo.Context) error {
	summary, err := h.reputationUseCase.RecomputeAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

type leaderboardQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (h *ReputationHandler) GetTopRated(c echo.Context) error {
	limit, err := h.limitFromQuery(c)
	if err != nil {
		return response.Error(c, err)
	}

	entries, err := h.reputationUseCase.TopRatedUsers(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

func (h *ReputationHandler) GetTrustedSellers(c echo.Context) error {
	limit, err := h.limitFromQuery(c)
	if err != nil {
		return response.Error(c, err)
	}

	entries, err := h.reputationUseCase.TrustedSellers(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

func (h *ReputationHandler) limitFromQuery(c echo.Context) (int, error) {
	var query leaderboardQuery
	if err := c.Bind(&query); err != nil {
		return 0, errors.BadRequest("Invalid query parameters", err)
	}
	if err := c.Validate(&query); err != nil {
		return 0, err
	}

	if query.Limit <= 0 {
		return h.defaultLimit, nil
	}
	return query.Limit, nil
}
