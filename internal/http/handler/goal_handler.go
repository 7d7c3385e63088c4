package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// @Summary Get sales goals
// @Description Monthly quotas of a year keyed "1" to "12". A year without quotas returns an empty map.
// @Tags Goals
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} domain.GoalDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /goals/{year} [get]
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}

	goal, err := h.goalService.GetGoal(r.Context(), year)
	if err != nil {
		h.logger.Error("failed to get goal", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to get goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

// @Summary Set sales goals
// @Description Replaces the monthly quotas of a year. The year in the path wins over the body.
// @Tags Goals
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param request body domain.UpsertGoalRequest true "Monthly quotas"
// @Success 200 {object} domain.GoalDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /goals/{year} [put]
func (h *GoalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}

	var req domain.UpsertGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	req.Year = year
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	goal, err := h.goalService.UpsertGoal(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to save goal", zap.Error(err), zap.Int("year", year))
		respondWithError(w, http.StatusInternalServerError, "Failed to save goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func yearParam(r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, false
	}
	return year, true
}
