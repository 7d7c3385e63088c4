package handler

import (
	"errors"
	"net/http"

	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// @Summary Get analytics charts
// @Description Chart data of the analytics page for one pipeline.
// @Description
// @Description - `funnel`: deal count per non-terminal stage, in board order
// @Description - `salesByPeriod`: won value per week of the year `S<n>` over the trailing 8 weeks, oldest first
// @Description - `salespersonRanking`: won value per owner, highest first
// @Description - `salesBySector`: won value per account sector, in first-seen sector order
// @Description - `goalVsActual`: monthly quota, won value this month, and won plus weighted forecast
// @Description - `winLoss`: won and lost deal counts per sector, in first-seen sector order
// @Tags Analytics
// @Produce json
// @Param pipelineId query string true "Pipeline ID"
// @Success 200 {object} domain.AnalyticsCharts
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /analytics [get]
func (h *AnalyticsHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	pipelineID := r.URL.Query().Get("pipelineId")
	if _, err := uuid.Parse(pipelineID); err != nil {
		respondWithError(w, http.StatusBadRequest, "pipelineId is required and must be a valid UUID")
		return
	}

	charts, err := h.analyticsService.GetCharts(r.Context(), pipelineID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Pipeline not found")
			return
		}
		h.logger.Error("failed to compute analytics", zap.Error(err), zap.String("pipeline_id", pipelineID))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}

	respondJSON(w, http.StatusOK, charts)
}
