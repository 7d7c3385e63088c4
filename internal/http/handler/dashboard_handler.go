package handler

import (
	"errors"
	"net/http"

	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// @Summary Get dashboard metrics
// @Description KPI cards shown above the board. Without `pipelineId` every deal is counted.
// @Description
// @Description - `totalOpportunities`: every deal in scope
// @Description - `createdToday`: deals created today in the server's timezone
// @Description - `pipelineValue`: value of open deals
// @Description - `weightedForecast`: value * probability/100 of open deals expected to close this month
// @Description - `conversionRate`: won / (won + lost) * 100
// @Description - `averageAgeDays`: mean age of open deals
// @Tags Dashboard
// @Produce json
// @Param pipelineId query string false "Pipeline ID"
// @Success 200 {object} domain.DashboardMetrics
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	pipelineID := r.URL.Query().Get("pipelineId")
	if pipelineID != "" {
		if _, err := uuid.Parse(pipelineID); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid pipelineId: must be a valid UUID")
			return
		}
	}

	metrics, err := h.dashboardService.GetMetrics(r.Context(), pipelineID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Pipeline not found")
			return
		}
		h.logger.Error("failed to get dashboard metrics", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get dashboard metrics")
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}
