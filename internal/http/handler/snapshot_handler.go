package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SnapshotHandler struct {
	snapshotService *service.SnapshotService
	logger          *zap.Logger
}

func NewSnapshotHandler(snapshotService *service.SnapshotService, logger *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
		logger:          logger,
	}
}

// @Summary Get an exported analytics snapshot
// @Description Charts and KPI cards of a pipeline as exported by the nightly job on the given day.
// @Tags Analytics
// @Produce json
// @Param pipelineId path string true "Pipeline ID"
// @Param date path string true "Export day (YYYY-MM-DD)"
// @Success 200 {object} domain.AnalyticsSnapshot
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /analytics/snapshots/{pipelineId}/{date} [get]
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	pipelineID, ok := uuidParam(r, "pipelineId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid pipelineId: must be a valid UUID")
		return
	}
	day, err := time.Parse(service.SnapshotDateLayout, chi.URLParam(r, "date"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
		return
	}

	rc, err := h.snapshotService.Open(r.Context(), pipelineID, day)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Snapshot not found")
			return
		}
		h.logger.Error("failed to read analytics snapshot", zap.String("pipeline_id", pipelineID), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to read analytics snapshot")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("failed to stream analytics snapshot", zap.String("pipeline_id", pipelineID), zap.Error(err))
	}
}
