package handler

import (
	"errors"
	"net/http"

	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"go.uber.org/zap"
)

type PipelineHandler struct {
	boardService *service.BoardService
	logger       *zap.Logger
}

func NewPipelineHandler(boardService *service.BoardService, logger *zap.Logger) *PipelineHandler {
	return &PipelineHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// @Summary List pipelines
// @Description Pipelines available in the pipeline selector, oldest first
// @Tags Pipelines
// @Produce json
// @Success 200 {array} domain.PipelineDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /pipelines [get]
func (h *PipelineHandler) List(w http.ResponseWriter, r *http.Request) {
	pipelines, err := h.boardService.ListPipelines(r.Context())
	if err != nil {
		h.logger.Error("failed to list pipelines", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list pipelines")
		return
	}

	respondJSON(w, http.StatusOK, pipelines)
}

// @Summary Get pipeline board
// @Description Stages of the pipeline in board order, each with its deal cards
// @Tags Pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Success 200 {object} domain.BoardDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /pipelines/{id}/board [get]
func (h *PipelineHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid pipeline ID: must be a valid UUID")
		return
	}

	board, err := h.boardService.GetBoard(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Pipeline not found")
			return
		}
		h.logger.Error("failed to get board", zap.Error(err), zap.String("pipeline_id", id))
		respondWithError(w, http.StatusInternalServerError, "Failed to get board")
		return
	}

	respondJSON(w, http.StatusOK, board)
}
