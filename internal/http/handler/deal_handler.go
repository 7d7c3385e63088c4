package handler

import (
	"errors"
	"net/http"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"go.uber.org/zap"
)

type DealHandler struct {
	boardService *service.BoardService
	logger       *zap.Logger
}

func NewDealHandler(boardService *service.BoardService, logger *zap.Logger) *DealHandler {
	return &DealHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// @Summary Create deal
// @Description Creates a deal in a stage. The deal joins the stage's pipeline and is owned by the caller unless ownerId is given.
// @Tags Deals
// @Accept json
// @Produce json
// @Param request body domain.CreateDealRequest true "Deal data"
// @Success 201 {object} domain.DealDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /deals [post]
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDealRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deal, err := h.boardService.CreateDeal(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create deal", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create deal")
		return
	}

	respondJSON(w, http.StatusCreated, deal)
}

// @Summary Update deal
// @Description Edits the free fields of a deal. Omitted fields are left unchanged; use the move endpoint to change stage.
// @Tags Deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body domain.UpdateDealRequest true "Fields to change"
// @Success 200 {object} domain.DealDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /deals/{id} [put]
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	var req domain.UpdateDealRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deal, err := h.boardService.UpdateDeal(r.Context(), id, &req)
	if err != nil {
		h.respondDealError(w, err, "Failed to update deal")
		return
	}

	respondJSON(w, http.StatusOK, deal)
}

// @Summary Move deal
// @Description Drops a deal into another stage of its pipeline. A won or lost stage closes the deal; any other stage reopens it.
// @Tags Deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body domain.MoveDealRequest true "Target stage"
// @Success 200 {object} domain.DealDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /deals/{id}/move [post]
func (h *DealHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	var req domain.MoveDealRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deal, err := h.boardService.MoveDeal(r.Context(), id, &req)
	if err != nil {
		h.respondDealError(w, err, "Failed to move deal")
		return
	}

	respondJSON(w, http.StatusOK, deal)
}

// @Summary Delete deal
// @Tags Deals
// @Param id path string true "Deal ID"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /deals/{id} [delete]
func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	if err := h.boardService.DeleteDeal(r.Context(), id); err != nil {
		h.respondDealError(w, err, "Failed to delete deal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DealHandler) respondDealError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Deal not found")
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(message, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, message)
	}
}
