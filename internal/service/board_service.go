package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/auth"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/mapper"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// BoardService serves the Kanban board and the deal mutations made on it
type BoardService struct {
	pipelineRepo *repository.PipelineRepository
	stageRepo    *repository.StageRepository
	dealRepo     *repository.DealRepository
	userRepo     *repository.UserRepository
	accountRepo  *repository.AccountRepository
	clock        analytics.Clock
	logger       *zap.Logger
}

func NewBoardService(
	pipelineRepo *repository.PipelineRepository,
	stageRepo *repository.StageRepository,
	dealRepo *repository.DealRepository,
	userRepo *repository.UserRepository,
	accountRepo *repository.AccountRepository,
	clock analytics.Clock,
	logger *zap.Logger,
) *BoardService {
	return &BoardService{
		pipelineRepo: pipelineRepo,
		stageRepo:    stageRepo,
		dealRepo:     dealRepo,
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		clock:        clock,
		logger:       logger,
	}
}

func (s *BoardService) ListPipelines(ctx context.Context) ([]domain.PipelineDTO, error) {
	pipelines, err := s.pipelineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}
	dtos := make([]domain.PipelineDTO, len(pipelines))
	for i := range pipelines {
		dtos[i] = mapper.ToPipelineDTO(&pipelines[i])
	}
	return dtos, nil
}

// GetBoard returns the stages of a pipeline in board order with their deals
func (s *BoardService) GetBoard(ctx context.Context, pipelineID string) (*domain.BoardDTO, error) {
	pipeline, err := s.pipelineRepo.GetByID(ctx, pipelineID)
	if err != nil {
		return nil, lookupError("pipeline", err)
	}

	var (
		stages   []domain.Stage
		deals    []domain.Deal
		users    []domain.UserProfile
		accounts []domain.Account
	)
	g, gctx := errgroup.WithContext(ctx)
	// deals belong to a column by stage, so a deal with no pipeline still shows
	g.Go(func() (err error) {
		stages, err = s.stageRepo.ListByPipeline(gctx, pipelineID)
		if err != nil {
			return wrapLoad("stages", err)
		}
		stageIDs := make([]string, len(stages))
		for i := range stages {
			stageIDs[i] = stages[i].ID
		}
		deals, err = s.dealRepo.ListByStages(gctx, stageIDs)
		return wrapLoad("deals", err)
	})
	g.Go(func() (err error) {
		users, err = s.userRepo.List(gctx)
		return wrapLoad("users", err)
	})
	g.Go(func() (err error) {
		accounts, err = s.accountRepo.List(gctx)
		return wrapLoad("accounts", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	board := mapper.ToBoardDTO(pipeline, stages, deals, users, accounts)
	return &board, nil
}

// CreateDeal places a new deal in a stage. The deal joins the stage's
// pipeline and is owned by the caller unless another owner is given.
func (s *BoardService) CreateDeal(ctx context.Context, req *domain.CreateDealRequest) (*domain.DealDTO, error) {
	stage, err := s.stageRepo.GetByID(ctx, req.StageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stage %s does not exist: %w", req.StageID, ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	if err := s.checkAccount(ctx, req.AccountID); err != nil {
		return nil, err
	}

	pipelineID := stage.PipelineID
	deal := &domain.Deal{
		Title:             req.Title,
		StageID:           stage.ID,
		PipelineID:        &pipelineID,
		Value:             req.Value,
		Probability:       req.Probability,
		ExpectedCloseDate: req.ExpectedCloseDate,
		AccountID:         req.AccountID,
		OwnerID:           req.OwnerID,
		Pain:              req.Pain,
		Source:            req.Source,
		NextSteps:         req.NextSteps,
		Status:            domain.DealStatusOpen,
	}
	if deal.OwnerID == nil {
		if user, ok := auth.FromContext(ctx); ok {
			deal.OwnerID = user.OwnerID()
		}
	}
	if stage.IsClosing() {
		closedAt := s.clock.Now()
		deal.Status = domain.DealStatusClosed
		deal.ClosedAt = &closedAt
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	s.logger.Info("deal created",
		zap.String("deal_id", deal.ID),
		zap.String("pipeline_id", pipelineID),
		zap.String("stage_id", stage.ID),
	)
	dto := mapper.ToDealDTO(deal)
	return &dto, nil
}

// UpdateDeal edits the free fields of a deal. The stage is changed with MoveDeal.
func (s *BoardService) UpdateDeal(ctx context.Context, id string, req *domain.UpdateDealRequest) (*domain.DealDTO, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("deal", err)
	}
	if err := s.checkAccount(ctx, req.AccountID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		deal.Title = *req.Title
	}
	if req.AccountID != nil {
		deal.AccountID = req.AccountID
	}
	if req.OwnerID != nil {
		deal.OwnerID = req.OwnerID
	}
	if req.Value != nil {
		deal.Value = req.Value
	}
	if req.Probability != nil {
		deal.Probability = req.Probability
	}
	if req.ExpectedCloseDate != nil {
		deal.ExpectedCloseDate = req.ExpectedCloseDate
	}
	if req.Pain != nil {
		deal.Pain = req.Pain
	}
	if req.Source != nil {
		deal.Source = req.Source
	}
	if req.NextSteps != nil {
		deal.NextSteps = req.NextSteps
	}

	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}
	dto := mapper.ToDealDTO(deal)
	return &dto, nil
}

// MoveDeal drops a deal into another stage of its pipeline. Entering a
// terminal stage closes the deal now; any other stage reopens it.
func (s *BoardService) MoveDeal(ctx context.Context, id string, req *domain.MoveDealRequest) (*domain.DealDTO, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("deal", err)
	}
	target, err := s.stageRepo.GetByID(ctx, req.StageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stage %s does not exist: %w", req.StageID, ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}

	pipelineID, err := s.pipelineOf(ctx, deal)
	if err != nil {
		return nil, err
	}
	if pipelineID != "" && pipelineID != target.PipelineID {
		return nil, fmt.Errorf("stage %s belongs to another pipeline: %w", target.ID, ErrInvalidInput)
	}

	status := domain.DealStatusOpen
	var closedAt *time.Time
	if target.IsClosing() {
		now := s.clock.Now()
		status = domain.DealStatusClosed
		closedAt = &now
	}

	if err := s.dealRepo.UpdateStage(ctx, deal.ID, target, status, closedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to move deal: %w", err)
	}

	s.logger.Info("deal moved",
		zap.String("deal_id", deal.ID),
		zap.String("from_stage", deal.StageID),
		zap.String("to_stage", target.ID),
		zap.String("status", status),
	)

	deal.StageID = target.ID
	if deal.PipelineID == nil {
		deal.PipelineID = &target.PipelineID
	}
	deal.Status = status
	deal.ClosedAt = closedAt
	dto := mapper.ToDealDTO(deal)
	return &dto, nil
}

func (s *BoardService) DeleteDeal(ctx context.Context, id string) error {
	if err := s.dealRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("deal: %w", ErrNotFound)
		}
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	s.logger.Info("deal deleted", zap.String("deal_id", id))
	return nil
}

// pipelineOf resolves the pipeline of a deal, falling back to the pipeline
// of its current stage. An empty result means it cannot be determined.
func (s *BoardService) pipelineOf(ctx context.Context, deal *domain.Deal) (string, error) {
	if deal.PipelineID != nil && *deal.PipelineID != "" {
		return *deal.PipelineID, nil
	}
	current, err := s.stageRepo.GetByID(ctx, deal.StageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get stage: %w", err)
	}
	return current.PipelineID, nil
}

func (s *BoardService) checkAccount(ctx context.Context, accountID *string) error {
	if accountID == nil {
		return nil
	}
	if _, err := s.accountRepo.GetByID(ctx, *accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("account %s does not exist: %w", *accountID, ErrInvalidInput)
		}
		return fmt.Errorf("failed to get account: %w", err)
	}
	return nil
}
