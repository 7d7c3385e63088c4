package service

import (
	"context"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardService computes the KPI cards shown above the board
type DashboardService struct {
	pipelineRepo *repository.PipelineRepository
	stageRepo    *repository.StageRepository
	dealRepo     *repository.DealRepository
	clock        analytics.Clock
	logger       *zap.Logger
}

func NewDashboardService(
	pipelineRepo *repository.PipelineRepository,
	stageRepo *repository.StageRepository,
	dealRepo *repository.DealRepository,
	clock analytics.Clock,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		pipelineRepo: pipelineRepo,
		stageRepo:    stageRepo,
		dealRepo:     dealRepo,
		clock:        clock,
		logger:       logger,
	}
}

// GetMetrics returns the KPIs of one pipeline, or of every deal across all
// pipelines when pipelineID is empty
func (s *DashboardService) GetMetrics(ctx context.Context, pipelineID string) (*domain.DashboardMetrics, error) {
	if pipelineID != "" {
		if _, err := s.pipelineRepo.GetByID(ctx, pipelineID); err != nil {
			return nil, lookupError("pipeline", err)
		}
	}

	var deals []domain.Deal
	var stages []domain.Stage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if pipelineID == "" {
			deals, err = s.dealRepo.List(gctx)
		} else {
			deals, err = s.dealRepo.ListByPipeline(gctx, pipelineID)
		}
		return wrapLoad("deals", err)
	})
	g.Go(func() (err error) {
		if pipelineID == "" {
			stages, err = s.stageRepo.List(gctx)
		} else {
			stages, err = s.stageRepo.ListByPipeline(gctx, pipelineID)
		}
		return wrapLoad("stages", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := analytics.Metrics(deals, stages, s.clock.Now())
	return &metrics, nil
}
