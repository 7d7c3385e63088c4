package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/logger"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService loads pipeline snapshots and runs them through the
// analytics engine
type AnalyticsService struct {
	pipelineRepo *repository.PipelineRepository
	stageRepo    *repository.StageRepository
	dealRepo     *repository.DealRepository
	userRepo     *repository.UserRepository
	accountRepo  *repository.AccountRepository
	goalRepo     *repository.GoalRepository
	clock        analytics.Clock
	logger       *zap.Logger
}

func NewAnalyticsService(
	pipelineRepo *repository.PipelineRepository,
	stageRepo *repository.StageRepository,
	dealRepo *repository.DealRepository,
	userRepo *repository.UserRepository,
	accountRepo *repository.AccountRepository,
	goalRepo *repository.GoalRepository,
	clock analytics.Clock,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		pipelineRepo: pipelineRepo,
		stageRepo:    stageRepo,
		dealRepo:     dealRepo,
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		goalRepo:     goalRepo,
		clock:        clock,
		logger:       logger,
	}
}

// LoadSnapshot fetches the deals and stages of a pipeline together with all
// users, all accounts and the goals of now's year. The five reads run
// concurrently; the first failure cancels the rest.
func (s *AnalyticsService) LoadSnapshot(ctx context.Context, pipelineID string, now time.Time) (analytics.Snapshot, error) {
	if _, err := s.pipelineRepo.GetByID(ctx, pipelineID); err != nil {
		return analytics.Snapshot{}, lookupError("pipeline", err)
	}

	var snap analytics.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Deals, err = s.dealRepo.ListByPipeline(gctx, pipelineID)
		return wrapLoad("deals", err)
	})
	g.Go(func() (err error) {
		snap.Stages, err = s.stageRepo.ListByPipeline(gctx, pipelineID)
		return wrapLoad("stages", err)
	})
	g.Go(func() (err error) {
		snap.Users, err = s.userRepo.List(gctx)
		return wrapLoad("users", err)
	})
	g.Go(func() (err error) {
		snap.Accounts, err = s.accountRepo.List(gctx)
		return wrapLoad("accounts", err)
	})
	g.Go(func() (err error) {
		snap.Goals, err = s.goalRepo.ListByYear(gctx, now.Year())
		return wrapLoad("goals", err)
	})
	if err := g.Wait(); err != nil {
		return analytics.Snapshot{}, err
	}
	return snap, nil
}

// GetCharts computes every chart of the analytics page for a pipeline
func (s *AnalyticsService) GetCharts(ctx context.Context, pipelineID string) (*domain.AnalyticsCharts, error) {
	now := s.clock.Now()
	snap, err := s.LoadSnapshot(ctx, pipelineID, now)
	if err != nil {
		return nil, err
	}

	charts := analytics.Charts(pipelineID, snap, now)
	logger.WithPipeline(s.logger, pipelineID).Debug("analytics computed",
		zap.Int("deals", len(snap.Deals)),
		zap.Int("stages", len(snap.Stages)),
	)
	return &charts, nil
}

// GetSnapshot computes the charts and KPI cards of a pipeline in one pass
func (s *AnalyticsService) GetSnapshot(ctx context.Context, pipelineID string) (*domain.AnalyticsSnapshot, error) {
	now := s.clock.Now()
	snap, err := s.LoadSnapshot(ctx, pipelineID, now)
	if err != nil {
		return nil, err
	}
	result := analytics.Dashboard(pipelineID, snap, now)
	return &result, nil
}

// ListPipelineIDs returns the IDs of every pipeline
func (s *AnalyticsService) ListPipelineIDs(ctx context.Context) ([]string, error) {
	pipelines, err := s.pipelineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}
	ids := make([]string, len(pipelines))
	for i := range pipelines {
		ids[i] = pipelines[i].ID
	}
	return ids, nil
}

func wrapLoad(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}
