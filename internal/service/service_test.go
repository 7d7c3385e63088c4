package service_test

import (
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/Cdhernandezr/abchroy-crm/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

type services struct {
	db        *gorm.DB
	analytics *service.AnalyticsService
	dashboard *service.DashboardService
	board     *service.BoardService
	goals     *service.GoalService
}

func newServices(t *testing.T) *services {
	db := testutil.SetupTestDB(t)
	clock := analytics.FixedClock{T: testNow}
	log := zap.NewNop()

	pipelineRepo := repository.NewPipelineRepository(db)
	stageRepo := repository.NewStageRepository(db)
	dealRepo := repository.NewDealRepository(db)
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	return &services{
		db:        db,
		analytics: service.NewAnalyticsService(pipelineRepo, stageRepo, dealRepo, userRepo, accountRepo, goalRepo, clock, log),
		dashboard: service.NewDashboardService(pipelineRepo, stageRepo, dealRepo, clock, log),
		board:     service.NewBoardService(pipelineRepo, stageRepo, dealRepo, userRepo, accountRepo, clock, log),
		goals:     service.NewGoalService(goalRepo, log),
	}
}

// dealSpec describes a deal to insert with full control over its dates
type dealSpec struct {
	stage     domain.Stage
	value     float64
	ownerID   string
	accountID string
	createdAt time.Time
	closedAt  *time.Time
	expected  string
	prob      float64
}

func insertDeal(t *testing.T, db *gorm.DB, d dealSpec) *domain.Deal {
	t.Helper()

	pipelineID := d.stage.PipelineID
	deal := &domain.Deal{
		Title:      "Deal",
		StageID:    d.stage.ID,
		PipelineID: &pipelineID,
		Value:      testutil.FloatPtr(d.value),
		CreatedAt:  d.createdAt,
		ClosedAt:   d.closedAt,
		Status:     domain.DealStatusOpen,
	}
	if d.closedAt != nil {
		deal.Status = domain.DealStatusClosed
	}
	if d.ownerID != "" {
		deal.OwnerID = testutil.StrPtr(d.ownerID)
	}
	if d.accountID != "" {
		deal.AccountID = testutil.StrPtr(d.accountID)
	}
	if d.expected != "" {
		deal.ExpectedCloseDate = testutil.StrPtr(d.expected)
		deal.Probability = testutil.FloatPtr(d.prob)
	}
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = testNow.AddDate(0, 0, -3)
	}
	require.NoError(t, db.Create(deal).Error)
	return deal
}

func timePtr(t time.Time) *time.Time { return &t }
