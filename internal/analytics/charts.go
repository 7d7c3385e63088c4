package analytics

import (
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// Snapshot is the in-memory view of the tables the engine reads.
// Deals and Stages usually belong to one pipeline; Users, Accounts and Goals
// are global.
type Snapshot struct {
	Deals    []domain.Deal
	Stages   []domain.Stage
	Users    []domain.UserProfile
	Accounts []domain.Account
	Goals    []domain.Goal
}

// Charts builds every chart of the analytics page from one snapshot
func Charts(pipelineID string, s Snapshot, now time.Time) domain.AnalyticsCharts {
	return domain.AnalyticsCharts{
		PipelineID:         pipelineID,
		GeneratedAt:        now,
		Funnel:             Funnel(s.Deals, s.Stages),
		SalesByPeriod:      SalesByPeriod(s.Deals, s.Stages, now),
		SalespersonRanking: SalespersonRanking(s.Deals, s.Users, s.Stages),
		SalesBySector:      SalesBySector(s.Deals, s.Accounts, s.Stages),
		GoalVsActual:       GoalVsActual(s.Deals, s.Goals, s.Stages, now),
		WinLoss:            WinLoss(s.Deals, s.Accounts, s.Stages),
	}
}

// Dashboard pairs the charts with the KPI cards of the same snapshot
func Dashboard(pipelineID string, s Snapshot, now time.Time) domain.AnalyticsSnapshot {
	return domain.AnalyticsSnapshot{
		Charts:  Charts(pipelineID, s, now),
		Metrics: Metrics(s.Deals, s.Stages, now),
	}
}
