package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/Cdhernandezr/abchroy-crm/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAnalytics(t *testing.T, s *services) *testutil.Fixture {
	f := testutil.CreatePipeline(t, s.db, "Ventas")
	other := testutil.CreatePipeline(t, s.db, "Renovaciones")
	ana := testutil.CreateUser(t, s.db, "Ana")
	bruno := testutil.CreateUser(t, s.db, "Bruno")
	retail := testutil.CreateAccount(t, s.db, "Acme", "Retail")
	energy := testutil.CreateAccount(t, s.db, "Globex", "Energía")

	insertDeal(t, s.db, dealSpec{stage: f.Won, value: 3000, ownerID: ana.ID, accountID: retail.ID, closedAt: timePtr(testNow.AddDate(0, 0, -1))})
	insertDeal(t, s.db, dealSpec{stage: f.Won, value: 2000, ownerID: bruno.ID, accountID: energy.ID, closedAt: timePtr(testNow.AddDate(0, 0, -2))})
	insertDeal(t, s.db, dealSpec{stage: f.Lost, value: 900, accountID: energy.ID, closedAt: timePtr(testNow.AddDate(0, 0, -2))})
	insertDeal(t, s.db, dealSpec{stage: f.Lead, value: 4000, expected: "2025-10-30", prob: 50, createdAt: testNow.Add(-2 * time.Hour)})
	insertDeal(t, s.db, dealSpec{stage: other.Won, value: 99999, ownerID: bruno.ID, closedAt: timePtr(testNow)})

	_, err := s.goals.UpsertGoal(context.Background(), &domain.UpsertGoalRequest{
		Year:   2025,
		Months: map[string]float64{"10": 10000},
	})
	require.NoError(t, err)
	return f
}

func TestAnalyticsService_GetCharts(t *testing.T) {
	s := newServices(t)
	f := seedAnalytics(t, s)

	charts, err := s.analytics.GetCharts(context.Background(), f.Pipeline.ID)
	require.NoError(t, err)

	assert.Equal(t, f.Pipeline.ID, charts.PipelineID)
	assert.Equal(t, testNow, charts.GeneratedAt)
	assert.Equal(t, []string{"Prospecto", "Propuesta"}, charts.Funnel.Labels)
	assert.Equal(t, []float64{1, 0}, charts.Funnel.Data)
	assert.Equal(t, []string{"Ana", "Bruno"}, charts.SalespersonRanking.Labels)
	assert.Equal(t, []float64{3000, 2000}, charts.SalespersonRanking.Data)
	assert.ElementsMatch(t, []string{"Retail", "Energía"}, charts.SalesBySector.Labels)
	assert.ElementsMatch(t, []string{"Retail", "Energía"}, charts.WinLoss.Labels)
	assert.Len(t, charts.SalesByPeriod.Labels, 8)
	assert.Equal(t, float64(5000), sum(charts.SalesByPeriod.Data))
	assert.Equal(t, domain.GoalVsActual{Goal: 10000, Actual: 5000, Forecast: 7000, Percentage: 50}, charts.GoalVsActual)
}

func TestAnalyticsService_GetSnapshot(t *testing.T) {
	s := newServices(t)
	f := seedAnalytics(t, s)

	snap, err := s.analytics.GetSnapshot(context.Background(), f.Pipeline.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, snap.Metrics.TotalOpportunities)
	assert.Equal(t, 1, snap.Metrics.CreatedToday)
	assert.Equal(t, float64(4000), snap.Metrics.PipelineValue)
	assert.InDelta(t, 66.666, snap.Metrics.ConversionRate, 0.001)
	assert.Equal(t, snap.Charts.GoalVsActual.Forecast-snap.Charts.GoalVsActual.Actual, snap.Metrics.WeightedForecast)
}

func TestAnalyticsService_EmptyPipeline(t *testing.T) {
	s := newServices(t)
	f := testutil.CreatePipeline(t, s.db, "Vacío")

	charts, err := s.analytics.GetCharts(context.Background(), f.Pipeline.ID)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, charts.Funnel.Data)
	assert.Empty(t, charts.SalespersonRanking.Labels)
	assert.Zero(t, charts.GoalVsActual.Percentage)
}

func TestAnalyticsService_UnknownPipeline(t *testing.T) {
	s := newServices(t)

	_, err := s.analytics.GetCharts(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAnalyticsService_ListPipelineIDs(t *testing.T) {
	s := newServices(t)
	a := testutil.CreatePipeline(t, s.db, "A")
	b := testutil.CreatePipeline(t, s.db, "B")

	ids, err := s.analytics.ListPipelineIDs(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.Pipeline.ID, b.Pipeline.ID}, ids)
}

func TestDashboardService_GetMetrics(t *testing.T) {
	s := newServices(t)
	f := seedAnalytics(t, s)
	ctx := context.Background()

	scoped, err := s.dashboard.GetMetrics(ctx, f.Pipeline.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, scoped.TotalOpportunities)
	assert.Equal(t, float64(2000), scoped.WeightedForecast)

	all, err := s.dashboard.GetMetrics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 5, all.TotalOpportunities)
	assert.Equal(t, float64(75), all.ConversionRate)

	_, err = s.dashboard.GetMetrics(ctx, uuid.NewString())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
