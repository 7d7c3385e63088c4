package analytics_test

import (
	"math"
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	aged := forecastDeal("aged", 1000, 50, "2025-10-31")
	aged.CreatedAt = testNow.AddDate(0, 0, -10)

	fresh := openDeal("fresh", "s2", 0)
	fresh.Value = nil
	fresh.CreatedAt = testNow.Add(-4 * time.Hour)

	won := wonDeal("won", 5000, testNow)
	won.CreatedAt = time.Date(2025, 10, 15, 1, 0, 0, 0, time.UTC)

	lost := lostDeal("lost")
	lost.CreatedAt = testNow.AddDate(0, -1, 0)

	metrics := analytics.Metrics([]domain.Deal{aged, fresh, won, lost}, testStages(), testNow)

	assert.Equal(t, 4, metrics.TotalOpportunities)
	assert.Equal(t, 2, metrics.CreatedToday)
	assert.Equal(t, float64(1000), metrics.PipelineValue)
	assert.Equal(t, float64(500), metrics.WeightedForecast)
	assert.Equal(t, float64(50), metrics.ConversionRate)
	assert.InDelta(t, (10+4.0/24)/2, metrics.AverageAgeDays, 1e-9)
}

func TestMetrics_Empty(t *testing.T) {
	metrics := analytics.Metrics(nil, nil, testNow)

	assert.Equal(t, domain.DashboardMetrics{}, metrics)
}

func TestMetrics_OnlyClosedDeals(t *testing.T) {
	deals := []domain.Deal{
		wonDeal("w1", 100, testNow),
		wonDeal("w2", 100, testNow),
		wonDeal("w3", 100, testNow),
		lostDeal("l1"),
	}

	metrics := analytics.Metrics(deals, testStages(), testNow)

	assert.Equal(t, float64(75), metrics.ConversionRate)
	assert.Zero(t, metrics.PipelineValue)
	assert.Zero(t, metrics.AverageAgeDays)
	assert.False(t, math.IsNaN(metrics.AverageAgeDays))
}

func TestMetrics_CreatedTodayUsesLocationOfNow(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, bogota)
	deal := openDeal("d1", "s1", 1)
	// 2025-10-15 02:00 UTC is the evening of 2025-10-14 in Bogotá
	deal.CreatedAt = time.Date(2025, 10, 15, 2, 0, 0, 0, time.UTC)

	assert.Zero(t, analytics.Metrics([]domain.Deal{deal}, testStages(), now).CreatedToday)
	assert.Equal(t, 1, analytics.Metrics([]domain.Deal{deal}, testStages(), now.In(time.UTC)).CreatedToday)
}
