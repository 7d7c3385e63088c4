package analytics_test

import (
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGoalVsActual(t *testing.T) {
	goals := []domain.Goal{
		{Year: 2024, Months: map[string]float64{"10": 1}},
		{Year: 2025, Months: map[string]float64{"9": 5, "10": 2000000}},
	}
	deals := []domain.Deal{
		wonDeal("this month", 500000, time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)),
		wonDeal("last month", 100, time.Date(2025, 9, 30, 23, 0, 0, 0, time.UTC)),
		wonDeal("last year", 100, time.Date(2024, 10, 2, 9, 0, 0, 0, time.UTC)),
		{ID: "won without close date", StageID: "won", Value: floatPtr(100)},
		forecastDeal("forecast", 2000000, 50, "2025-10-20"),
	}

	result := analytics.GoalVsActual(deals, goals, testStages(), testNow)

	assert.Equal(t, domain.GoalVsActual{
		Goal:       2000000,
		Actual:     500000,
		Forecast:   1500000,
		Percentage: 25,
	}, result)
}

func TestGoalVsActual_ZeroGoal(t *testing.T) {
	deals := []domain.Deal{wonDeal("d1", 750, testNow)}

	tests := []struct {
		name  string
		goals []domain.Goal
	}{
		{"no goals", nil},
		{"other year", []domain.Goal{{Year: 2024, Months: map[string]float64{"10": 1000}}}},
		{"month missing", []domain.Goal{{Year: 2025, Months: map[string]float64{"11": 1000}}}},
		{"explicit zero", []domain.Goal{{Year: 2025, Months: map[string]float64{"10": 0}}}},
		{"nil months", []domain.Goal{{Year: 2025}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analytics.GoalVsActual(deals, tt.goals, testStages(), testNow)
			assert.Zero(t, result.Goal)
			assert.Equal(t, float64(750), result.Actual)
			assert.Equal(t, float64(750), result.Forecast)
			assert.Equal(t, float64(0), result.Percentage)
		})
	}
}

func TestGoalVsActual_ForecastMatchesWeightedForecast(t *testing.T) {
	deals := []domain.Deal{
		wonDeal("won", 100, testNow),
		forecastDeal("f1", 1000, 10, "2025-10-05"),
		forecastDeal("f2", 500, 40, "2025-10-25"),
	}

	result := analytics.GoalVsActual(deals, nil, testStages(), testNow)

	assert.Equal(t, result.Actual+analytics.WeightedForecast(deals, testStages(), testNow), result.Forecast)
}
