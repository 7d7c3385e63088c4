package analytics

import (
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// GoalVsActual compares the quota of now's month with the value already won
// this month and with the total forecast (won plus WeightedForecast).
// Percentage is actual over goal in percent, and exactly 0 when no quota is set.
func GoalVsActual(deals []domain.Deal, goals []domain.Goal, stages []domain.Stage, now time.Time) domain.GoalVsActual {
	var monthlyGoal float64
	for i := range goals {
		if goals[i].Year == now.Year() {
			monthlyGoal = goals[i].MonthlyQuota(int(now.Month()))
			break
		}
	}

	idx := indexStages(stages)
	var actual float64
	for _, deal := range idx.filter(deals, StatusWon) {
		if deal.ClosedAt == nil {
			continue
		}
		closed := deal.ClosedAt.In(now.Location())
		if closed.Year() == now.Year() && closed.Month() == now.Month() {
			actual += deal.ValueOrZero()
		}
	}

	result := domain.GoalVsActual{
		Goal:     monthlyGoal,
		Actual:   actual,
		Forecast: actual + WeightedForecast(deals, stages, now),
	}
	if monthlyGoal > 0 {
		result.Percentage = actual / monthlyGoal * 100
	}
	return result
}
