package analytics

import (
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// Metrics computes the KPI cards of the board header.
// Rates and averages over an empty population are 0.
func Metrics(deals []domain.Deal, stages []domain.Stage, now time.Time) domain.DashboardMetrics {
	idx := indexStages(stages)

	var won, lost, createdToday int
	var open []*domain.Deal
	for i := range deals {
		switch idx.status(&deals[i]) {
		case StatusWon:
			won++
		case StatusLost:
			lost++
		default:
			open = append(open, &deals[i])
		}
		if sameDay(deals[i].CreatedAt.In(now.Location()), now) {
			createdToday++
		}
	}

	var pipelineValue, totalAgeDays float64
	for _, deal := range open {
		pipelineValue += deal.ValueOrZero()
		totalAgeDays += now.Sub(deal.CreatedAt).Hours() / 24
	}

	metrics := domain.DashboardMetrics{
		TotalOpportunities: len(deals),
		CreatedToday:       createdToday,
		PipelineValue:      pipelineValue,
		WeightedForecast:   WeightedForecast(deals, stages, now),
	}
	if closed := won + lost; closed > 0 {
		metrics.ConversionRate = float64(won) / float64(closed) * 100
	}
	if len(open) > 0 {
		metrics.AverageAgeDays = totalAgeDays / float64(len(open))
	}
	return metrics
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
