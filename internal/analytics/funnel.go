package analytics

import (
	"sort"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// Funnel counts the deals sitting in each open stage, left to right by stage order.
// Terminal stages are not part of the funnel. Deals are counted regardless of age.
func Funnel(deals []domain.Deal, stages []domain.Stage) domain.ChartSeries {
	open := make([]*domain.Stage, 0, len(stages))
	for i := range stages {
		if !stages[i].IsClosing() {
			open = append(open, &stages[i])
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Order < open[j].Order
	})

	counts := make(map[string]int, len(open))
	for i := range deals {
		counts[deals[i].StageID]++
	}

	series := domain.ChartSeries{
		Labels: make([]string, len(open)),
		Data:   make([]float64, len(open)),
	}
	for i, stage := range open {
		series.Labels[i] = stage.Name
		series.Data[i] = float64(counts[stage.ID])
	}
	return series
}
