package analytics_test

import (
	"testing"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFunnel_CountsOpenStagesOnly(t *testing.T) {
	stages := []domain.Stage{
		{ID: "s1", Name: "Prospecto", Order: 1},
		{ID: "s2", Name: "Ganado", Order: 2, StdMap: strPtr(domain.StdMapWon)},
		{ID: "s3", Name: "Perdido", Order: 3, StdMap: strPtr(domain.StdMapLost)},
	}
	deals := []domain.Deal{
		{ID: "d1", StageID: "s1"},
		{ID: "d2", StageID: "s1"},
		{ID: "d3", StageID: "s2"},
		{ID: "d4", StageID: "s3"},
	}

	series := analytics.Funnel(deals, stages)

	assert.Equal(t, []string{"Prospecto"}, series.Labels)
	assert.Equal(t, []float64{2}, series.Data)
}

func TestFunnel_OrdersByStageOrder(t *testing.T) {
	deals := []domain.Deal{
		openDeal("d1", "s2", 100),
		openDeal("d2", "s2", 200),
		openDeal("d3", "s1", 300),
		openDeal("d4", "unknown", 400),
	}

	series := analytics.Funnel(deals, testStages())

	assert.Equal(t, []string{"Prospecto", "Propuesta"}, series.Labels)
	assert.Equal(t, []float64{1, 2}, series.Data)
}

func TestFunnel_EqualOrderKeepsInputOrder(t *testing.T) {
	stages := []domain.Stage{
		{ID: "b", Name: "B", Order: 1},
		{ID: "a", Name: "A", Order: 1},
	}

	series := analytics.Funnel(nil, stages)

	assert.Equal(t, []string{"B", "A"}, series.Labels)
	assert.Equal(t, []float64{0, 0}, series.Data)
}

func TestFunnel_NoOpenStages(t *testing.T) {
	stages := []domain.Stage{
		{ID: "won", Name: "Ganado", StdMap: strPtr(domain.StdMapWon)},
	}

	series := analytics.Funnel([]domain.Deal{{ID: "d1", StageID: "won"}}, stages)

	assert.NotNil(t, series.Labels)
	assert.NotNil(t, series.Data)
	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Data)
}
