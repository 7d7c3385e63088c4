package analytics_test

import (
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// 2025-10-15 is a Wednesday in week S42
var testNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

// testStages is a pipeline with two open stages and both terminal stages,
// deliberately out of order
func testStages() []domain.Stage {
	return []domain.Stage{
		{ID: "s2", Name: "Propuesta", Order: 2},
		{ID: "won", Name: "Ganado", Order: 3, StdMap: strPtr(domain.StdMapWon)},
		{ID: "s1", Name: "Prospecto", Order: 1},
		{ID: "lost", Name: "Perdido", Order: 4, StdMap: strPtr(domain.StdMapLost)},
	}
}

func wonDeal(id string, value float64, closedAt time.Time) domain.Deal {
	return domain.Deal{
		ID:       id,
		Title:    "Deal " + id,
		StageID:  "won",
		Value:    floatPtr(value),
		ClosedAt: timePtr(closedAt),
		Status:   domain.DealStatusClosed,
	}
}

func openDeal(id, stageID string, value float64) domain.Deal {
	return domain.Deal{
		ID:      id,
		Title:   "Deal " + id,
		StageID: stageID,
		Value:   floatPtr(value),
		Status:  domain.DealStatusOpen,
	}
}
