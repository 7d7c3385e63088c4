package mapper_test

import (
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestToDealDTO(t *testing.T) {
	closedAt := time.Date(2025, 10, 15, 7, 30, 0, 0, time.FixedZone("COT", -5*60*60))
	deal := &domain.Deal{
		ID:        "d1",
		Title:     "Licencias",
		StageID:   "s1",
		Value:     floatPtr(100),
		Status:    domain.DealStatusClosed,
		CreatedAt: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
		ClosedAt:  &closedAt,
	}

	dto := mapper.ToDealDTO(deal)

	assert.Equal(t, "d1", dto.ID)
	assert.Equal(t, "2025-10-01T09:00:00Z", dto.CreatedAt)
	require.NotNil(t, dto.ClosedAt)
	assert.Equal(t, "2025-10-15T12:30:00Z", *dto.ClosedAt)
	assert.Equal(t, float64(100), *dto.Value)
}

func TestToGoalDTO_NeverNilMonths(t *testing.T) {
	dto := mapper.ToGoalDTO(&domain.Goal{Year: 2025})

	assert.Equal(t, 2025, dto.Year)
	assert.NotNil(t, dto.Months)
	assert.Empty(t, dto.Months)
}

func TestToBoardDTO(t *testing.T) {
	pipeline := &domain.Pipeline{ID: "p1", Name: "Ventas"}
	stages := []domain.Stage{
		{ID: "s1", Name: "Prospecto", Order: 1},
		{ID: "s2", Name: "Ganado", Order: 2, StdMap: strPtr(domain.StdMapWon)},
	}
	users := []domain.UserProfile{{ID: "u1", Name: strPtr("Ana"), Avatar: strPtr("https://example.com/ana.png")}}
	accounts := []domain.Account{{ID: "a1", Name: "Acme"}}
	deals := []domain.Deal{
		{ID: "d1", Title: "Con todo", StageID: "s1", OwnerID: strPtr("u1"), AccountID: strPtr("a1"), Value: floatPtr(10)},
		{ID: "d2", Title: "Sin cuenta", StageID: "s1", AccountID: strPtr("gone")},
		{ID: "d3", Title: "Huérfano", StageID: "elsewhere"},
	}

	board := mapper.ToBoardDTO(pipeline, stages, deals, users, accounts)

	assert.Equal(t, "Ventas", board.PipelineName)
	require.Len(t, board.Stages, 2)
	require.Len(t, board.Stages[0].Deals, 2)
	assert.NotNil(t, board.Stages[1].Deals)
	assert.Empty(t, board.Stages[1].Deals)

	first := board.Stages[0].Deals[0]
	assert.Equal(t, "Ana", first.OwnerName)
	assert.Equal(t, "https://example.com/ana.png", *first.OwnerAvatar)
	assert.Equal(t, "Acme", first.AccountName)
	assert.Equal(t, float64(10), first.Value)

	second := board.Stages[0].Deals[1]
	assert.Equal(t, mapper.NoAccountName, second.AccountName)
	assert.Empty(t, second.OwnerName)
	assert.Zero(t, second.Value)
}
