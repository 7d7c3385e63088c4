package analytics_test

import (
	"testing"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccounts() []domain.Account {
	return []domain.Account{
		{ID: "a1", Name: "Acme", Sector: strPtr("Retail")},
		{ID: "a2", Name: "Globex", Sector: strPtr("Energía")},
		{ID: "a3", Name: "Initech", Sector: strPtr("")},
		{ID: "a4", Name: "Umbrella"},
	}
}

func withAccount(deal domain.Deal, accountID string) domain.Deal {
	deal.AccountID = strPtr(accountID)
	return deal
}

func lostDeal(id string) domain.Deal {
	return domain.Deal{ID: id, StageID: "lost", Status: domain.DealStatusClosed}
}

func TestSalesBySector(t *testing.T) {
	deals := []domain.Deal{
		withAccount(wonDeal("d1", 100, testNow), "a2"),
		withAccount(wonDeal("d2", 200, testNow), "a1"),
		withAccount(wonDeal("d3", 300, testNow), "a2"),
		withAccount(wonDeal("d4", 10, testNow), "a3"),
		withAccount(wonDeal("d5", 20, testNow), "a4"),
		withAccount(wonDeal("d6", 30, testNow), "missing"),
		wonDeal("d7", 40, testNow),
		withAccount(openDeal("open", "s1", 999), "a1"),
		withAccount(lostDeal("lost"), "a1"),
	}

	series := analytics.SalesBySector(deals, testAccounts(), testStages())

	assert.Equal(t, []string{"Energía", "Retail", analytics.UnspecifiedSector}, series.Labels)
	assert.Equal(t, []float64{400, 200, 100}, series.Data)
}

func TestWinLoss(t *testing.T) {
	deals := []domain.Deal{
		withAccount(lostDeal("l1"), "a1"),
		withAccount(wonDeal("w1", 100, testNow), "a2"),
		withAccount(lostDeal("l2"), "a2"),
		withAccount(lostDeal("l3"), "a2"),
		lostDeal("l4"),
		withAccount(wonDeal("w2", 100, testNow), "a2"),
		withAccount(openDeal("open", "s1", 1), "a1"),
	}

	chart := analytics.WinLoss(deals, testAccounts(), testStages())

	// won sectors first, then sectors only seen on lost deals
	assert.Equal(t, []string{"Energía", "Retail", analytics.UnspecifiedSector}, chart.Labels)
	require.Len(t, chart.Datasets, 2)
	assert.Equal(t, domain.DatasetWon, chart.Datasets[0].Label)
	assert.Equal(t, []float64{2, 0, 0}, chart.Datasets[0].Data)
	assert.Equal(t, domain.DatasetLost, chart.Datasets[1].Label)
	assert.Equal(t, []float64{2, 1, 1}, chart.Datasets[1].Data)
}

func TestWinLoss_LabelsAreUnionOfSectors(t *testing.T) {
	deals := []domain.Deal{
		withAccount(wonDeal("w1", 1, testNow), "a1"),
		withAccount(wonDeal("w2", 1, testNow), "a3"),
		withAccount(lostDeal("l1"), "a2"),
		withAccount(lostDeal("l2"), "a1"),
	}

	chart := analytics.WinLoss(deals, testAccounts(), testStages())
	won := analytics.SalesBySector(deals, testAccounts(), testStages())

	for _, label := range won.Labels {
		assert.Contains(t, chart.Labels, label)
	}
	assert.Contains(t, chart.Labels, "Energía")
	assert.Len(t, chart.Labels, 3)
	for _, ds := range chart.Datasets {
		assert.Len(t, ds.Data, len(chart.Labels))
	}
}

func TestWinLoss_Empty(t *testing.T) {
	chart := analytics.WinLoss(nil, nil, nil)

	assert.NotNil(t, chart.Labels)
	assert.Empty(t, chart.Labels)
	require.Len(t, chart.Datasets, 2)
	assert.Empty(t, chart.Datasets[0].Data)
	assert.Empty(t, chart.Datasets[1].Data)
}
