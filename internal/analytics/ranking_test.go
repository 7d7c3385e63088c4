package analytics_test

import (
	"testing"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ownedWonDeal(id, ownerID string, value float64) domain.Deal {
	deal := wonDeal(id, value, testNow)
	deal.OwnerID = strPtr(ownerID)
	return deal
}

func TestSalespersonRanking(t *testing.T) {
	users := []domain.UserProfile{
		{ID: "u1", Name: strPtr("Ana")},
		{ID: "u2", Name: strPtr("Bruno")},
	}
	openByU1 := openDeal("open", "s1", 99999)
	openByU1.OwnerID = strPtr("u1")
	deals := []domain.Deal{
		ownedWonDeal("d1", "u1", 500),
		ownedWonDeal("d2", "u1", 1500),
		ownedWonDeal("d3", "u2", 3000),
		openByU1,
	}

	series := analytics.SalespersonRanking(deals, users, testStages())

	assert.Equal(t, []string{"Bruno", "Ana"}, series.Labels)
	assert.Equal(t, []float64{3000, 2000}, series.Data)
}

func TestSalespersonRanking_UnknownOwners(t *testing.T) {
	users := []domain.UserProfile{
		{ID: "u1", Name: strPtr("")},
		{ID: "u2"},
	}
	noOwner := wonDeal("no owner", 5000, testNow)
	deals := []domain.Deal{
		ownedWonDeal("d1", "u1", 300),
		ownedWonDeal("d2", "u2", 200),
		ownedWonDeal("d3", "ghost", 100),
		ownedWonDeal("d4", "", 4000),
		noOwner,
	}

	series := analytics.SalespersonRanking(deals, users, testStages())

	assert.Equal(t, []string{
		analytics.UnknownUserName,
		analytics.UnknownUserName,
		analytics.UnknownUserName,
	}, series.Labels)
	assert.Equal(t, []float64{300, 200, 100}, series.Data)
}

func TestSalespersonRanking_NullValueCountsAsZero(t *testing.T) {
	users := []domain.UserProfile{{ID: "u1", Name: strPtr("Ana")}}
	deal := ownedWonDeal("d1", "u1", 0)
	deal.Value = nil

	series := analytics.SalespersonRanking([]domain.Deal{deal}, users, testStages())

	assert.Equal(t, []string{"Ana"}, series.Labels)
	assert.Equal(t, []float64{0}, series.Data)
}

func TestSalespersonRanking_Empty(t *testing.T) {
	series := analytics.SalespersonRanking(nil, nil, nil)

	assert.NotNil(t, series.Labels)
	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Data)
}
