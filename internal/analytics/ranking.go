package analytics

import (
	"sort"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// UnknownUserName labels owners without a user profile
const UnknownUserName = "Desconocido"

// SalespersonRanking ranks owners by the total value of their won deals,
// highest first. Deals without an owner are skipped. Equal totals keep the
// order in which the owners were first seen; callers must not rely on it.
func SalespersonRanking(deals []domain.Deal, users []domain.UserProfile, stages []domain.Stage) domain.ChartSeries {
	type ownerTotal struct {
		ownerID string
		total   float64
	}

	idx := indexStages(stages)
	var ranking []ownerTotal
	position := make(map[string]int)
	for _, deal := range idx.filter(deals, StatusWon) {
		if deal.OwnerID == nil || *deal.OwnerID == "" {
			continue
		}
		pos, ok := position[*deal.OwnerID]
		if !ok {
			pos = len(ranking)
			position[*deal.OwnerID] = pos
			ranking = append(ranking, ownerTotal{ownerID: *deal.OwnerID})
		}
		ranking[pos].total += deal.ValueOrZero()
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].total > ranking[j].total
	})

	userIdx := indexUsers(users)
	series := domain.ChartSeries{
		Labels: make([]string, len(ranking)),
		Data:   make([]float64, len(ranking)),
	}
	for i, r := range ranking {
		series.Labels[i] = displayName(userIdx[r.ownerID])
		series.Data[i] = r.total
	}
	return series
}

func displayName(user *domain.UserProfile) string {
	if user == nil || user.Name == nil || *user.Name == "" {
		return UnknownUserName
	}
	return *user.Name
}
