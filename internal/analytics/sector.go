package analytics

import "github.com/Cdhernandezr/abchroy-crm/internal/domain"

// UnspecifiedSector groups deals whose account is missing or has no sector
const UnspecifiedSector = "No especificado"

// sectorTally accumulates a number per sector in first-seen order
type sectorTally struct {
	labels []string
	values map[string]float64
}

func newSectorTally() *sectorTally {
	return &sectorTally{values: make(map[string]float64)}
}

func (t *sectorTally) add(sector string, v float64) {
	if _, ok := t.values[sector]; !ok {
		t.labels = append(t.labels, sector)
	}
	t.values[sector] += v
}

func sectorOf(deal *domain.Deal, accounts map[string]*domain.Account) string {
	if deal.AccountID == nil {
		return UnspecifiedSector
	}
	account := accounts[*deal.AccountID]
	if account == nil || account.Sector == nil || *account.Sector == "" {
		return UnspecifiedSector
	}
	return *account.Sector
}

// SalesBySector sums the value of won deals per account sector.
// Labels appear in the order their sector is first met.
func SalesBySector(deals []domain.Deal, accounts []domain.Account, stages []domain.Stage) domain.ChartSeries {
	idx := indexStages(stages)
	accountIdx := indexAccounts(accounts)

	tally := newSectorTally()
	for _, deal := range idx.filter(deals, StatusWon) {
		tally.add(sectorOf(deal, accountIdx), deal.ValueOrZero())
	}

	series := domain.ChartSeries{
		Labels: make([]string, len(tally.labels)),
		Data:   make([]float64, len(tally.labels)),
	}
	for i, sector := range tally.labels {
		series.Labels[i] = sector
		series.Data[i] = tally.values[sector]
	}
	return series
}

// WinLoss counts won and lost deals per account sector. The labels are the
// union of the sectors of won and lost deals, won sectors first; a sector
// missing on one side counts zero there.
func WinLoss(deals []domain.Deal, accounts []domain.Account, stages []domain.Stage) domain.WinLossChart {
	idx := indexStages(stages)
	accountIdx := indexAccounts(accounts)

	won := newSectorTally()
	lost := newSectorTally()
	var labels []string
	seen := make(map[string]bool)
	count := func(status Status, tally *sectorTally) {
		for _, deal := range idx.filter(deals, status) {
			sector := sectorOf(deal, accountIdx)
			tally.add(sector, 1)
			if !seen[sector] {
				seen[sector] = true
				labels = append(labels, sector)
			}
		}
	}
	count(StatusWon, won)
	count(StatusLost, lost)

	chart := domain.WinLossChart{
		Labels: make([]string, len(labels)),
		Datasets: []domain.Dataset{
			{Label: domain.DatasetWon, Data: make([]float64, len(labels))},
			{Label: domain.DatasetLost, Data: make([]float64, len(labels))},
		},
	}
	for i, sector := range labels {
		chart.Labels[i] = sector
		chart.Datasets[0].Data[i] = won.values[sector]
		chart.Datasets[1].Data[i] = lost.values[sector]
	}
	return chart
}
