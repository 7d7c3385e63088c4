package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// ParseExpectedCloseDate reads the year and month of a YYYY-MM-DD string.
//
// The string is split literally instead of being parsed into a time.Time so
// that no time zone can shift the date into a neighbouring day or month. The
// day component must be present but is not interpreted. ok is false for
// empty or malformed input.
func ParseExpectedCloseDate(s string) (year int, month time.Month, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || parts[2] == "" {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, time.Month(m), true
}

// WeightedForecast is the probability-weighted value of the open deals
// expected to close in now's calendar month:
//
//	sum(value * probability / 100)
//
// Deals without a parsable expected close date are left out. The result is
// not rounded.
func WeightedForecast(deals []domain.Deal, stages []domain.Stage, now time.Time) float64 {
	idx := indexStages(stages)
	var total float64
	for _, deal := range idx.filter(deals, StatusOpen) {
		if deal.ExpectedCloseDate == nil {
			continue
		}
		year, month, ok := ParseExpectedCloseDate(*deal.ExpectedCloseDate)
		if !ok || year != now.Year() || month != now.Month() {
			continue
		}
		total += deal.ValueOrZero() * (deal.ProbabilityOrZero() / 100)
	}
	return total
}
