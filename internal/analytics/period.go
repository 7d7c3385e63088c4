package analytics

import (
	"fmt"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// TrailingWeeks is the number of weekly buckets in the sales trend
const TrailingWeeks = 8

// WeekOfYear returns the 1-based week number of t's calendar date.
// Weeks start on Sunday and week 1 is the (possibly partial) week holding
// January 1st:
//
//	week = ceil((daysSinceJan1 + weekdayOfJan1 + 1) / 7)
//
// The time of day is ignored and the date is read in t's location.
func WeekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.YearDay() - 1
	return (days + int(jan1.Weekday()) + 1 + 6) / 7
}

// WeekLabel is the bucket label of t, e.g. "S42". The year is not part of
// the label, so equal week numbers of different years share a bucket.
func WeekLabel(t time.Time) string {
	return fmt.Sprintf("S%d", WeekOfYear(t))
}

// SalesByPeriod sums the value of won deals per week over the trailing
// TrailingWeeks weeks ending at now, oldest week first.
//
// Closing dates are read in now's location. Won deals without a closing
// date and deals closed outside the window are ignored. When two weeks of
// the window share a label the bucket appears once, at its first position.
func SalesByPeriod(deals []domain.Deal, stages []domain.Stage, now time.Time) domain.ChartSeries {
	labels := make([]string, 0, TrailingWeeks)
	totals := make(map[string]float64, TrailingWeeks)
	for i := TrailingWeeks - 1; i >= 0; i-- {
		label := WeekLabel(now.AddDate(0, 0, -7*i))
		if _, seen := totals[label]; seen {
			continue
		}
		labels = append(labels, label)
		totals[label] = 0
	}

	idx := indexStages(stages)
	for _, deal := range idx.filter(deals, StatusWon) {
		if deal.ClosedAt == nil {
			continue
		}
		label := WeekLabel(deal.ClosedAt.In(now.Location()))
		if _, ok := totals[label]; ok {
			totals[label] += deal.ValueOrZero()
		}
	}

	series := domain.ChartSeries{
		Labels: labels,
		Data:   make([]float64, len(labels)),
	}
	for i, label := range labels {
		series.Data[i] = totals[label]
	}
	return series
}
