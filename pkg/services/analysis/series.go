package analysis

import (
	"sort"
	"time"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// DailyTotals collapses a per-service series into one total per day,
// sorted by date.
func DailyTotals(series []domain.ServiceCost) []domain.CostPoint {
	byDay := make(map[time.Time]float64)
	for _, point := range series {
		day := point.Date.Truncate(24 * time.Hour)
		byDay[day] += point.Cost
	}

	totals := make([]domain.CostPoint, 0, len(byDay))
	for day, total := range byDay {
		totals = append(totals, domain.CostPoint{Date: day, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}

// ServiceTotals sums spend per service over the whole series.
func ServiceTotals(series []domain.ServiceCost) map[string]float64 {
	totals := make(map[string]float64)
	for _, point := range series {
		totals[point.Service] += point.Cost
	}
	return totals
}

// EnvironmentShare sums spend per environment for a single service.
func EnvironmentShare(series []domain.ServiceCost, service string) map[string]float64 {
	totals := make(map[string]float64)
	for _, point := range series {
		if point.Service == service {
			totals[point.Environment] += point.Cost
		}
	}
	return totals
}

// MovingAverage computes a trailing window average for each point. The
// first window-1 points average over what is available so far.
func MovingAverage(points []domain.CostPoint, window int) []float64 {
	avgs := make([]float64, len(points))
	var sum float64
	for i, point := range points {
		sum += point.Total
		if i >= window {
			sum -= points[i-window].Total
			avgs[i] = sum / float64(window)
			continue
		}
		avgs[i] = sum / float64(i+1)
	}
	return avgs
}

// PeriodGrowth compares the second half of the series against the first
// and returns the fractional growth. Fewer than two points yields zero.
func PeriodGrowth(points []domain.CostPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	half := len(points) / 2
	var first, second float64
	for _, p := range points[:half] {
		first += p.Total
	}
	for _, p := range points[half:] {
		second += p.Total
	}
	if first == 0 {
		return 0
	}
	return (second - first) / first
}
