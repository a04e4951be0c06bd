package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// FleetStats are descriptive statistics over one fleet of records.
type FleetStats struct {
	Records       int
	TotalCost     float64
	MeanCost      float64
	MedianCost    float64
	CostStdDev    float64
	MeanRecency   float64
	MedianRecency float64
	TierCounts    map[domain.Tier]int
}

// DescribeFleet computes descriptive statistics for a fleet. An empty
// fleet yields zero-valued stats rather than NaN.
func DescribeFleet(fleet domain.Fleet) FleetStats {
	stats := FleetStats{
		Records:    len(fleet.Records),
		TierCounts: make(map[domain.Tier]int),
	}
	if len(fleet.Records) == 0 {
		return stats
	}

	costs := make([]float64, 0, len(fleet.Records))
	recency := make([]float64, 0, len(fleet.Records))
	for _, rec := range fleet.Records {
		costs = append(costs, rec.CurrentCost)
		recency = append(recency, rec.RecencySignal)
		stats.TierCounts[rec.CurrentTier]++
		stats.TotalCost += rec.CurrentCost
	}

	sort.Float64s(costs)
	sort.Float64s(recency)

	stats.MeanCost = stat.Mean(costs, nil)
	stats.MedianCost = stat.Quantile(0.5, stat.Empirical, costs, nil)
	stats.MeanRecency = stat.Mean(recency, nil)
	stats.MedianRecency = stat.Quantile(0.5, stat.Empirical, recency, nil)
	if len(costs) > 1 {
		stats.CostStdDev = stat.StdDev(costs, nil)
	}
	return stats
}

// TopByCost returns the n most expensive records, most expensive first.
func TopByCost(fleet domain.Fleet, n int) []domain.ResourceRecord {
	records := make([]domain.ResourceRecord, len(fleet.Records))
	copy(records, fleet.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CurrentCost > records[j].CurrentCost
	})
	if n < len(records) {
		records = records[:n]
	}
	return records
}

// TopBySavings returns the n recommendations with the largest potential
// savings, largest first. Zero-savings entries are skipped.
func TopBySavings(recs []domain.Recommendation, n int) []domain.Recommendation {
	sorted := make([]domain.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.PotentialSavings > 0 {
			sorted = append(sorted, rec)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PotentialSavings > sorted[j].PotentialSavings
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
