package analysis

import (
	"fmt"
	"sort"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// FindInsights applies the fleet-level optimization rules to a spend
// series: a single service dominating total spend, development
// environments dominating a service, and sustained period growth.
func FindInsights(series []domain.ServiceCost) []domain.Insight {
	var insights []domain.Insight
	if len(series) == 0 {
		return insights
	}

	serviceTotals := ServiceTotals(series)
	var total float64
	for _, t := range serviceTotals {
		total += t
	}

	services := make([]string, 0, len(serviceTotals))
	for svc := range serviceTotals {
		services = append(services, svc)
	}
	sort.Strings(services)

	for _, svc := range services {
		spend := serviceTotals[svc]
		if total > 0 && spend/total > 0.20 {
			insights = append(insights, domain.Insight{
				Priority:         domain.PriorityHigh,
				Category:         "Cost Concentration",
				Service:          svc,
				Issue:            fmt.Sprintf("%s accounts for %.1f%% of total spend", svc, spend/total*100),
				PotentialSavings: spend * 0.15,
				Action:           "Review sizing, reservations and savings plans for this service",
			})
		}

		envShare := EnvironmentShare(series, svc)
		if dev := envShare["Development"]; spend > 0 && dev/spend > 0.30 {
			insights = append(insights, domain.Insight{
				Priority:         domain.PriorityMedium,
				Category:         "Environment Hygiene",
				Service:          svc,
				Issue:            fmt.Sprintf("Development runs %.1f%% of %s spend", dev/spend*100, svc),
				PotentialSavings: dev * 0.50,
				Action:           "Schedule auto-shutdown for development resources",
			})
		}
	}

	points := DailyTotals(series)
	if growth := PeriodGrowth(points); growth > 0.10 {
		half := len(points) / 2
		var recent float64
		for _, p := range points[half:] {
			recent += p.Total
		}
		insights = append(insights, domain.Insight{
			Priority:         domain.PriorityHigh,
			Category:         "Growth Trend",
			Service:          "All",
			Issue:            fmt.Sprintf("Spend grew %.1f%% period over period", growth*100),
			PotentialSavings: recent * 0.10,
			Action:           "Investigate recently provisioned resources and set budgets",
		})
	}
	return insights
}
