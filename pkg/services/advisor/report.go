package advisor

import (
	"fmt"
	"sort"
	"time"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// ReportSettings control how a recommendation run is rendered into a
// report.
type ReportSettings struct {
	Title    string
	Days     int
	Currency string
	TopN     int // actionable records listed individually
}

// BuildReport assembles a renderable report from a recommendation run:
// a savings summary, the tier distribution, and the top actionable
// records sorted by potential savings.
func BuildReport(recommendations []domain.Recommendation, settings ReportSettings) *domain.Report {
	if settings.Currency == "" {
		settings.Currency = "USD"
	}
	if settings.TopN <= 0 {
		settings.TopN = 10
	}

	summary := Summarize(recommendations)
	now := time.Now()

	report := &domain.Report{
		Title: settings.Title,
		Period: domain.TimePeriod{
			Start:    now.AddDate(0, 0, -settings.Days),
			End:      now,
			Duration: settings.Days,
		},
		TotalAmount: summary.TotalCurrentCost,
		Currency:    settings.Currency,
		Generated:   now,
	}

	roi := "n/a"
	if summary.ROI.Defined {
		roi = fmt.Sprintf("%.1f%%", summary.ROI.Value*100)
	}

	report.Sections = append(report.Sections, domain.ReportSection{
		Title: "Savings Summary",
		Summary: map[string]interface{}{
			"Records Analyzed":   summary.Records,
			"Needs Optimization": summary.Actionable,
			"Monthly Savings":    fmt.Sprintf("%.2f", summary.TotalSavings),
			"Annual Savings":     fmt.Sprintf("%.2f", summary.AnnualSavings),
			"ROI":                roi,
		},
	})

	report.Sections = append(report.Sections, tierDistribution(recommendations))
	report.Sections = append(report.Sections, costCategories(recommendations, settings.Currency))

	actionable := Actionable(recommendations)
	sort.Slice(actionable, func(i, j int) bool {
		return actionable[i].PotentialSavings > actionable[j].PotentialSavings
	})
	if len(actionable) > settings.TopN {
		actionable = actionable[:settings.TopN]
	}

	section := domain.ReportSection{
		Title: "Top Optimization Opportunities",
		Summary: map[string]interface{}{
			"Listed": len(actionable),
		},
	}
	for _, rec := range actionable {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  rec.Record.ID,
			Value: fmt.Sprintf("%.2f", rec.PotentialSavings),
			Unit:  settings.Currency,
			Description: fmt.Sprintf("%s -> %s (signal %.0f)",
				rec.Record.CurrentTier, rec.RecommendedTier, rec.Record.RecencySignal),
		})
	}
	report.Sections = append(report.Sections, section)

	return report
}

func tierDistribution(recommendations []domain.Recommendation) domain.ReportSection {
	current := map[domain.Tier]int{}
	recommended := map[domain.Tier]int{}
	for _, rec := range recommendations {
		current[rec.Record.CurrentTier]++
		recommended[rec.RecommendedTier]++
	}

	section := domain.ReportSection{
		Title:   "Tier Distribution",
		Summary: map[string]interface{}{},
	}
	for _, tier := range sortedTiers(current, recommended) {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(tier),
			Value:       fmt.Sprintf("%d -> %d", current[tier], recommended[tier]),
			Unit:        "records",
			Description: "current -> recommended",
		})
	}
	return section
}

// costCategories bands the fleet by monthly cost and attaches the review
// cadence each band calls for.
func costCategories(recommendations []domain.Recommendation, currency string) domain.ReportSection {
	policy := CostCategoryPolicy()
	counts := map[domain.Tier]int{}
	totals := map[domain.Tier]float64{}
	for _, rec := range recommendations {
		category, err := Classify(policy, rec.Record.CurrentCost)
		if err != nil {
			continue
		}
		counts[category]++
		totals[category] += rec.Record.CurrentCost
	}

	section := domain.ReportSection{
		Title:   "Cost Categories",
		Summary: map[string]interface{}{},
	}
	for _, rule := range policy.Rules {
		if counts[rule.Target] == 0 {
			continue
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(rule.Target),
			Value:       fmt.Sprintf("%d (%s %.2f)", counts[rule.Target], currency, totals[rule.Target]),
			Unit:        "records",
			Description: ReviewCadence[rule.Target],
		})
	}
	return section
}

func sortedTiers(maps ...map[domain.Tier]int) []domain.Tier {
	seen := map[domain.Tier]struct{}{}
	for _, m := range maps {
		for tier := range m {
			seen[tier] = struct{}{}
		}
	}
	tiers := make([]domain.Tier, 0, len(seen))
	for tier := range seen {
		tiers = append(tiers, tier)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })
	return tiers
}
