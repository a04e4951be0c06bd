package advisor

import (
	"fmt"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// Recommend evaluates every record against the policy and returns one
// recommendation per record, in input order. It is a pure, stateless,
// single-pass transform: identical inputs always yield identical output,
// and callers may invoke it concurrently on disjoint inputs.
//
// Records whose matched tier equals their current tier, and records whose
// tier move is not priced in the transition table, come back with zero
// savings; they still count toward aggregate totals. All validation
// happens before the first record is scored, so a non-nil error means no
// partial result was produced.
func Recommend(records []domain.ResourceRecord, policy domain.Policy) ([]domain.Recommendation, error) {
	if err := ValidatePolicy(policy); err != nil {
		return nil, err
	}
	if err := validateRecords(records, policy.Signal); err != nil {
		return nil, err
	}

	recommendations := make([]domain.Recommendation, 0, len(records))
	for _, rec := range records {
		target, _ := match(policy.Rules, signalValue(rec, policy.Signal))

		savings := 0.0
		if target != rec.CurrentTier {
			if discount, priced := policy.Discounts[domain.Transition{From: rec.CurrentTier, To: target}]; priced {
				savings = rec.CurrentCost * discount
			}
		}

		recommendations = append(recommendations, domain.Recommendation{
			Record:           rec,
			RecommendedTier:  target,
			PotentialSavings: savings,
		})
	}
	return recommendations, nil
}

// Summarize computes aggregate totals over a recommendation run. Money is
// summed exactly; rounding to two decimals is a presentation concern. ROI
// is undefined, not zero, when the total current cost is zero - including
// the vacuous empty-input case.
func Summarize(recommendations []domain.Recommendation) domain.Summary {
	summary := domain.Summary{Records: len(recommendations)}

	for _, rec := range recommendations {
		summary.TotalCurrentCost += rec.Record.CurrentCost
		summary.TotalSavings += rec.PotentialSavings
		if rec.Actionable() {
			summary.Actionable++
		}
	}

	summary.AnnualSavings = summary.TotalSavings * 12
	if summary.TotalCurrentCost > 0 {
		summary.ROI = domain.Ratio{
			Value:   summary.TotalSavings / summary.TotalCurrentCost,
			Defined: true,
		}
	}
	return summary
}

// Actionable filters a run down to the needs-optimization view.
func Actionable(recommendations []domain.Recommendation) []domain.Recommendation {
	out := make([]domain.Recommendation, 0)
	for _, rec := range recommendations {
		if rec.Actionable() {
			out = append(out, rec)
		}
	}
	return out
}

func validateRecords(records []domain.ResourceRecord, signal domain.Signal) error {
	for _, rec := range records {
		if rec.CurrentCost < 0 {
			return fmt.Errorf("record %q: negative current cost %g", rec.ID, rec.CurrentCost)
		}
		if rec.RecencySignal < 0 {
			return fmt.Errorf("record %q: negative recency signal %g", rec.ID, rec.RecencySignal)
		}
		if signal == domain.SignalSize && rec.SizeMetric < 0 {
			return fmt.Errorf("record %q: negative size metric %g", rec.ID, rec.SizeMetric)
		}
	}
	return nil
}
