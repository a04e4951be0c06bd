package domain

// Recommendation is the per-record result of a policy evaluation.
type Recommendation struct {
	Record           ResourceRecord
	RecommendedTier  Tier
	PotentialSavings float64 // monthly, USD; zero when no priced move exists
}

// Actionable reports whether the record belongs in the needs-optimization
// view: a priced move to a different tier.
func (r Recommendation) Actionable() bool {
	return r.RecommendedTier != r.Record.CurrentTier && r.PotentialSavings > 0
}

// Ratio is a fraction that may be undefined (zero denominator). Reporters
// render undefined ratios as "n/a" rather than coercing them to zero.
type Ratio struct {
	Value   float64
	Defined bool
}

// Summary aggregates a recommendation run.
type Summary struct {
	Records          int
	Actionable       int
	TotalCurrentCost float64
	TotalSavings     float64 // monthly; exact sum, unrounded
	AnnualSavings    float64
	ROI              Ratio // TotalSavings / TotalCurrentCost
}
