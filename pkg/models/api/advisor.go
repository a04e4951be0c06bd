package api

// Domain describes one registered advisor domain.
type Domain struct {
	Name   string `json:"name"`
	Policy string `json:"policy"`
}

// Recommendation is the wire form of a per-record recommendation.
type Recommendation struct {
	ID               string  `json:"id"`
	CurrentTier      string  `json:"current_tier"`
	RecommendedTier  string  `json:"recommended_tier"`
	CurrentCost      float64 `json:"current_cost"`
	PotentialSavings float64 `json:"potential_savings"`
	RecencySignal    float64 `json:"recency_signal"`
	Actionable       bool    `json:"actionable"`
}

// Summary is the wire form of aggregate totals. ROI is null when the
// total current cost is zero, never a fabricated 0%.
type Summary struct {
	Records          int      `json:"records"`
	Actionable       int      `json:"actionable"`
	TotalCurrentCost float64  `json:"total_current_cost"`
	TotalSavings     float64  `json:"total_monthly_savings"`
	AnnualSavings    float64  `json:"annual_savings"`
	ROI              *float64 `json:"roi,omitempty"`
}

// Error is the wire form of a request failure.
type Error struct {
	Message string `json:"message"`
}
