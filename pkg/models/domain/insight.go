package domain

import "time"

// Priority ranks an insight by urgency.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Insight is an ad-hoc optimization opportunity found by the fleet
// analysis rules, next to the per-record tier recommendations.
type Insight struct {
	Priority         Priority
	Category         string
	Service          string
	Issue            string
	PotentialSavings float64 // monthly, USD
	Action           string
}

// CostPoint is one day of aggregated spend.
type CostPoint struct {
	Date  time.Time
	Total float64
}

// ServiceCost is one day of spend for a single service.
type ServiceCost struct {
	Date        time.Time
	Service     string
	Cost        float64
	Environment string
	Region      string
}

// Anomaly is a day whose spend deviated more than two rolling standard
// deviations from the seven-day moving average.
type Anomaly struct {
	Date         time.Time
	Cost         float64
	MovingAvg    float64
	DeviationPct float64
	TopServices  []string
}

// Forecast is a linear projection of daily spend.
type Forecast struct {
	DailyAverage     float64
	TrendPerDay      float64
	Horizon          int // days projected
	ProjectedLastDay float64
	ProjectedTotal   float64
	ExpectedIncrease float64
}
