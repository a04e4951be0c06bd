package advisor

import (
	"math"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// Built-in policy tables. Thresholds and discount fractions follow Azure
// tiering guidance: blobs cool off after 90 days and archive after 180,
// storage accounts after 30 and 90, VMs are judged on average CPU.

// BlobAccessTierPolicy recommends blob access tiers by days since last
// access. Only one-step moves are priced; Hot->Archive reports zero
// savings.
func BlobAccessTierPolicy() domain.Policy {
	return domain.Policy{
		Name:   "blob-access-tier",
		Signal: domain.SignalRecency,
		Rules: []domain.Rule{
			{Lower: 0, Upper: 90, Target: domain.TierHot},
			{Lower: 90, Upper: 180, Target: domain.TierCool},
			{Lower: 180, Upper: math.Inf(1), Target: domain.TierArchive},
		},
		Discounts: map[domain.Transition]float64{
			{From: domain.TierHot, To: domain.TierCool}:     0.44,
			{From: domain.TierCool, To: domain.TierArchive}: 0.90,
		},
	}
}

// StorageAccountTierPolicy recommends storage-account tiers with tighter
// thresholds and a fully priced transition table.
func StorageAccountTierPolicy() domain.Policy {
	return domain.Policy{
		Name:   "storage-account-tier",
		Signal: domain.SignalRecency,
		Rules: []domain.Rule{
			{Lower: 0, Upper: 30, Target: domain.TierHot},
			{Lower: 30, Upper: 90, Target: domain.TierCool},
			{Lower: 90, Upper: math.Inf(1), Target: domain.TierArchive},
		},
		Discounts: map[domain.Transition]float64{
			{From: domain.TierHot, To: domain.TierCool}:     0.50,
			{From: domain.TierHot, To: domain.TierArchive}:  0.80,
			{From: domain.TierCool, To: domain.TierArchive}: 0.60,
		},
	}
}

// VMUtilizationPolicy recommends VM actions by average CPU utilization.
// ScaleUp has no priced transition: it surfaces in reports as an alert
// and never contributes savings.
func VMUtilizationPolicy() domain.Policy {
	return domain.Policy{
		Name:   "vm-utilization",
		Signal: domain.SignalSize,
		Rules: []domain.Rule{
			{Lower: 0, Upper: 10, Target: domain.TierStopped},
			{Lower: 10, Upper: 20, Target: domain.TierDownsized},
			{Lower: 20, Upper: 60, Target: domain.TierRunning},
			{Lower: 60, Upper: math.Inf(1), Target: domain.TierScaleUp},
		},
		Discounts: map[domain.Transition]float64{
			{From: domain.TierRunning, To: domain.TierStopped}:   1.00,
			{From: domain.TierRunning, To: domain.TierDownsized}: 0.50,
		},
	}
}

// Cost category bands for review cadence classification.
const (
	CategoryLowCost      domain.Tier = "Low Cost"
	CategoryMediumCost   domain.Tier = "Medium Cost"
	CategoryHighCost     domain.Tier = "High Cost"
	CategoryVeryHighCost domain.Tier = "Very High Cost"
)

// CostCategoryPolicy classifies resources into review-cadence bands by
// monthly cost. It carries no transition table; use it with Classify.
func CostCategoryPolicy() domain.Policy {
	return domain.Policy{
		Name:   "cost-category",
		Signal: domain.SignalCost,
		Rules: []domain.Rule{
			{Lower: 0, Upper: 100, Target: CategoryLowCost},
			{Lower: 100, Upper: 250, Target: CategoryMediumCost},
			{Lower: 250, Upper: 500, Target: CategoryHighCost},
			{Lower: 500, Upper: math.Inf(1), Target: CategoryVeryHighCost},
		},
	}
}

// ReviewCadence maps a cost category to how often it should be reviewed.
var ReviewCadence = map[domain.Tier]string{
	CategoryLowCost:      "Monitor quarterly",
	CategoryMediumCost:   "Monitor monthly",
	CategoryHighCost:     "Monitor weekly",
	CategoryVeryHighCost: "Monitor daily",
}
