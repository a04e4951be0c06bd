package store

import "time"

// ResourceRecord is the flat, storage-shaped form of a billable unit as it
// lives in the inventory table or a CSV row.
type ResourceRecord struct {
	ID            string
	Domain        string // blob | vm | account
	SizeMetric    float64
	CurrentCost   float64
	CurrentTier   string
	RecencySignal float64
	Labels        map[string]string
	LoadedAt      time.Time
}

// TierTotal is an aggregate row grouped by current tier.
type TierTotal struct {
	Tier      string
	Records   int64
	TotalSize float64
	TotalCost float64
}
