package domain

// Tier is a storage or compute cost class with an associated unit price,
// e.g. Hot/Cool/Archive for blob storage or an operational state for VMs.
type Tier string

const (
	TierHot     Tier = "Hot"
	TierCool    Tier = "Cool"
	TierArchive Tier = "Archive"

	// VM fleet states used by the utilization policy.
	TierRunning   Tier = "Running"
	TierStopped   Tier = "Stopped"
	TierDownsized Tier = "Downsized"
	TierScaleUp   Tier = "ScaleUp"
)

// ResourceRecord is one billable unit: a blob, a VM or a storage account.
type ResourceRecord struct {
	ID            string
	SizeMetric    float64 // size in GB, or CPU utilization %
	CurrentCost   float64 // monthly cost, USD
	CurrentTier   Tier
	RecencySignal float64           // days since last access
	Labels        map[string]string // container, region, environment, ...
}

// Fleet is a named collection of records sharing one advisor domain.
type Fleet struct {
	Domain  string
	Records []ResourceRecord
}
