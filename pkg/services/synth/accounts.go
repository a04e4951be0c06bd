package synth

import "github.com/az-tools/cost-advisor/pkg/models/domain"

// StorageAccounts returns the canonical sample fleet of storage accounts
// used in docs and demos: a literal in-memory table, no randomness.
func StorageAccounts() domain.Fleet {
	rows := []struct {
		name   string
		sizeGB float64
		cost   float64
		tier   domain.Tier
		days   float64
	}{
		{"proddata01", 1250, 125.50, domain.TierHot, 2},
		{"devlogs02", 45, 8.90, domain.TierHot, 5},
		{"backups03", 3200, 280.00, domain.TierHot, 45},
		{"archives04", 8500, 425.00, domain.TierHot, 180},
		{"tempfiles05", 12, 2.40, domain.TierHot, 3},
		{"webapp06", 890, 98.00, domain.TierHot, 1},
		{"analytics07", 2100, 189.00, domain.TierCool, 90},
		{"media08", 5600, 448.00, domain.TierHot, 10},
		{"reports09", 340, 42.50, domain.TierHot, 30},
		{"userfiles10", 1500, 165.00, domain.TierCool, 120},
	}

	records := make([]domain.ResourceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ResourceRecord{
			ID:            row.name,
			SizeMetric:    row.sizeGB,
			CurrentCost:   row.cost,
			CurrentTier:   row.tier,
			RecencySignal: row.days,
		})
	}

	return domain.Fleet{Domain: "account", Records: records}
}
