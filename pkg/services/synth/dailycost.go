package synth

import (
	"math/rand"
	"time"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// Base daily costs per Azure service, USD.
var serviceBaseCosts = []struct {
	Service string
	Base    float64
}{
	{"Virtual Machines", 350},
	{"Storage", 120},
	{"SQL Database", 280},
	{"App Service", 200},
	{"Networking", 80},
	{"Key Vault", 15},
	{"Function App", 45},
	{"Container Registry", 30},
}

var costEnvironments = []string{"Production", "Development", "Staging"}
var costRegions = []string{"East US", "West Europe", "Southeast Asia"}

// DailyCostOptions configure the synthetic spend series.
type DailyCostOptions struct {
	Days   int
	End    time.Time
	Seed   int64
	Growth float64 // fractional growth over the whole period
}

func DefaultDailyCostOptions() DailyCostOptions {
	return DailyCostOptions{
		Days:   90,
		End:    time.Now().Truncate(24 * time.Hour),
		Seed:   42,
		Growth: 0.15,
	}
}

// GenerateDailyCosts synthesizes a per-service daily spend series with a
// linear growth trend, a weekend dip and uniform jitter.
func GenerateDailyCosts(opts DailyCostOptions) []domain.ServiceCost {
	rng := rand.New(rand.NewSource(opts.Seed))
	start := opts.End.AddDate(0, 0, -opts.Days)

	var series []domain.ServiceCost
	for day := 0; day < opts.Days; day++ {
		date := start.AddDate(0, 0, day)
		growth := 1 + (float64(day)/float64(opts.Days))*opts.Growth

		for _, svc := range serviceBaseCosts {
			cost := svc.Base * growth * (0.85 + rng.Float64()*0.30)
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				cost *= 0.7
			}

			series = append(series, domain.ServiceCost{
				Date:        date,
				Service:     svc.Service,
				Cost:        cost,
				Environment: costEnvironments[rng.Intn(len(costEnvironments))],
				Region:      costRegions[rng.Intn(len(costRegions))],
			})
		}
	}
	return series
}
