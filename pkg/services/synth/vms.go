package synth

import (
	"fmt"
	"math/rand"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/google/uuid"
)

// Monthly list prices for common VM sizes. Synthetic stand-ins; a live
// deployment would pull these from the Retail Prices API.
var vmSizeRates = map[string]float64{
	"Standard_B2s":    35.00,
	"Standard_D2s_v3": 122.50,
	"Standard_D4s_v3": 245.00,
	"Standard_D8s_v3": 490.00,
	"Standard_E4s_v3": 310.00,
}

var vmEnvironments = []string{"prod", "dev", "test"}
var vmRegions = []string{"East US", "West Europe", "Southeast Asia"}

// VMOptions configure the synthetic VM fleet.
type VMOptions struct {
	Count int
	Seed  int64
}

func DefaultVMOptions() VMOptions {
	return VMOptions{Count: 40, Seed: 42}
}

// GenerateVMs synthesizes a running VM fleet. SizeMetric carries the
// average CPU utilization percentage over the monitoring window, which
// is the signal the VM utilization policy evaluates.
func GenerateVMs(opts VMOptions) domain.Fleet {
	rng := rand.New(rand.NewSource(opts.Seed))

	sizes := make([]string, 0, len(vmSizeRates))
	for size := range vmSizeRates {
		sizes = append(sizes, size)
	}
	// Map iteration order is random; sort for deterministic output.
	for i := 1; i < len(sizes); i++ {
		for j := i; j > 0 && sizes[j] < sizes[j-1]; j-- {
			sizes[j], sizes[j-1] = sizes[j-1], sizes[j]
		}
	}

	records := make([]domain.ResourceRecord, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		env := vmEnvironments[rng.Intn(len(vmEnvironments))]
		size := sizes[rng.Intn(len(sizes))]
		name := fmt.Sprintf("%s-vm-%02d", env, i+1)

		// Skew dev/test fleets toward idleness.
		cpu := 15 + rng.Float64()*55
		if env != "prod" && rng.Float64() < 0.5 {
			cpu = 2 + rng.Float64()*16
		}

		records = append(records, domain.ResourceRecord{
			ID:          name,
			SizeMetric:  cpu,
			CurrentCost: vmSizeRates[size] * (0.9 + rng.Float64()*0.2),
			CurrentTier: domain.TierRunning,
			Labels: map[string]string{
				"size":        size,
				"environment": env,
				"region":      vmRegions[rng.Intn(len(vmRegions))],
				"resource_id": uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String(),
			},
		})
	}

	return domain.Fleet{Domain: "vm", Records: records}
}
