package synth

import (
	"fmt"
	"math/rand"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// Azure blob pricing per GB/month by access tier.
var blobTierRates = map[domain.Tier]float64{
	domain.TierHot:     0.018,
	domain.TierCool:    0.01,
	domain.TierArchive: 0.00099,
}

// BlobOptions configure the synthetic blob fleet.
type BlobOptions struct {
	Backups int
	Logs    int
	Media   int
	Seed    int64
}

// DefaultBlobOptions mirror a small production-like fleet: 300 blobs
// across three containers.
func DefaultBlobOptions() BlobOptions {
	return BlobOptions{Backups: 100, Logs: 150, Media: 50, Seed: 42}
}

// GenerateBlobs synthesizes a blob fleet. Output is deterministic for a
// given options value.
func GenerateBlobs(opts BlobOptions) domain.Fleet {
	rng := rand.New(rand.NewSource(opts.Seed))
	tiers := []domain.Tier{domain.TierHot, domain.TierCool, domain.TierArchive}

	var records []domain.ResourceRecord
	add := func(container, pattern string, count int) {
		for i := 0; i < count; i++ {
			sizeMB := float64(1 + rng.Intn(5000))
			sizeGB := sizeMB / 1024
			tier := tiers[rng.Intn(len(tiers))]

			records = append(records, domain.ResourceRecord{
				ID:            fmt.Sprintf(pattern, i),
				SizeMetric:    sizeGB,
				CurrentCost:   sizeGB * blobTierRates[tier],
				CurrentTier:   tier,
				RecencySignal: float64(1 + rng.Intn(365)),
				Labels:        map[string]string{"container": container},
			})
		}
	}

	add("backups", "backup-%d.zip", opts.Backups)
	add("logs", "log-%d.txt", opts.Logs)
	add("media", "media-%d.mp4", opts.Media)

	return domain.Fleet{Domain: "blob", Records: records}
}
