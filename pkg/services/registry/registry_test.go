package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/services/advisor"
)

func TestDefault_Domains(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"account", "blob", "vm"}, r.Domains())
}

func TestRegistry_Get(t *testing.T) {
	r := Default()

	entry, err := r.Get("blob")
	require.NoError(t, err)
	assert.Equal(t, "blob-access-tier", entry.Policy.Name)

	_, err = r.Get("cosmos")
	assert.ErrorContains(t, err, "unknown domain")
}

func TestRegistry_Recommend(t *testing.T) {
	r := Default()

	recs, err := r.Recommend(context.Background(), "account")
	require.NoError(t, err)
	require.Len(t, recs, 10)

	byID := make(map[string]domain.Recommendation)
	for _, rec := range recs {
		byID[rec.Record.ID] = rec
	}

	// archives04 has been idle for 180 days: Hot -> Archive at the 80% rate.
	arch := byID["archives04"]
	assert.Equal(t, domain.TierArchive, arch.RecommendedTier)
	assert.InDelta(t, 425.00*0.80, arch.PotentialSavings, 1e-9)

	// backups03 at 45 idle days moves Hot -> Cool at the 50% rate.
	backups := byID["backups03"]
	assert.Equal(t, domain.TierCool, backups.RecommendedTier)
	assert.InDelta(t, 280.00*0.50, backups.PotentialSavings, 1e-9)
}

func TestRegistry_RegisterOverride(t *testing.T) {
	r := Default()
	custom := domain.Fleet{Domain: "blob", Records: []domain.ResourceRecord{
		{ID: "only", CurrentCost: 10, CurrentTier: domain.TierHot, RecencySignal: 200},
	}}

	r.Register("blob", Entry{
		Policy: advisor.BlobAccessTierPolicy(),
		Source: SourceFunc(func(ctx context.Context, opts SourceOptions) (domain.Fleet, error) {
			return custom, nil
		}),
	})

	recs, err := r.Recommend(context.Background(), "blob")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "only", recs[0].Record.ID)
}

func TestRegistry_SourceError(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", Entry{
		Policy: advisor.BlobAccessTierPolicy(),
		Source: SourceFunc(func(ctx context.Context, opts SourceOptions) (domain.Fleet, error) {
			return domain.Fleet{}, assert.AnError
		}),
	})

	_, err := r.Recommend(context.Background(), "broken")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDefault_SourceSeedOptions(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"blob", "vm"} {
		entry, err := Default().Get(name)
		require.NoError(t, err)

		byDefault, err := entry.Source.Fleet(ctx, SourceOptions{})
		require.NoError(t, err)
		reseeded, err := entry.Source.Fleet(ctx, SourceOptions{Seed: 7})
		require.NoError(t, err)

		assert.NotEqual(t, byDefault.Records, reseeded.Records, name)

		again, err := entry.Source.Fleet(ctx, SourceOptions{Seed: 7})
		require.NoError(t, err)
		assert.Equal(t, reseeded, again, name)
	}

	// The account table is fixed; the seed has nothing to vary.
	entry, err := Default().Get("account")
	require.NoError(t, err)
	byDefault, err := entry.Source.Fleet(ctx, SourceOptions{})
	require.NoError(t, err)
	reseeded, err := entry.Source.Fleet(ctx, SourceOptions{Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, byDefault, reseeded)
}
