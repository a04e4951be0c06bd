package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

func TestWriteCSV(t *testing.T) {
	recs := []domain.Recommendation{
		{
			Record: domain.ResourceRecord{
				ID:          "backup-1.zip",
				CurrentTier: domain.TierHot,
				CurrentCost: 100,
			},
			RecommendedTier:  domain.TierCool,
			PotentialSavings: 44.0,
		},
		{
			Record: domain.ResourceRecord{
				ID:          "prod-vm-01",
				CurrentTier: domain.TierRunning,
				CurrentCost: 122.499,
			},
			RecommendedTier:  domain.TierRunning,
			PotentialSavings: 0,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, recs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,current_tier,recommended_tier,current_cost,potential_savings", lines[0])
	assert.Equal(t, "backup-1.zip,Hot,Cool,100.00,44.00", lines[1])
	assert.Equal(t, "prod-vm-01,Running,Running,122.50,0.00", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,current_tier,recommended_tier,current_cost,potential_savings\n", buf.String())
}
