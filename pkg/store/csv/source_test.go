package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sample = `id,domain,size_metric,current_cost,current_tier,recency_signal
backup-1.zip,blob,120.5,2.17,Hot,95
prod-vm-01,vm,45.2,122.5,Running,0
log-1.txt,blob,0.8,0.01,Cool,12
`

func TestReadRecords(t *testing.T) {
	path := writeFile(t, sample)

	records, err := ReadRecords(path, "blob")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "backup-1.zip", records[0].ID)
	assert.InDelta(t, 120.5, records[0].SizeMetric, 1e-9)
	assert.Equal(t, "Hot", records[0].CurrentTier)
	assert.InDelta(t, 95, records[0].RecencySignal, 1e-9)

	all, err := ReadRecords(path, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReadRecords_BadHeader(t *testing.T) {
	path := writeFile(t, "id,domain,size,cost,tier,days\nx,blob,1,1,Hot,1\n")

	_, err := ReadRecords(path, "blob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadRecords_BadNumber(t *testing.T) {
	path := writeFile(t, `id,domain,size_metric,current_cost,current_tier,recency_signal
x,blob,not-a-number,1,Hot,1
`)

	_, err := ReadRecords(path, "blob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size_metric")
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"), "blob")
	assert.Error(t, err)
}
