package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

type captureHandler struct {
	report *domain.Report
}

func (h *captureHandler) Handle(report *domain.Report) error {
	h.report = report
	return nil
}

func renderers(table, plain *captureHandler) Renderers {
	return Renderers{Table: table, Plain: plain}
}

func TestAnalyzeCmd(t *testing.T) {
	table := &captureHandler{}
	cmd := NewAnalyzeCmd(registry.Default(), renderers(table, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, table.report)
	assert.Equal(t, "Cost Optimization: account", table.report.Title)
	assert.InDelta(t, 1784.30, table.report.TotalAmount, 1e-9)
	assert.Len(t, table.report.Sections, 4)
}

func TestAnalyzeCmd_PlainFormat(t *testing.T) {
	table := &captureHandler{}
	plain := &captureHandler{}
	cmd := NewAnalyzeCmd(registry.Default(), renderers(table, plain))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--format", "plain"})

	require.NoError(t, cmd.Execute())
	assert.Nil(t, table.report)
	require.NotNil(t, plain.report)
	assert.Equal(t, "Cost Optimization: account", plain.report.Title)
}

func TestAnalyzeCmd_UnknownFormat(t *testing.T) {
	cmd := NewAnalyzeCmd(registry.Default(), renderers(&captureHandler{}, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--format", "yaml"})

	assert.ErrorContains(t, cmd.Execute(), "unknown format")
}

func TestAnalyzeCmd_UnknownDomain(t *testing.T) {
	cmd := NewAnalyzeCmd(registry.Default(), renderers(&captureHandler{}, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"cosmos"})

	assert.ErrorContains(t, cmd.Execute(), "unknown domain")
}

func TestAnalyzeCmd_SeedOverride(t *testing.T) {
	base := &captureHandler{}
	cmd := NewAnalyzeCmd(registry.Default(), renderers(base, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"blob"})
	require.NoError(t, cmd.Execute())

	reseeded := &captureHandler{}
	cmd = NewAnalyzeCmd(registry.Default(), renderers(reseeded, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"blob", "--seed", "7"})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, base.report)
	require.NotNil(t, reseeded.report)
	assert.NotEqual(t, base.report.TotalAmount, reseeded.report.TotalAmount)
}

func TestAnalyzeCmd_ExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recs.csv")

	cmd := NewAnalyzeCmd(registry.Default(), renderers(&captureHandler{}, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--export", path})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id,current_tier,recommended_tier,current_cost,potential_savings")
	assert.Contains(t, string(data), "archives04")
}

func TestAnalyzeCmd_CSVInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")
	content := `id,domain,size_metric,current_cost,current_tier,recency_signal
old-share,account,500,80,Hot,200
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	handler := &captureHandler{}
	cmd := NewAnalyzeCmd(registry.Default(), renderers(handler, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--csv", path})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, handler.report)
	assert.InDelta(t, 80, handler.report.TotalAmount, 1e-9)
}

func TestAnalyzeCmd_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.db")

	// First run snapshots the fleet into the embedded database.
	snapshot := &captureHandler{}
	cmd := NewAnalyzeCmd(registry.Default(), renderers(snapshot, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--db", path})
	require.NoError(t, cmd.Execute())

	// Second run reads it back instead of hitting the source.
	replay := &captureHandler{}
	cmd = NewAnalyzeCmd(registry.Default(), renderers(replay, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--from-db", path})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, snapshot.report)
	require.NotNil(t, replay.report)
	assert.InDelta(t, snapshot.report.TotalAmount, replay.report.TotalAmount, 1e-9)
	assert.InDelta(t, 1784.30, replay.report.TotalAmount, 1e-9)
}

func TestAnalyzeCmd_FromDBTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.db")

	cmd := NewAnalyzeCmd(registry.Default(), renderers(&captureHandler{}, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--db", path})
	require.NoError(t, cmd.Execute())

	// The inventory table doubles as an export table for the sql source.
	handler := &captureHandler{}
	cmd = NewAnalyzeCmd(registry.Default(), renderers(handler, &captureHandler{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"account", "--from-db", path, "--table", "resource_records"})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, handler.report)
	assert.InDelta(t, 1784.30, handler.report.TotalAmount, 1e-9)
}

func TestPoliciesCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := NewPoliciesCmd(registry.Default())
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "blob-access-tier")
	assert.Contains(t, out.String(), "[90, 180) -> Cool")
	assert.Contains(t, out.String(), "Hot -> Cool saves 44%")
}

func TestSummaryCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := NewSummaryCmd(registry.Default())
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "account")
	assert.Contains(t, out.String(), "Annual savings:")
	assert.Contains(t, out.String(), "ROI:")
}

func TestTrendsCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := NewTrendsCmd()
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "30-Day Forecast")
	assert.Contains(t, out.String(), "Insights")
}

func TestSecurityCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := NewSecurityCmd()
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Resources assessed: 10")
	assert.Contains(t, out.String(), "Top Threats")
	assert.Contains(t, out.String(), "old-test-vm")
}
