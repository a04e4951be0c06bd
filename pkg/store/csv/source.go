package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/az-tools/cost-advisor/pkg/models/store"
)

// Expected header for an inventory export file.
var header = []string{"id", "domain", "size_metric", "current_cost", "current_tier", "recency_signal"}

// ReadRecords parses an inventory CSV file and returns the records for
// the requested domain. An empty domain returns every row.
func ReadRecords(path, domain string) ([]store.ResourceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return parse(f, domain)
}

func parse(r io.Reader, domain string) ([]store.ResourceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)

	first, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range header {
		if first[i] != col {
			return nil, fmt.Errorf("unexpected header column %d: got %q, want %q", i, first[i], col)
		}
	}

	records := make([]store.ResourceRecord, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		if domain != "" && row[1] != domain {
			continue
		}

		record := store.ResourceRecord{
			ID:          row[0],
			Domain:      row[1],
			CurrentTier: row[4],
		}
		if record.SizeMetric, err = strconv.ParseFloat(row[2], 64); err != nil {
			return nil, fmt.Errorf("line %d: size_metric: %w", line, err)
		}
		if record.CurrentCost, err = strconv.ParseFloat(row[3], 64); err != nil {
			return nil, fmt.Errorf("line %d: current_cost: %w", line, err)
		}
		if record.RecencySignal, err = strconv.ParseFloat(row[5], 64); err != nil {
			return nil, fmt.Errorf("line %d: recency_signal: %w", line, err)
		}
		records = append(records, record)
	}
	return records, nil
}
