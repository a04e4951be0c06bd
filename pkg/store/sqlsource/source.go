package sqlsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/az-tools/cost-advisor/pkg/models/store"
)

// Source reads resource records out of any database/sql-compatible
// warehouse table that carries the inventory columns. It is the bridge
// for teams that land billing exports in an external database instead
// of the embedded inventory.
type Source struct {
	db    *sql.DB
	table string
}

func NewSource(db *sql.DB, table string) (*Source, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if table == "" {
		return nil, fmt.Errorf("table name is required")
	}
	return &Source{db: db, table: table}, nil
}

func (s *Source) GetRecords(ctx context.Context, domain string) ([]store.ResourceRecord, error) {
	query := fmt.Sprintf(`
		SELECT id, size_metric, current_cost, current_tier, recency_signal
		FROM %s
		WHERE domain = ?
		ORDER BY id
	`, s.table)

	rows, err := s.db.QueryContext(ctx, query, domain)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	records := make([]store.ResourceRecord, 0)
	for rows.Next() {
		record := store.ResourceRecord{Domain: domain}
		err := rows.Scan(
			&record.ID,
			&record.SizeMetric,
			&record.CurrentCost,
			&record.CurrentTier,
			&record.RecencySignal,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
