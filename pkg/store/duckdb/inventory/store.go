package inventory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/az-tools/cost-advisor/pkg/models/store"
	"github.com/az-tools/cost-advisor/pkg/store/duckdb"
)

// Store holds the resource inventory in DuckDB. Add ingests a batch for
// any domain; the read methods are scoped to a single domain.
type Store interface {
	Add(ctx context.Context, domain string, records []store.ResourceRecord) error
	GetRecords(ctx context.Context, domain string) ([]store.ResourceRecord, error)
	GetTierTotals(ctx context.Context, domain string) ([]store.TierTotal, error)
	ListDomains(ctx context.Context) ([]string, error)
}

type inventoryStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &inventoryStore{db: db}, nil
}

func (s *inventoryStore) Add(ctx context.Context, domain string, records []store.ResourceRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO resource_records (
			id, domain, size_metric, current_cost, current_tier, recency_signal, labels
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		labels, err := json.Marshal(record.Labels)
		if err != nil {
			return fmt.Errorf("marshal labels: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			record.ID,
			domain,
			record.SizeMetric,
			record.CurrentCost,
			record.CurrentTier,
			record.RecencySignal,
			labels,
		)
		if err != nil {
			return fmt.Errorf("insert record %q: %w", record.ID, err)
		}
	}
	return nil
}

func (s *inventoryStore) GetRecords(ctx context.Context, domain string) ([]store.ResourceRecord, error) {
	query := `
		SELECT id, domain, size_metric, current_cost, current_tier, recency_signal, labels, loaded_at
		FROM resource_records
		WHERE domain = ?
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, domain)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()
	return scanRecordRows(rows)
}

func (s *inventoryStore) GetTierTotals(ctx context.Context, domain string) ([]store.TierTotal, error) {
	query := `
		SELECT current_tier, COUNT(*), SUM(size_metric), SUM(current_cost)
		FROM resource_records
		WHERE domain = ?
		GROUP BY current_tier
		ORDER BY current_tier
	`
	rows, err := s.db.QueryContext(ctx, query, domain)
	if err != nil {
		return nil, fmt.Errorf("query tier totals: %w", err)
	}
	defer rows.Close()

	totals := make([]store.TierTotal, 0)
	for rows.Next() {
		var total store.TierTotal
		if err := rows.Scan(&total.Tier, &total.Records, &total.TotalSize, &total.TotalCost); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (s *inventoryStore) ListDomains(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT domain FROM resource_records ORDER BY domain`)
	if err != nil {
		return nil, fmt.Errorf("query domains: %w", err)
	}
	defer rows.Close()

	domains := make([]string, 0)
	for rows.Next() {
		var domain string
		if err := rows.Scan(&domain); err != nil {
			return nil, err
		}
		domains = append(domains, domain)
	}
	return domains, rows.Err()
}

func scanRecordRows(rows *sql.Rows) ([]store.ResourceRecord, error) {
	records := make([]store.ResourceRecord, 0)
	for rows.Next() {
		var (
			record    store.ResourceRecord
			labelsRaw []byte
		)
		err := rows.Scan(
			&record.ID,
			&record.Domain,
			&record.SizeMetric,
			&record.CurrentCost,
			&record.CurrentTier,
			&record.RecencySignal,
			&labelsRaw,
			&record.LoadedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(labelsRaw) > 0 {
			labels := map[string]string{}
			_ = json.Unmarshal(labelsRaw, &labels)
			record.Labels = labels
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
