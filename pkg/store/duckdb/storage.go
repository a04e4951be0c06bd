package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const InventoryTableSchema = `
	CREATE TABLE IF NOT EXISTS resource_records (
		id VARCHAR NOT NULL,
		domain VARCHAR NOT NULL,
		size_metric DOUBLE,
		current_cost DOUBLE,
		current_tier VARCHAR,
		recency_signal DOUBLE,
		labels JSON,
		loaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (domain, id)
	);
`

var bootQueries = []string{
	InventoryTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens an embedded DuckDB database and applies the boot schema.
// An empty path falls back to an in-memory database.
func NewDB(settings Settings) (*sql.DB, error) {
	path := settings.DbPath
	if path == "" {
		path = ":memory:"
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", path), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sql.OpenDB(c), nil
}
