package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/az-tools/cost-advisor/pkg/adapters"
	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/models/store"
	"github.com/az-tools/cost-advisor/pkg/runtime/terminal/export"
	"github.com/az-tools/cost-advisor/pkg/services/advisor"
	"github.com/az-tools/cost-advisor/pkg/services/config"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
	"github.com/az-tools/cost-advisor/pkg/store/csv"
	"github.com/az-tools/cost-advisor/pkg/store/duckdb"
	"github.com/az-tools/cost-advisor/pkg/store/duckdb/inventory"
	"github.com/az-tools/cost-advisor/pkg/store/sqlsource"
)

// ReportHandler renders a finished report.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// Renderers holds the output formats the analyze command can pick from.
type Renderers struct {
	Table ReportHandler
	Plain ReportHandler
}

func (r Renderers) pick(format string) (ReportHandler, error) {
	switch format {
	case "table":
		return r.Table, nil
	case "plain":
		return r.Plain, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want table or plain)", format)
	}
}

// NewAnalyzeCmd scores one domain's fleet against its tiering policy and
// renders the recommendation report.
func NewAnalyzeCmd(reg *registry.Registry, renderers Renderers) *cobra.Command {
	var (
		days        int
		seed        int64
		topN        int
		format      string
		policyPath  string
		profilePath string
		csvIn       string
		fromDB      string
		sqlTable    string
		csvOut      string
		dbPath      string
	)

	cmd := &cobra.Command{
		Use:   "analyze [domain]",
		Short: "Score a fleet and report tier recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)
			name := args[0]

			handler, err := renderers.pick(format)
			if err != nil {
				return err
			}

			entry, err := reg.Get(name)
			if err != nil {
				return err
			}

			policy := entry.Policy
			if policyPath != "" {
				policy, err = config.LoadPolicy(policyPath)
				if err != nil {
					return fmt.Errorf("load policy override: %w", err)
				}
				logger.Info().Str("policy", policy.Name).Msg("using policy override")
			}

			fleet, err := loadFleet(ctx, name, entry, fleetInput{
				csvPath:  csvIn,
				dbPath:   fromDB,
				sqlTable: sqlTable,
				seed:     seed,
			})
			if err != nil {
				return err
			}

			if dbPath != "" {
				if err := snapshotFleet(ctx, dbPath, fleet); err != nil {
					return fmt.Errorf("snapshot fleet: %w", err)
				}
				logger.Info().Str("db", dbPath).Int("records", len(fleet.Records)).
					Msg("fleet snapshot stored")
			}

			recommendations, err := advisor.Recommend(fleet.Records, policy)
			if err != nil {
				return err
			}

			report := advisor.BuildReport(recommendations, advisor.ReportSettings{
				Title:    fmt.Sprintf("Cost Optimization: %s", name),
				Days:     days,
				Currency: loadCurrency(profilePath),
				TopN:     topN,
			})
			if err := handler.Handle(report); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if csvOut != "" {
				if err := exportCSV(csvOut, recommendations); err != nil {
					return err
				}
				logger.Info().Str("path", csvOut).Msg("recommendations exported")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 90, "analysis window in days")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the synthetic data seed")
	cmd.Flags().IntVar(&topN, "top", 10, "number of opportunities to list")
	cmd.Flags().StringVar(&format, "format", "table", "report format: table or plain")
	cmd.Flags().StringVar(&policyPath, "policy", "", "path to a YAML policy override")
	cmd.Flags().StringVar(&profilePath, "profile", "", "path to an ini subscription profile")
	cmd.Flags().StringVar(&csvIn, "csv", "", "load the fleet from a CSV inventory export")
	cmd.Flags().StringVar(&fromDB, "from-db", "", "load the fleet from an embedded database file")
	cmd.Flags().StringVar(&sqlTable, "table", "", "with --from-db, read an alternate export table instead of the inventory")
	cmd.Flags().StringVar(&csvOut, "export", "", "write recommendations to a CSV file")
	cmd.Flags().StringVar(&dbPath, "db", "", "snapshot the fleet into an embedded database file")

	return cmd
}

type fleetInput struct {
	csvPath  string
	dbPath   string
	sqlTable string
	seed     int64
}

func loadFleet(ctx context.Context, name string, entry registry.Entry, in fleetInput) (domain.Fleet, error) {
	if in.csvPath != "" {
		rows, err := csv.ReadRecords(in.csvPath, name)
		if err != nil {
			return domain.Fleet{}, fmt.Errorf("load fleet from csv: %w", err)
		}
		return fleetFromRows(name, rows), nil
	}

	if in.dbPath != "" {
		rows, err := readStoredFleet(ctx, name, in.dbPath, in.sqlTable)
		if err != nil {
			return domain.Fleet{}, fmt.Errorf("load fleet from db: %w", err)
		}
		return fleetFromRows(name, rows), nil
	}

	return entry.Source.Fleet(ctx, registry.SourceOptions{Seed: in.seed})
}

func readStoredFleet(ctx context.Context, name, dbPath, table string) ([]store.ResourceRecord, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if table != "" {
		source, err := sqlsource.NewSource(db, table)
		if err != nil {
			return nil, err
		}
		return source.GetRecords(ctx, name)
	}

	inv, err := inventory.NewStore(db)
	if err != nil {
		return nil, err
	}
	return inv.GetRecords(ctx, name)
}

func fleetFromRows(name string, rows []store.ResourceRecord) domain.Fleet {
	fleet := domain.Fleet{Domain: name}
	for _, row := range rows {
		fleet.Records = append(fleet.Records, adapters.MapStoreRecordToDomain(row))
	}
	return fleet
}

func snapshotFleet(ctx context.Context, dbPath string, fleet domain.Fleet) error {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	inv, err := inventory.NewStore(db)
	if err != nil {
		return err
	}

	rows := make([]store.ResourceRecord, 0, len(fleet.Records))
	for _, rec := range fleet.Records {
		rows = append(rows, adapters.MapDomainRecordToStore(rec, fleet.Domain))
	}
	return inv.Add(ctx, fleet.Domain, rows)
}

func exportCSV(path string, recommendations []domain.Recommendation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	return export.WriteCSV(f, recommendations)
}

func loadCurrency(profilePath string) string {
	if profilePath == "" {
		return config.DefaultProfile().Currency
	}
	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return config.DefaultProfile().Currency
	}
	return profile.Currency
}
