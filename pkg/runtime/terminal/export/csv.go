package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

var csvHeader = []string{"id", "current_tier", "recommended_tier", "current_cost", "potential_savings"}

// WriteCSV exports a recommendation run as CSV. Money columns are
// rounded to two decimals here and nowhere earlier.
func WriteCSV(w io.Writer, recommendations []domain.Recommendation) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range recommendations {
		row := []string{
			rec.Record.ID,
			string(rec.Record.CurrentTier),
			string(rec.RecommendedTier),
			money(rec.Record.CurrentCost),
			money(rec.PotentialSavings),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row for %q: %w", rec.Record.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
