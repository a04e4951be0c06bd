package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/az-tools/cost-advisor/pkg/services/advisor"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

// NewSummaryCmd scores every registered domain and prints the combined
// savings picture.
func NewSummaryCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Aggregate savings across all registered domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var totalCost, totalSavings float64
			var records, actionable int

			for _, name := range reg.Domains() {
				recommendations, err := reg.Recommend(ctx, name)
				if err != nil {
					return fmt.Errorf("analyze %s: %w", name, err)
				}

				summary := advisor.Summarize(recommendations)
				fmt.Fprintf(out, "%-10s %4d records, %3d actionable, %10.2f monthly cost, %10.2f savings\n",
					name, summary.Records, summary.Actionable,
					summary.TotalCurrentCost, summary.TotalSavings)

				totalCost += summary.TotalCurrentCost
				totalSavings += summary.TotalSavings
				records += summary.Records
				actionable += summary.Actionable
			}

			fmt.Fprintf(out, "\nTotal: %d records, %d actionable\n", records, actionable)
			fmt.Fprintf(out, "Monthly cost:    %.2f\n", totalCost)
			fmt.Fprintf(out, "Monthly savings: %.2f\n", totalSavings)
			fmt.Fprintf(out, "Annual savings:  %.2f\n", totalSavings*12)
			if totalCost > 0 {
				fmt.Fprintf(out, "ROI:             %.1f%%\n", totalSavings/totalCost*100)
			} else {
				fmt.Fprintln(out, "ROI:             n/a")
			}
			return nil
		},
	}
}
