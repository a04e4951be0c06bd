package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/az-tools/cost-advisor/pkg/services/analysis"
	"github.com/az-tools/cost-advisor/pkg/services/synth"
)

// NewTrendsCmd runs the descriptive analytics over the daily spend
// series: anomalies, a 30-day forecast and the optimization insights.
func NewTrendsCmd() *cobra.Command {
	var (
		days    int
		seed    int64
		horizon int
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Analyze the daily spend series for anomalies, forecast and insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			opts := synth.DefaultDailyCostOptions()
			opts.Days = days
			if seed != 0 {
				opts.Seed = seed
			}
			series := synth.GenerateDailyCosts(opts)
			points := analysis.DailyTotals(series)

			fmt.Fprintf(out, "Spend series: %d days, %d services\n\n", days, len(analysis.ServiceTotals(series)))

			anomalies := analysis.DetectAnomalies(points, series)
			fmt.Fprintf(out, "=== Anomalies (%d) ===\n", len(anomalies))
			for _, a := range anomalies {
				fmt.Fprintf(out, "%s: %.2f vs %.2f avg (%+.1f%%), driven by %v\n",
					a.Date.Format("2006-01-02"), a.Cost, a.MovingAvg, a.DeviationPct, a.TopServices)
			}

			forecast := analysis.ForecastSpend(points, horizon)
			fmt.Fprintf(out, "\n=== %d-Day Forecast ===\n", horizon)
			fmt.Fprintf(out, "Daily average:   %.2f\n", forecast.DailyAverage)
			fmt.Fprintf(out, "Trend per day:   %+.2f\n", forecast.TrendPerDay)
			fmt.Fprintf(out, "Projected total: %.2f\n", forecast.ProjectedTotal)
			fmt.Fprintf(out, "Last day:        %.2f (%+.2f vs today)\n",
				forecast.ProjectedLastDay, forecast.ExpectedIncrease)

			insights := analysis.FindInsights(series)
			fmt.Fprintf(out, "\n=== Insights (%d) ===\n", len(insights))
			for _, ins := range insights {
				fmt.Fprintf(out, "[%s] %s / %s: %s (save ~%.2f/period)\n  -> %s\n",
					ins.Priority, ins.Category, ins.Service, ins.Issue, ins.PotentialSavings, ins.Action)
			}

			if t := opts.End; !t.IsZero() {
				fmt.Fprintf(out, "\nWindow: %s to %s\n",
					t.AddDate(0, 0, -days).Format("2006-01-02"), t.Format(time.DateOnly))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 90, "length of the spend series in days")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the synthetic data seed")
	cmd.Flags().IntVar(&horizon, "horizon", 30, "forecast horizon in days")

	return cmd
}
