package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/az-tools/cost-advisor/pkg/services/security"
	"github.com/az-tools/cost-advisor/pkg/services/synth"
)

// NewSecurityCmd scores the monitored fleet's security posture.
func NewSecurityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "security",
		Short: "Score the monitored fleet's security posture",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			posture := security.Assess(synth.SecuritySamples())

			fmt.Fprintf(out, "Resources assessed: %d\n", len(posture.Assessments))
			fmt.Fprintf(out, "Security score:     mean %.1f, median %.1f, stddev %.1f\n",
				posture.MeanScore, posture.MedianScore, posture.ScoreStdDev)
			fmt.Fprintf(out, "Compliance rate:    %.0f%%\n", posture.ComplianceRate*100)
			fmt.Fprintf(out, "Risk levels:        %d high / %d medium / %d low\n\n",
				posture.HighRisk, posture.MediumRisk, posture.LowRisk)

			fmt.Fprintln(out, "=== Top Threats ===")
			for i, threat := range posture.TopThreats {
				port := ""
				if threat.RiskyPort {
					port = " [risky port exposed]"
				}
				fmt.Fprintf(out, "%d. %s: threat %.1f (%s)%s\n",
					i+1, threat.Resource, threat.CompositeScore, threat.RiskLevel, port)
			}
			return nil
		},
	}
}
