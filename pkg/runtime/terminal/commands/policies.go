package commands

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

// NewPoliciesCmd lists the registered domains with their tiering rules
// and priced transitions.
func NewPoliciesCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List registered domains and their tiering policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, name := range reg.Domains() {
				entry, err := reg.Get(name)
				if err != nil {
					return err
				}
				policy := entry.Policy

				fmt.Fprintf(out, "%s (policy %q, signal %s)\n", name, policy.Name, policy.Signal)
				for _, rule := range policy.Rules {
					upper := "inf"
					if !math.IsInf(rule.Upper, 1) {
						upper = fmt.Sprintf("%g", rule.Upper)
					}
					fmt.Fprintf(out, "  [%g, %s) -> %s\n", rule.Lower, upper, rule.Target)
				}

				for _, tr := range sortedTransitions(policy.Discounts) {
					fmt.Fprintf(out, "  %s -> %s saves %.0f%%\n",
						tr.From, tr.To, policy.Discounts[tr]*100)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func sortedTransitions(discounts map[domain.Transition]float64) []domain.Transition {
	transitions := make([]domain.Transition, 0, len(discounts))
	for tr := range discounts {
		transitions = append(transitions, tr)
	}
	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].From != transitions[j].From {
			return transitions[i].From < transitions[j].From
		}
		return transitions[i].To < transitions[j].To
	})
	return transitions
}
