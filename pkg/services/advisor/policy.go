package advisor

import (
	"fmt"
	"math"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// ConfigurationError reports a malformed policy table. It is detected once
// at load time, before any record is scored.
type ConfigurationError struct {
	Policy string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("policy %q: %s", e.Policy, e.Reason)
}

// ValidatePolicy checks that the rules cover a contiguous [0, +Inf) range
// in ascending order and that every discount fraction lies in [0, 1].
func ValidatePolicy(p domain.Policy) error {
	if len(p.Rules) == 0 {
		return &ConfigurationError{Policy: p.Name, Reason: "no rules defined"}
	}

	if p.Rules[0].Lower != 0 {
		return &ConfigurationError{
			Policy: p.Name,
			Reason: fmt.Sprintf("first rule must start at 0, got %g", p.Rules[0].Lower),
		}
	}

	for i, rule := range p.Rules {
		if rule.Upper <= rule.Lower {
			return &ConfigurationError{
				Policy: p.Name,
				Reason: fmt.Sprintf("rule %d: empty interval [%g, %g)", i, rule.Lower, rule.Upper),
			}
		}
		if rule.Target == "" {
			return &ConfigurationError{
				Policy: p.Name,
				Reason: fmt.Sprintf("rule %d: missing target tier", i),
			}
		}
		if i > 0 && rule.Lower != p.Rules[i-1].Upper {
			return &ConfigurationError{
				Policy: p.Name,
				Reason: fmt.Sprintf("gap or overlap between rule %d and %d: %g != %g",
					i-1, i, p.Rules[i-1].Upper, rule.Lower),
			}
		}
	}

	if last := p.Rules[len(p.Rules)-1]; !math.IsInf(last.Upper, 1) {
		return &ConfigurationError{
			Policy: p.Name,
			Reason: fmt.Sprintf("last rule must be open-ended, got upper bound %g", last.Upper),
		}
	}

	for transition, discount := range p.Discounts {
		if discount < 0 || discount > 1 {
			return &ConfigurationError{
				Policy: p.Name,
				Reason: fmt.Sprintf("discount for %s->%s out of range: %g",
					transition.From, transition.To, discount),
			}
		}
	}

	return nil
}

// match returns the target tier of the first rule whose [Lower, Upper)
// interval contains the signal. A signal equal to a rule's lower bound
// belongs to that rule, not the preceding one.
func match(rules []domain.Rule, signal float64) (domain.Tier, bool) {
	for _, rule := range rules {
		if signal >= rule.Lower && signal < rule.Upper {
			return rule.Target, true
		}
	}
	return "", false
}

// Classify evaluates a bare value against a policy's interval rules. It is
// used for band lookups with no savings semantics, e.g. cost categories.
func Classify(p domain.Policy, value float64) (domain.Tier, error) {
	if err := ValidatePolicy(p); err != nil {
		return "", err
	}
	if value < 0 {
		return "", fmt.Errorf("value must be non-negative, got %g", value)
	}
	tier, ok := match(p.Rules, value)
	if !ok {
		return "", &ConfigurationError{Policy: p.Name, Reason: fmt.Sprintf("no rule covers %g", value)}
	}
	return tier, nil
}

func signalValue(rec domain.ResourceRecord, signal domain.Signal) float64 {
	switch signal {
	case domain.SignalSize:
		return rec.SizeMetric
	case domain.SignalCost:
		return rec.CurrentCost
	default:
		return rec.RecencySignal
	}
}
