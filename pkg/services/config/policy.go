package config

import (
	"fmt"
	"math"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/services/advisor"
	"github.com/spf13/viper"
)

// PolicyFile is the on-disk shape of a policy override. The last rule may
// omit `upper` to mean an open-ended interval.
type PolicyFile struct {
	Name   string `mapstructure:"name"`
	Signal string `mapstructure:"signal"`
	Rules  []struct {
		Lower  float64  `mapstructure:"lower"`
		Upper  *float64 `mapstructure:"upper"`
		Target string   `mapstructure:"target"`
	} `mapstructure:"rules"`
	Transitions []struct {
		From     string  `mapstructure:"from"`
		To       string  `mapstructure:"to"`
		Discount float64 `mapstructure:"discount"`
	} `mapstructure:"transitions"`
}

// LoadPolicy reads a policy table from a YAML file and validates it. A
// malformed table is a configuration error reported here, once, before
// any scoring happens.
func LoadPolicy(path string) (domain.Policy, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return domain.Policy{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	var file PolicyFile
	if err := v.Unmarshal(&file); err != nil {
		return domain.Policy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}

	policy := domain.Policy{
		Name:      file.Name,
		Signal:    domain.Signal(file.Signal),
		Discounts: map[domain.Transition]float64{},
	}
	if policy.Signal == "" {
		policy.Signal = domain.SignalRecency
	}

	for _, rule := range file.Rules {
		upper := math.Inf(1)
		if rule.Upper != nil {
			upper = *rule.Upper
		}
		policy.Rules = append(policy.Rules, domain.Rule{
			Lower:  rule.Lower,
			Upper:  upper,
			Target: domain.Tier(rule.Target),
		})
	}

	for _, tr := range file.Transitions {
		policy.Discounts[domain.Transition{
			From: domain.Tier(tr.From),
			To:   domain.Tier(tr.To),
		}] = tr.Discount
	}

	if err := advisor.ValidatePolicy(policy); err != nil {
		return domain.Policy{}, err
	}
	return policy, nil
}
