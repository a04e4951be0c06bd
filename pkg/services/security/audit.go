package security

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// Ports that should never face the internet directly.
var riskyPorts = map[int]bool{
	3389: true, // RDP
	445:  true, // SMB
}

const (
	complianceThreshold = 70.0
	highRiskThreshold   = 60.0
	mediumRiskThreshold = 30.0
)

// Assess scores a fleet of monitored resources. The composite threat
// score weighs the inverted security score at 0.4 and failed logins and
// patch age, each normalized against the fleet maximum, at 0.3 apiece.
func Assess(samples []domain.SecuritySample) domain.SecurityPosture {
	posture := domain.SecurityPosture{}
	if len(samples) == 0 {
		return posture
	}

	var maxLogins, maxPatchAge float64
	for _, s := range samples {
		if v := float64(s.FailedLogins); v > maxLogins {
			maxLogins = v
		}
		if v := float64(s.DaysSincePatch); v > maxPatchAge {
			maxPatchAge = v
		}
	}

	scores := make([]float64, 0, len(samples))
	var compliant int
	for _, s := range samples {
		composite := 0.4 * (100 - s.SecurityScore)
		if maxLogins > 0 {
			composite += 0.3 * (float64(s.FailedLogins) / maxLogins) * 100
		}
		if maxPatchAge > 0 {
			composite += 0.3 * (float64(s.DaysSincePatch) / maxPatchAge) * 100
		}

		assessment := domain.ThreatAssessment{
			Resource:       s.Resource,
			CompositeScore: composite,
			RiskLevel:      bucket(composite),
			RiskyPort:      riskyPorts[s.OpenPort],
		}
		posture.Assessments = append(posture.Assessments, assessment)

		switch assessment.RiskLevel {
		case domain.RiskHigh:
			posture.HighRisk++
		case domain.RiskMedium:
			posture.MediumRisk++
		default:
			posture.LowRisk++
		}

		scores = append(scores, s.SecurityScore)
		if s.SecurityScore > complianceThreshold {
			compliant++
		}
	}

	sort.Float64s(scores)
	posture.MeanScore = stat.Mean(scores, nil)
	posture.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
	if len(scores) > 1 {
		posture.ScoreStdDev = stat.StdDev(scores, nil)
	}
	posture.ComplianceRate = float64(compliant) / float64(len(samples))
	posture.TopThreats = topThreats(posture.Assessments, 3)
	return posture
}

func bucket(composite float64) domain.RiskLevel {
	switch {
	case composite > highRiskThreshold:
		return domain.RiskHigh
	case composite >= mediumRiskThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func topThreats(assessments []domain.ThreatAssessment, n int) []domain.ThreatAssessment {
	sorted := make([]domain.ThreatAssessment, len(assessments))
	copy(sorted, assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompositeScore > sorted[j].CompositeScore
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
