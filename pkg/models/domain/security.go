package domain

// SecuritySample is one monitored resource's security posture snapshot.
type SecuritySample struct {
	Resource       string
	SecurityScore  float64 // 0-100, higher is better
	FailedLogins   int
	OpenPort       int
	DaysSincePatch int
}

// ThreatAssessment is the scored result for one resource.
type ThreatAssessment struct {
	Resource       string
	CompositeScore float64 // 0-100, higher is worse
	RiskLevel      RiskLevel
	RiskyPort      bool
}

// RiskLevel buckets a composite threat score.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// SecurityPosture summarizes a whole fleet assessment.
type SecurityPosture struct {
	Assessments    []ThreatAssessment
	MeanScore      float64
	MedianScore    float64
	ScoreStdDev    float64
	HighRisk       int
	MediumRisk     int
	LowRisk        int
	ComplianceRate float64 // fraction of resources with score > 70
	TopThreats     []ThreatAssessment
}
