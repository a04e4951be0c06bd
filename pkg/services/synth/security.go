package synth

import "github.com/az-tools/cost-advisor/pkg/models/domain"

// SecuritySamples returns the canonical monitored-resource snapshot used
// by the security posture demo.
func SecuritySamples() []domain.SecuritySample {
	return []domain.SecuritySample{
		{Resource: "web-vm-01", SecurityScore: 85, FailedLogins: 3, OpenPort: 22, DaysSincePatch: 5},
		{Resource: "db-vm-01", SecurityScore: 42, FailedLogins: 45, OpenPort: 135, DaysSincePatch: 45},
		{Resource: "web-vm-02", SecurityScore: 91, FailedLogins: 1, OpenPort: 22, DaysSincePatch: 3},
		{Resource: "legacy-vm", SecurityScore: 38, FailedLogins: 78, OpenPort: 3389, DaysSincePatch: 89},
		{Resource: "app-vm-01", SecurityScore: 76, FailedLogins: 12, OpenPort: 80, DaysSincePatch: 22},
		{Resource: "api-vm-01", SecurityScore: 95, FailedLogins: 0, OpenPort: 443, DaysSincePatch: 1},
		{Resource: "old-test-vm", SecurityScore: 29, FailedLogins: 102, OpenPort: 3389, DaysSincePatch: 120},
		{Resource: "web-vm-03", SecurityScore: 88, FailedLogins: 5, OpenPort: 22, DaysSincePatch: 10},
		{Resource: "file-server", SecurityScore: 45, FailedLogins: 38, OpenPort: 445, DaysSincePatch: 67},
		{Resource: "app-vm-02", SecurityScore: 82, FailedLogins: 8, OpenPort: 80, DaysSincePatch: 8},
	}
}
