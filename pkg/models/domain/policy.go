package domain

// Signal selects which record field a policy evaluates.
type Signal string

const (
	// SignalRecency evaluates days since last access.
	SignalRecency Signal = "recency"
	// SignalSize evaluates the size metric (GB, or CPU % for VM sizing).
	SignalSize Signal = "size"
	// SignalCost evaluates the current monthly cost.
	SignalCost Signal = "cost"
)

// Rule assigns a target tier to the half-open interval [Lower, Upper).
// The last rule of a policy is open-ended (Upper = +Inf).
type Rule struct {
	Lower  float64
	Upper  float64
	Target Tier
}

// Transition identifies a tier move priced by a policy.
type Transition struct {
	From Tier
	To   Tier
}

// Policy is an ordered list of interval rules plus a transition table
// mapping priced tier moves to discount fractions in [0, 1]. Transitions
// absent from the table are not recommended and yield zero savings.
type Policy struct {
	Name      string
	Signal    Signal
	Rules     []Rule
	Discounts map[Transition]float64
}
