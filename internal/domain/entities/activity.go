package entities

import "time"

// ActivityOutcome summarizes how a recorded operation ended.
type ActivityOutcome string

const (
	ActivityOutcomeSuccess ActivityOutcome = "success"
	ActivityOutcomePending ActivityOutcome = "pending"
	ActivityOutcomeFailure ActivityOutcome = "failure"
)

// Activity is one entry of the local operation log shown by the dashboard console.
//
// ID is a local log identifier; ResourceID is the remote id the operation touched, if any.
type Activity struct {
	ID         string          `json:"id"`
	Operation  string          `json:"operation"`
	Label      string          `json:"label"`
	Outcome    ActivityOutcome `json:"outcome"`
	ResourceID string          `json:"resource_id,omitempty"`
	Error      string          `json:"error,omitempty"`
	Lines      []string        `json:"lines,omitempty"`
	At         time.Time       `json:"at"`
}
