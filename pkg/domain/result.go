package domain

import "time"

// Status is the outcome classification of an executed action.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// ActionResult is the uniform envelope returned for every dispatched action,
// regardless of which backend handled it. Simulated records the backend that
// ran the action, independent of Status, so callers can tell "it failed"
// apart from "it was never really performed".
type ActionResult struct {
	Status    Status `json:"status"`
	Kind      Kind   `json:"kind"`
	Detail    string `json:"detail"`
	Simulated bool   `json:"simulated"`
}

// Success builds a successful result for the given action kind.
func Success(kind Kind, detail string, simulated bool) ActionResult {
	return ActionResult{Status: StatusSuccess, Kind: kind, Detail: detail, Simulated: simulated}
}

// Failure builds a failed result for the given action kind.
func Failure(kind Kind, detail string, simulated bool) ActionResult {
	return ActionResult{Status: StatusFailure, Kind: kind, Detail: detail, Simulated: simulated}
}

// Record is one entry in the dispatch audit trail.
type Record struct {
	Task   string       `json:"task"`
	Result ActionResult `json:"result"`
	At     time.Time    `json:"at"`
}
