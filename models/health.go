package models

// HealthStatus is the coarse state reported by a single health check.
type HealthStatus string

const (
	// HealthStatusHealthy means the checked component responded normally.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy means the checked component failed to respond
	// or responded with an error.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the body returned by the liveness and database health
// endpoints. Each check is computed fresh per request; nothing is persisted.
//
// The two endpoints report independently so operators can tell "app is down"
// (no response at all) from "app is up but the database is unreachable"
// (liveness healthy, database unhealthy).
type HealthResponse struct {
	// OK is true when the check passed.
	OK bool `json:"ok"`

	// Status is the string form of the check result.
	Status HealthStatus `json:"status"`

	// Details carries an operator-facing explanation for a failed check.
	// Empty on success.
	Details string `json:"details,omitempty"`
}
