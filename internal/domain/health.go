package domain

import "time"

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single diagnostic result.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates checks.
type HealthReport struct {
	Checks []HealthCheck
}

// Healthy reports whether no check failed outright.
func (r HealthReport) Healthy() bool {
	for _, check := range r.Checks {
		if check.Status == HealthError {
			return false
		}
	}
	return true
}

// Health is the liveness payload exposed to transports.
type Health struct {
	Status    string    `json:"status"`
	AIEnabled bool      `json:"ai_enabled"`
	Model     *string   `json:"ai_model"`
	Timestamp time.Time `json:"timestamp"`
}
