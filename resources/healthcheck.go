package resources

import "time"

// Health statuses observed while polling the application endpoint
const (
	HealthyStatus     = "healthy"
	UnhealthyStatus   = "unhealthy"
	UnreachableStatus = "unreachable"
)

// HealthCheckDriver abstracts polling an HTTP endpoint until the application answers
//
//counterfeiter:generate . HealthCheckDriver
type HealthCheckDriver interface {
	Check(HealthCheckDriverConfig) error
}

type HealthCheckDriverConfig struct {
	Endpoint     string
	PollInterval time.Duration
	PollTimeout  time.Duration
}
