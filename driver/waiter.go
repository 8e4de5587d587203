package driver

import (
	"fmt"
	"time"
)

type StatusInfo interface {
	Status() string
}

type StatusResource interface {
	ID() string
}

type StatusFetcher func(StatusResource) (StatusInfo, error)

type WaiterConfig struct {
	Resource      StatusResource
	DesiredStatus string
	PollInterval  time.Duration
	PollTimeout   time.Duration
	PollRetries   int
}

const (
	defaultPollTimeout  = 5 * time.Minute
	defaultPollInterval = 5 * time.Second
)

// TimeoutError is thrown when long polling times out
type TimeoutError struct {
	timeout  time.Duration
	resource StatusResource
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s polling on resource %s", e.timeout, e.resource.ID())
}

// WaitForStatus polls the resource at a fixed interval until it reaches the
// desired status or the timeout elapses. Transient fetch errors are tolerated
// up to PollRetries consecutive failures.
func WaitForStatus(status StatusFetcher, c WaiterConfig) (StatusInfo, error) {
	pollTimeout := c.PollTimeout
	if pollTimeout == 0 {
		pollTimeout = defaultPollTimeout
	}

	pollInterval := c.PollInterval
	if pollInterval == 0 {
		pollInterval = defaultPollInterval
	}

	timeout := time.After(pollTimeout)
	ticker := time.Tick(pollInterval)

	errCount := 0
	for {
		select {
		case <-timeout:
			return nil, TimeoutError{timeout: pollTimeout, resource: c.Resource}

		case <-ticker:
			info, err := status(c.Resource)
			if err != nil {
				errCount++
				if errCount > c.PollRetries {
					return nil, err
				}
				continue
			}

			errCount = 0
			if info.Status() == c.DesiredStatus {
				return info, nil
			}
		}
	}
}
