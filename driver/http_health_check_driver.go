package driver

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"ec2-deployer/resources"
)

var _ resources.HealthCheckDriver = &HTTPHealthCheckDriver{}

// HTTPHealthCheckDriver polls an HTTP endpoint at a fixed interval until the
// application answers with 200 or the deadline elapses
type HTTPHealthCheckDriver struct {
	httpClient *http.Client
	logger     *log.Logger
}

// NewHTTPHealthCheckDriver creates a HTTPHealthCheckDriver for verifying application readiness
func NewHTTPHealthCheckDriver(logDest io.Writer) *HTTPHealthCheckDriver {
	return &HTTPHealthCheckDriver{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.New(logDest, "HTTPHealthCheckDriver ", log.LstdFlags),
	}
}

// Check polls driverConfig.Endpoint until it responds with HTTP 200
func (d *HTTPHealthCheckDriver) Check(driverConfig resources.HealthCheckDriverConfig) error {
	d.logger.Printf("polling %s every %s\n", driverConfig.Endpoint, driverConfig.PollInterval)

	waiterConfig := WaiterConfig{
		Resource:      endpointResource{url: driverConfig.Endpoint},
		DesiredStatus: resources.HealthyStatus,
		PollInterval:  driverConfig.PollInterval,
		PollTimeout:   driverConfig.PollTimeout,
	}

	_, err := WaitForStatus(d.probe, waiterConfig)
	if err != nil {
		return fmt.Errorf("waiting for %s to answer: %s", driverConfig.Endpoint, err)
	}

	d.logger.Printf("%s answered with 200\n", driverConfig.Endpoint)

	return nil
}

// probe treats connection errors as the instance not being reachable yet
// rather than as fatal poll failures
func (d *HTTPHealthCheckDriver) probe(resource StatusResource) (StatusInfo, error) {
	resp, err := d.httpClient.Get(resource.ID())
	if err != nil {
		d.logger.Printf("%s not reachable yet: %s\n", resource.ID(), err)
		return healthInfo{status: resources.UnreachableStatus}, nil
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusOK {
		return healthInfo{status: resources.HealthyStatus}, nil
	}

	d.logger.Printf("%s answered with %d\n", resource.ID(), resp.StatusCode)

	return healthInfo{status: resources.UnhealthyStatus}, nil
}

type endpointResource struct {
	url string
}

func (r endpointResource) ID() string {
	return r.url
}

type healthInfo struct {
	status string
}

func (i healthInfo) Status() string {
	return i.status
}
