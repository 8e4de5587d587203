package driver_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"ec2-deployer/driver"
	"ec2-deployer/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingHandler struct {
	sync.Mutex
	failures  int
	pollTimes []time.Time
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Lock()
	defer h.Unlock()

	h.pollTimes = append(h.pollTimes, time.Now())
	if len(h.pollTimes) <= h.failures {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *countingHandler) polls() []time.Time {
	h.Lock()
	defer h.Unlock()

	polls := make([]time.Time, len(h.pollTimes))
	copy(polls, h.pollTimes)
	return polls
}

var _ = Describe("HTTPHealthCheckDriver", func() {
	const pollInterval = 50 * time.Millisecond

	It("succeeds once the application answers with 200", func() {
		handler := &countingHandler{failures: 3}
		server := httptest.NewServer(handler)
		defer server.Close()

		healthCheckDriver := driver.NewHTTPHealthCheckDriver(GinkgoWriter)
		err := healthCheckDriver.Check(resources.HealthCheckDriverConfig{
			Endpoint:     server.URL,
			PollInterval: pollInterval,
			PollTimeout:  2 * time.Second,
		})
		Expect(err).ToNot(HaveOccurred())

		polls := handler.polls()
		Expect(polls).To(HaveLen(4), "Expected failing polls plus exactly one successful poll")

		for i := 1; i < len(polls); i++ {
			spacing := polls[i].Sub(polls[i-1])
			Expect(spacing).To(BeNumerically(">=", pollInterval/2))
			Expect(spacing).To(BeNumerically("<", 5*pollInterval))
		}
	})

	It("fails with a timeout error when the application never answers with 200", func() {
		handler := &countingHandler{failures: 1 << 30}
		server := httptest.NewServer(handler)
		defer server.Close()

		healthCheckDriver := driver.NewHTTPHealthCheckDriver(GinkgoWriter)
		err := healthCheckDriver.Check(resources.HealthCheckDriverConfig{
			Endpoint:     server.URL,
			PollInterval: pollInterval,
			PollTimeout:  300 * time.Millisecond,
		})

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("timed out after 300ms"))
	})

	It("keeps polling while the endpoint is not reachable at all", func() {
		server := httptest.NewServer(http.NotFoundHandler())
		endpoint := server.URL
		server.Close()

		healthCheckDriver := driver.NewHTTPHealthCheckDriver(GinkgoWriter)
		err := healthCheckDriver.Check(resources.HealthCheckDriverConfig{
			Endpoint:     endpoint,
			PollInterval: pollInterval,
			PollTimeout:  300 * time.Millisecond,
		})

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("timed out"))
	})
})
