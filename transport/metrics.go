package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/buildrun/unihub-client/metrics"
)

// Metrics instruments outgoing requests with the shared Prometheus
// collectors: one counter by method/status and one duration histogram.
type Metrics struct {
	Base http.RoundTripper
}

func (m *Metrics) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := m.base().RoundTrip(req)
	metrics.HTTPRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.HTTPRequestsTotal.WithLabelValues(req.Method, status).Inc()
	return resp, err
}

func (m *Metrics) base() http.RoundTripper {
	if m.Base != nil {
		return m.Base
	}
	return http.DefaultTransport
}
