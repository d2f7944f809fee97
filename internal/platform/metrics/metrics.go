package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-wide HTTP metrics. Module-specific metrics live in
// their vertical's metrics package.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers the platform metrics.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mergington_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "status"}),
	}
}

// ObserveRequest records one request. Call with time.Now() captured before the
// handler ran.
func (m *Metrics) ObserveRequest(method string, status int, start time.Time) {
	m.RequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}
