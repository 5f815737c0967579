// Package metrics exposes Prometheus instrumentation for backend calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	obserrors "github.com/learnify/learnify-ui/internal/observability/errors"
)

// Result constants for metric labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultPending = "pending"
)

// Recorder is the instrumentation surface used by the landing service.
type Recorder interface {
	RecordCourseFetch(courses int, d time.Duration, err error)
	RecordCoalescedFetch()
	RecordLogout(d time.Duration, err error)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordCourseFetch(int, time.Duration, error) {}
func (Nop) RecordCoalescedFetch()                       {}
func (Nop) RecordLogout(time.Duration, error)           {}

var (
	_ Recorder = Nop{}
	_ Recorder = (*Collector)(nil)
)

// Collector records backend call outcomes into a Prometheus registry.
type Collector struct {
	courseFetches  *prometheus.CounterVec
	coursesLoaded  prometheus.Histogram
	coalesced      prometheus.Counter
	logouts        *prometheus.CounterVec
	backendLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		courseFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "learnify_course_fetch_total",
			Help: "Course list fetches by result and error class.",
		}, []string{"result", "error_class"}),
		coursesLoaded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "learnify_courses_loaded",
			Help:    "Number of courses returned per successful fetch.",
			Buckets: []float64{0, 1, 3, 6, 12, 25, 50, 100},
		}),
		coalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "learnify_course_fetch_coalesced_total",
			Help: "Page loads that shared an in-flight course fetch.",
		}),
		logouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "learnify_logout_total",
			Help: "Logout attempts by result and error class.",
		}, []string{"result", "error_class"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "learnify_backend_request_seconds",
			Help:    "Latency of backend calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(c.courseFetches, c.coursesLoaded, c.coalesced, c.logouts, c.backendLatency)
	return c
}

func (c *Collector) RecordCourseFetch(courses int, d time.Duration, err error) {
	c.backendLatency.WithLabelValues("list_courses").Observe(d.Seconds())
	if err != nil {
		c.courseFetches.WithLabelValues(ResultError, obserrors.Classify(err)).Inc()
		return
	}
	c.courseFetches.WithLabelValues(ResultSuccess, "").Inc()
	c.coursesLoaded.Observe(float64(courses))
}

func (c *Collector) RecordCoalescedFetch() {
	c.coalesced.Inc()
}

func (c *Collector) RecordLogout(d time.Duration, err error) {
	class := obserrors.Classify(err)
	switch {
	case err == nil:
		c.logouts.WithLabelValues(ResultSuccess, "").Inc()
	case class == obserrors.ClassPending:
		c.logouts.WithLabelValues(ResultPending, class).Inc()
		return
	default:
		c.logouts.WithLabelValues(ResultError, class).Inc()
	}
	c.backendLatency.WithLabelValues("logout").Observe(d.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
