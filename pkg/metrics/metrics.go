package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ApplicationsSubmitted counts successfully stored applications.
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "careerbridge",
		Name:      "applications_submitted_total",
		Help:      "Number of applications successfully submitted.",
	})

	// StatusTransitions counts application status transitions by target status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "careerbridge",
		Name:      "application_status_transitions_total",
		Help:      "Number of application status transitions by target status.",
	}, []string{"status"})

	// NotificationsSent counts notification emails by kind and outcome.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "careerbridge",
		Name:      "notifications_sent_total",
		Help:      "Number of notification emails attempted, by kind and result.",
	}, []string{"kind", "result"})
)
