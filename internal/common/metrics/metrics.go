// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_built_total",
			Help: "Total number of notifications built per event kind",
		},
		[]string{"event_kind"},
	)

	NotificationBuildFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_build_failures_total",
			Help: "Total number of notification builds that failed",
		},
		[]string{"event_kind", "error_code"},
	)

	NotificationBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "notification_build_duration_seconds",
			Help: "Duration of notification builds in seconds",
		},
		[]string{"event_kind"},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_sent_total",
			Help: "Total number of emails handed to the mail transport",
		},
		[]string{"provider"},
	)
)
