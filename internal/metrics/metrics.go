package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	BookingsCreated     prometheus.Counter
	EmergenciesCreated  prometheus.Counter
	NotificationsSent   *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
	WebhookReplies      *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of booking requests created",
		}),

		EmergenciesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "emergency_requests_created_total",
			Help: "Total number of emergency requests created",
		}),

		NotificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of outbound notifications delivered",
		}, []string{"kind"}),

		NotificationsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_failed_total",
			Help: "Total number of outbound notifications that failed",
		}, []string{"kind"}),

		WebhookReplies: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "webhook_replies_total",
			Help: "Total number of webhook auto-replies by reply kind",
		}, []string{"kind"}),
	}
}
