package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReconcilePassDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reconcile_pass_duration_seconds",
			Help:    "Duration of one full reconciliation pass",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"changed"},
	)

	HealedRemindersCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "healed_reminders_total",
			Help: "Reminders whose schedule refs were rewritten by the reconciler",
		},
	)

	TakenEventsCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taken_events_total",
			Help: "Adherence taps, by outcome",
		},
		[]string{"outcome"}, // outcome: recorded, toggled_off
	)
)

func ObserveReconcilePass(changed bool, duration time.Duration) {
	ReconcilePassDuration.WithLabelValues(strconv.FormatBool(changed)).Observe(duration.Seconds())
}

func IncrementHealedReminders() {
	HealedRemindersCount.Inc()
}

func IncrementTakenEvents(outcome string) {
	TakenEventsCount.WithLabelValues(outcome).Inc()
}
