package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inklink_realtime_events_published_total",
		Help: "Change events published to the in-process feed.",
	}, []string{"table", "op"})

	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inklink_realtime_events_dropped_total",
		Help: "Events dropped because a subscriber queue was full.",
	})

	eventsDeduplicated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inklink_realtime_events_deduplicated_total",
		Help: "Redelivered insert events suppressed by row id.",
	})

	subscriptionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inklink_realtime_subscriptions_active",
		Help: "Currently registered subscriptions.",
	})

	presenceChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inklink_realtime_presence_channels",
		Help: "Open presence channels.",
	})
)
