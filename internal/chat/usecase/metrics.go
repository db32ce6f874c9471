package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inklink_chat_messages_sent_total",
		Help: "Messages durably inserted, by message type.",
	}, []string{"type"})

	sendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inklink_chat_send_failures_total",
		Help: "Sends that failed at the durable insert.",
	})

	bookkeepingFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inklink_chat_bookkeeping_failures_total",
		Help: "Best-effort post-send writes that failed, by step.",
	}, []string{"step"})
)
