package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestsTotal счётчик обработанных запросов по типу сообщения.
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "happyplants_requests_total",
		Help: "Total dispatched client requests by message type.",
	},
	[]string{"type"},
)
