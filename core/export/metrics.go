package export

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Export job metrics
var (
	jobsQueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "melolist_export_jobs_queued_total",
			Help: "Total number of export jobs published to the queue",
		},
	)

	jobsDeliveredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "melolist_export_jobs_delivered_total",
			Help: "Total number of export jobs delivered by email",
		},
	)

	jobsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melolist_export_jobs_dropped_total",
			Help: "Total number of export jobs dropped by the consumer",
		},
		[]string{"reason"},
	)
)
