package budget

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the Prometheus collectors of the budget tracker.
var Metrics = []prometheus.Collector{
	rejectionCount,
	recordCount,
}

var rejectionCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_rejections_total",
		Help: "How many allocations and expenses were rejected for exceeding the available amount.",
	},
	[]string{"reason"},
)

var recordCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_records_total",
		Help: "How many fundings, allocations and expenses were recorded, partitioned by kind.",
	},
	[]string{"kind"},
)
