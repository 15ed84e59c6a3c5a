package aggregators

import (
	"alb-analytics/internal/shared/metrics"
)

const (
	outcomeCounted     = "counted"
	outcomeOutOfWindow = "out_of_window"
	outcomeExcluded    = "excluded"
)

// metricRecordsTotal counts parsed log records by what the aggregator did with them.
//
//   - counted: inside the window and added to a report key
//   - out_of_window: request time not strictly inside the window
//   - excluded: noise traffic (content/corpus)
var (
	metricRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
		[]string{"outcome"},
	)

	metricAggregationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "aggregations_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
