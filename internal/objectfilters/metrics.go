package objectfilters

import (
	"alb-analytics/internal/shared/metrics"
)

const (
	outcomeSelected    = "selected"
	outcomeOutOfWindow = "out_of_window"
	outcomeMalformed   = "malformed"
)

var (
	metricObjectsSelectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubObjectFilter,
			Name:      "objects_total",
		},
		[]string{"outcome"},
	)
)
