package converters

import (
	"alb-analytics/internal/shared/metrics"
)

const (
	outcomeConverted = "converted"
	outcomeSkipped   = "skipped"
)

var (
	metricExportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubConversion,
			Name:      "exports_total",
		},
		[]string{"kind", metrics.FieldErrorCode},
	)

	metricLinesConvertedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubConversion,
			Name:      "lines_converted_total",
		},
		[]string{"outcome"},
	)
)
