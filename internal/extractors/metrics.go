package extractors

import (
	"alb-analytics/internal/shared/metrics"
)

const (
	outcomeParsed  = "parsed"
	outcomeSkipped = "skipped"
)

var (
	metricLinesParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "lines_total",
		},
		[]string{"outcome"},
	)
)
