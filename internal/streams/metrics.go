package streams

import (
	"alb-analytics/internal/shared/metrics"
)

const (
	outcomeDecompressed = "decompressed"
	outcomeFailed       = "failed"
)

var (
	metricObjectsDecompressedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "objects_decompressed_total",
		},
		[]string{"outcome"},
	)
)
