package ingestors

import (
	"alb-analytics/internal/shared/metrics"
)

const (
	outcomeDownloaded = "downloaded"
	outcomeCached     = "cached"
	outcomeFailed     = "failed"
)

var (
	metricIngestionsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "ingestions_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricObjectsDownloadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "objects_downloaded_total",
		},
		[]string{"outcome"},
	)
)
