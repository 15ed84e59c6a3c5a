package reports

import (
	"alb-analytics/internal/shared/metrics"
)

var (
	metricReportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "reports_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricLastReportRows = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "last_report_rows",
		},
	)
)
