package aggregators

import (
	"context"
	"io"

	"alb-analytics/internal/events"
	"alb-analytics/internal/extractors"
	"alb-analytics/internal/models"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/metrics"
	"alb-analytics/internal/shared/svcerrors"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate parses the decompressed access log lines of r and counts them
	// into a StatReport for window.
	Aggregate(ctx context.Context, r io.Reader, window models.TimeWindow) (*models.StatReport, *svcerrors.ServiceError)
}

type aggregationService struct {
	statAggregator StatAggregator
	observer       progress.Observer
}

func NewAggregationService(statAggregator StatAggregator, observer progress.Observer) AggregationService {
	if observer == nil {
		observer = progress.Nop()
	}
	return &aggregationService{statAggregator: statAggregator, observer: observer}
}

func (s *aggregationService) Aggregate(ctx context.Context, r io.Reader, window models.TimeWindow) (*models.StatReport, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldWindow, window.String()).Msg("started aggregating log records")

	scanner := extractors.NewRecordScanner(r)
	scanner.OnSkip(func(err *extractors.MalformedLineError) {
		logger.Debug().Err(err).Msg("skipped malformed log line")
	})
	source := &trackedSource{
		RecordSource: scanner,
		tracker:      progress.NewTracker(s.observer, progress.RunID(ctx), events.StageAnalyze, 0),
	}

	report, err := s.statAggregator.Aggregate(source, window)
	if err != nil {
		svcErr := errInternalRecordStreamFailed(err)
		metricAggregationsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricRecordsTotal.WithLabelValues(outcomeCounted).Add(float64(report.Total()))
	metricRecordsTotal.WithLabelValues(outcomeOutOfWindow).Add(float64(report.OutOfWindow))
	metricRecordsTotal.WithLabelValues(outcomeExcluded).Add(float64(report.Excluded))
	metricAggregationsTotal.WithLabelValues(metrics.ValueNoError).Inc()

	logger.Info().
		Int64("records", report.ProcessedRecords).
		Int64("counted", report.Total()).
		Int64("out_of_window", report.OutOfWindow).
		Int64("excluded", report.Excluded).
		Int64("skipped_lines", report.SkippedLines).
		Int("keys", len(report.Counts)).
		Msg("aggregated log records")

	return report, nil
}

// trackedSource reports every record read to a progress tracker.
type trackedSource struct {
	RecordSource
	tracker *progress.Tracker
}

func (s *trackedSource) Scan() bool {
	if !s.RecordSource.Scan() {
		return false
	}
	s.tracker.Add(1)
	return true
}
