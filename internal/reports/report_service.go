package reports

import (
	"context"
	"time"

	"alb-analytics/internal/aggregators"
	"alb-analytics/internal/events"
	"alb-analytics/internal/ingestors"
	"alb-analytics/internal/models"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/metrics"
	"alb-analytics/internal/shared/svcerrors"
	"alb-analytics/internal/stores"
	"alb-analytics/internal/streams"
)

// Request asks for the API call statistics of one window.
type Request struct {
	Window        models.TimeWindow
	Selection     models.ALBSelection
	ForceDownload bool
	// Overwrite replaces an existing report instead of failing with RPT_1002.
	Overwrite bool
}

// NewRequest parses the window bounds of a request. Bounds without an offset
// are read as UTC.
func NewRequest(start, end string, selection models.ALBSelection, forceDownload bool) (Request, *svcerrors.ServiceError) {
	window, err := models.ParseTimeWindow(start, end)
	if err != nil {
		return Request{}, errInvalidWindow(err)
	}
	if len(selection.LoadBalancers()) == 0 {
		return Request{}, errNoLoadBalancerSelected()
	}
	return Request{Window: window, Selection: selection, ForceDownload: forceDownload}, nil
}

// Result describes a written report.
type Result struct {
	ReportKey string `json:"reportKey"`
	Rows      int    `json:"rows"`

	Objects       int                   `json:"objects"`
	Downloaded    int                   `json:"downloaded"`
	Cached        int                   `json:"cached"`
	MalformedKeys []models.LogObjectKey `json:"malformedKeys"`

	Records      int64 `json:"records"`
	Counted      int64 `json:"counted"`
	OutOfWindow  int64 `json:"outOfWindow"`
	Excluded     int64 `json:"excluded"`
	SkippedLines int64 `json:"skippedLines"`

	Elapsed time.Duration `json:"elapsedNanos"`
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// ReportKey returns where the report of req is written and whether a report
	// is already there.
	ReportKey(ctx context.Context, req Request) (string, bool, *svcerrors.ServiceError)
	// StatAPICalls downloads the logs of req.Window, counts requests per
	// (service, method, url) and writes the report.
	StatAPICalls(ctx context.Context, req Request) (*Result, *svcerrors.ServiceError)
}

type reportService struct {
	ingestionService   ingestors.IngestionService
	aggregationService aggregators.AggregationService
	logObjectStore     stores.LogObjectStore
	statReportStore    stores.StatReportStore
	observer           progress.Observer
}

func NewReportService(
	ingestionService ingestors.IngestionService,
	aggregationService aggregators.AggregationService,
	logObjectStore stores.LogObjectStore,
	statReportStore stores.StatReportStore,
	observer progress.Observer,
) ReportService {
	if observer == nil {
		observer = progress.Nop()
	}
	return &reportService{
		ingestionService:   ingestionService,
		aggregationService: aggregationService,
		logObjectStore:     logObjectStore,
		statReportStore:    statReportStore,
		observer:           observer,
	}
}

func (s *reportService) ReportKey(ctx context.Context, req Request) (string, bool, *svcerrors.ServiceError) {
	key := s.statReportStore.Key(req.Window, req.Selection)
	exists, err := s.statReportStore.Exists(ctx, key)
	if err != nil {
		return "", false, errInternalReportReadFailed(err)
	}
	return key, exists, nil
}

func (s *reportService) StatAPICalls(ctx context.Context, req Request) (*Result, *svcerrors.ServiceError) {
	startedAt := time.Now()
	logger := loggers.Ctx(ctx)
	logger.Info().
		Str(loggers.FieldWindow, req.Window.String()).
		Bool("external", req.Selection.External).
		Bool("internal", req.Selection.Internal).
		Bool("force_download", req.ForceDownload).
		Msg("started stat api calls")

	result, svcErr := s.statAPICalls(ctx, req)
	if svcErr != nil {
		metricReportsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	result.Elapsed = time.Since(startedAt)

	metricReportsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricLastReportRows.Set(float64(result.Rows))
	logger.Info().
		Str(loggers.FieldReportKey, result.ReportKey).
		Int("rows", result.Rows).
		Int64("skipped_lines", result.SkippedLines).
		Int("malformed_keys", len(result.MalformedKeys)).
		Dur("elapsed", result.Elapsed).
		Msg("wrote stat report")

	return result, nil
}

func (s *reportService) statAPICalls(ctx context.Context, req Request) (*Result, *svcerrors.ServiceError) {
	if !req.Overwrite {
		key, exists, svcErr := s.ReportKey(ctx, req)
		if svcErr != nil {
			return nil, svcErr
		}
		if exists {
			return nil, errReportAlreadyExists(key)
		}
	}

	ingested, svcErr := s.ingestionService.Ingest(ctx, ingestors.IngestRequest{
		Window:        req.Window,
		Selection:     req.Selection,
		ForceDownload: req.ForceDownload,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	tracker := progress.NewTracker(s.observer, progress.RunID(ctx), events.StageDecompress, int64(len(ingested.Keys)))
	stream := streams.NewDecompressedStream(ctx, s.logObjectStore, ingested.Keys, tracker)
	defer stream.Close()

	report, svcErr := s.aggregationService.Aggregate(ctx, stream, req.Window)
	if svcErr != nil {
		return nil, svcErr
	}

	key := s.statReportStore.Key(req.Window, req.Selection)
	if err := s.statReportStore.Put(ctx, key, report); err != nil {
		return nil, errInternalReportWriteFailed(err)
	}

	return &Result{
		ReportKey:     key,
		Rows:          len(report.Counts),
		Objects:       len(ingested.Keys),
		Downloaded:    ingested.Downloaded,
		Cached:        ingested.Skipped,
		MalformedKeys: ingested.Malformed,
		Records:       report.ProcessedRecords,
		Counted:       report.Total(),
		OutOfWindow:   report.OutOfWindow,
		Excluded:      report.Excluded,
		SkippedLines:  report.SkippedLines,
	}, nil
}
