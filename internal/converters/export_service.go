package converters

import (
	"context"
	"io"

	"alb-analytics/internal/events"
	"alb-analytics/internal/ingestors"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/metrics"
	"alb-analytics/internal/shared/svcerrors"
	"alb-analytics/internal/stores"
	"alb-analytics/internal/streams"
)

// ExportKind names an export format.
type ExportKind string

const (
	ExportMerged ExportKind = "merged"
	ExportCSV    ExportKind = "csv"
)

// ExportResult describes a written export.
type ExportResult struct {
	ExportKey string `json:"exportKey"`
	Objects   int    `json:"objects"`
	Bytes     int64  `json:"bytes"`

	// Line counters are only set for ExportCSV.
	Lines     int64 `json:"lines"`
	Converted int64 `json:"converted"`
	Skipped   int64 `json:"skipped"`
}

//go:generate mockgen -source=export_service.go -destination=./mocks/export_service_mock.go -package=mocks
type ExportService interface {
	// ExportKey returns where the kind export of req goes and whether it exists.
	ExportKey(ctx context.Context, kind ExportKind, req ingestors.IngestRequest) (string, bool, *svcerrors.ServiceError)
	// MergeLogs writes the decompressed logs of req.Window as one text file.
	MergeLogs(ctx context.Context, req ingestors.IngestRequest) (*ExportResult, *svcerrors.ServiceError)
	// LogsToCSV writes every parsable log line of req.Window as a CSV row.
	LogsToCSV(ctx context.Context, req ingestors.IngestRequest) (*ExportResult, *svcerrors.ServiceError)
}

type exportService struct {
	ingestionService ingestors.IngestionService
	logObjectStore   stores.LogObjectStore
	logExportStore   stores.LogExportStore
	converter        ALBCSVConverter
	observer         progress.Observer
}

func NewExportService(
	ingestionService ingestors.IngestionService,
	logObjectStore stores.LogObjectStore,
	logExportStore stores.LogExportStore,
	converter ALBCSVConverter,
	observer progress.Observer,
) ExportService {
	if observer == nil {
		observer = progress.Nop()
	}
	return &exportService{
		ingestionService: ingestionService,
		logObjectStore:   logObjectStore,
		logExportStore:   logExportStore,
		converter:        converter,
		observer:         observer,
	}
}

func (s *exportService) ExportKey(ctx context.Context, kind ExportKind, req ingestors.IngestRequest) (string, bool, *svcerrors.ServiceError) {
	key := s.key(kind, req)
	exists, err := s.logExportStore.Exists(ctx, key)
	if err != nil {
		return "", false, errInternalExportReadFailed(err)
	}
	return key, exists, nil
}

func (s *exportService) key(kind ExportKind, req ingestors.IngestRequest) string {
	if kind == ExportCSV {
		return s.logExportStore.CSVKey(req.Window, req.Selection)
	}
	return s.logExportStore.MergedKey(req.Window)
}

func (s *exportService) MergeLogs(ctx context.Context, req ingestors.IngestRequest) (*ExportResult, *svcerrors.ServiceError) {
	return s.export(ctx, ExportMerged, req, func(stream io.Reader, key string) (*ExportResult, error) {
		size, err := s.logExportStore.Put(ctx, key, stream)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Bytes: size}, nil
	})
}

func (s *exportService) LogsToCSV(ctx context.Context, req ingestors.IngestRequest) (*ExportResult, *svcerrors.ServiceError) {
	tracker := progress.NewTracker(s.observer, progress.RunID(ctx), events.StageConvert, 0)

	return s.export(ctx, ExportCSV, req, func(stream io.Reader, key string) (*ExportResult, error) {
		pr, pw := io.Pipe()
		type outcome struct {
			stats *ConvertStats
			err   error
		}
		done := make(chan outcome, 1)

		go func() {
			stats, err := s.converter.Convert(stream, pw, func() { tracker.Add(1) })
			_ = pw.CloseWithError(err)
			done <- outcome{stats: stats, err: err}
		}()

		size, putErr := s.logExportStore.Put(ctx, key, pr)
		_ = pr.CloseWithError(putErr)
		converted := <-done

		if converted.err != nil {
			return nil, converted.err
		}
		if putErr != nil {
			return nil, putErr
		}
		return &ExportResult{
			Bytes:     size,
			Lines:     converted.stats.Lines,
			Converted: converted.stats.Converted,
			Skipped:   converted.stats.Skipped,
		}, nil
	})
}

// export ingests req, then hands the decompressed stream to write.
func (s *exportService) export(
	ctx context.Context,
	kind ExportKind,
	req ingestors.IngestRequest,
	write func(stream io.Reader, key string) (*ExportResult, error),
) (*ExportResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Info().Str(loggers.FieldWindow, req.Window.String()).Msgf("started %s export", kind)

	ingested, svcErr := s.ingestionService.Ingest(ctx, req)
	if svcErr != nil {
		metricExportsTotal.WithLabelValues(string(kind), svcErr.Code).Inc()
		return nil, svcErr
	}

	stage := events.StageDecompress
	if kind == ExportMerged {
		stage = events.StageMerge
	}
	tracker := progress.NewTracker(s.observer, progress.RunID(ctx), stage, int64(len(ingested.Keys)))
	stream := streams.NewDecompressedStream(ctx, s.logObjectStore, ingested.Keys, tracker)
	defer stream.Close()

	key := s.key(kind, req)
	result, err := write(stream, key)
	if err != nil {
		svcErr := errInternalExportWriteFailed(err)
		metricExportsTotal.WithLabelValues(string(kind), svcErr.Code).Inc()
		return nil, svcErr
	}
	result.ExportKey = key
	result.Objects = len(ingested.Keys)

	metricExportsTotal.WithLabelValues(string(kind), metrics.ValueNoError).Inc()
	logger.Info().
		Str(loggers.FieldReportKey, key).
		Int("objects", result.Objects).
		Int64("bytes", result.Bytes).
		Int64("skipped_lines", result.Skipped).
		Msgf("wrote %s export", kind)

	return result, nil
}
