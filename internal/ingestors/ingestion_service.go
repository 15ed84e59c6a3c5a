package ingestors

import (
	"context"
	"errors"
	"sync/atomic"

	"alb-analytics/internal/events"
	"alb-analytics/internal/models"
	"alb-analytics/internal/objectfilters"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/metrics"
	"alb-analytics/internal/shared/objectstorages"
	"alb-analytics/internal/shared/svcerrors"
	"alb-analytics/internal/stores"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultConcurrency = 8
)

// IngestRequest names the logs a run needs locally.
type IngestRequest struct {
	Window        models.TimeWindow
	Selection     models.ALBSelection
	ForceDownload bool
}

// IngestResult represents the cached objects a run may read.
type IngestResult struct {
	// Keys are the selected objects in listing order.
	Keys       []models.LogObjectKey
	Listed     int
	Downloaded int
	Skipped    int
	Malformed  []models.LogObjectKey
}

// DownloadOptions bounds the load put on object storage.
type DownloadOptions struct {
	Concurrency int
	// RequestsPerSecond of zero or less disables pacing.
	RequestsPerSecond float64
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest lists the objects of every day the window touches, keeps those
	// captured inside it and makes sure each one is in the local cache.
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, *svcerrors.ServiceError)
}

type ingestionService struct {
	objectStorage  objectstorages.ObjectStorage
	objectFilter   objectfilters.ObjectFilter
	logObjectStore stores.LogObjectStore
	layout         models.ALBLayout
	options        DownloadOptions
	observer       progress.Observer
}

func NewIngestionService(
	objectStorage objectstorages.ObjectStorage,
	objectFilter objectfilters.ObjectFilter,
	logObjectStore stores.LogObjectStore,
	layout models.ALBLayout,
	options DownloadOptions,
	observer progress.Observer,
) IngestionService {
	if options.Concurrency <= 0 {
		options.Concurrency = defaultConcurrency
	}
	if observer == nil {
		observer = progress.Nop()
	}
	return &ingestionService{
		objectStorage:  objectStorage,
		objectFilter:   objectFilter,
		logObjectStore: logObjectStore,
		layout:         layout,
		options:        options,
		observer:       observer,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldWindow, req.Window.String()).Msgf("started ingesting log objects for %v", req.Selection.LoadBalancers())

	keys, svcErr := s.list(ctx, req)
	if svcErr != nil {
		metricIngestionsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	selection, err := s.objectFilter.Select(ctx, keys, req.Window)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		metricIngestionsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	result := &IngestResult{Keys: selection.Keys, Listed: len(keys), Malformed: selection.Malformed}
	downloaded, skipped, svcErr := s.download(ctx, selection.Keys, req.ForceDownload)
	result.Downloaded, result.Skipped = downloaded, skipped
	if svcErr != nil {
		metricIngestionsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricIngestionsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Int("listed", result.Listed).
		Int("selected", len(result.Keys)).
		Int("malformed", len(result.Malformed)).
		Int("downloaded", result.Downloaded).
		Int("skipped", result.Skipped).
		Msg("ingested log objects")

	return result, nil
}

// list returns every key under the day prefixes of the selected load balancers.
func (s *ingestionService) list(ctx context.Context, req IngestRequest) ([]models.LogObjectKey, *svcerrors.ServiceError) {
	var keys []models.LogObjectKey
	for _, lb := range req.Selection.LoadBalancers() {
		for _, day := range req.Window.Days() {
			prefix := s.layout.DayPrefix(day, lb)
			listed, err := s.objectStorage.List(ctx, prefix)
			if err != nil {
				return nil, errInternalObjectListFailed(prefix, err)
			}
			loggers.Ctx(ctx).Debug().Msgf("listed %d log objects under %s", len(listed), prefix)
			for _, key := range listed {
				keys = append(keys, models.LogObjectKey(key))
			}
		}
	}
	if len(keys) == 0 {
		return nil, errNoObjectsListed(req.Window)
	}
	return keys, nil
}

// download fetches the keys missing from the cache, at most
// options.Concurrency at a time.
func (s *ingestionService) download(ctx context.Context, keys []models.LogObjectKey, force bool) (int, int, *svcerrors.ServiceError) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if s.options.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.options.RequestsPerSecond), 1)
	}
	tracker := progress.NewTracker(s.observer, progress.RunID(ctx), events.StageDownload, int64(len(keys)))

	var downloaded, skipped atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.options.Concurrency)

	for _, key := range keys {
		group.Go(func() error {
			defer tracker.Add(1)

			fetched, err := s.fetchOne(groupCtx, limiter, key, force)
			if err != nil {
				metricObjectsDownloadedTotal.WithLabelValues(outcomeFailed).Inc()
				return err
			}
			if fetched {
				downloaded.Add(1)
				metricObjectsDownloadedTotal.WithLabelValues(outcomeDownloaded).Inc()
			} else {
				skipped.Add(1)
				metricObjectsDownloadedTotal.WithLabelValues(outcomeCached).Inc()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = errInternalObjectFetchFailed(err)
		}
		return int(downloaded.Load()), int(skipped.Load()), svcErr
	}
	return int(downloaded.Load()), int(skipped.Load()), nil
}

// fetchOne reports whether key was downloaded, false when the cached copy was kept.
func (s *ingestionService) fetchOne(ctx context.Context, limiter *rate.Limiter, key models.LogObjectKey, force bool) (bool, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldObjectKey, key.String()).Logger()

	if !force {
		cached, err := s.logObjectStore.Exists(ctx, key)
		if err != nil {
			return false, errInternalObjectCacheFailed(err)
		}
		if cached {
			logger.Debug().Msg("skipped cached log object")
			return false, nil
		}
	}

	if err := limiter.Wait(ctx); err != nil {
		return false, errInternalObjectFetchFailed(err)
	}

	body, err := s.objectStorage.Fetch(ctx, key.String())
	if err != nil {
		if errors.Is(err, objectstorages.ErrObjectNotFound) {
			return false, errObjectVanished(key, err)
		}
		return false, errInternalObjectFetchFailed(err)
	}
	defer body.Close()

	err = s.logObjectStore.Put(ctx, key, body, force)
	if err != nil {
		if errors.Is(err, stores.ErrLogObjectAlreadyExist) {
			logger.Debug().Msg("log object cached by a concurrent download")
			return false, nil
		}
		return false, errInternalObjectCacheFailed(err)
	}

	logger.Debug().Msg("downloaded log object")
	return true, nil
}
