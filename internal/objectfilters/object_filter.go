package objectfilters

import (
	"context"
	"errors"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/loggers"
)

// Selection is the outcome of filtering a key listing by time window.
type Selection struct {
	// Keys are the selected keys in input order.
	Keys []models.LogObjectKey
	// Malformed are the keys skipped because no capture timestamp could be parsed.
	Malformed []models.LogObjectKey
}

//go:generate mockgen -source=object_filter.go -destination=./mocks/object_filter_mock.go -package=mocks
type ObjectFilter interface {
	// Select keeps the keys captured strictly inside window. An empty result is
	// reported as an OBJ_1000 not_found error alongside the selection.
	Select(ctx context.Context, keys []models.LogObjectKey, window models.TimeWindow) (*Selection, error)
}

type objectFilter struct{}

func NewObjectFilter() ObjectFilter {
	return &objectFilter{}
}

func (f *objectFilter) Select(ctx context.Context, keys []models.LogObjectKey, window models.TimeWindow) (*Selection, error) {
	logger := loggers.Ctx(ctx)
	selection := &Selection{}

	for _, key := range keys {
		capturedAt, err := key.CapturedAt()
		if err != nil {
			if errors.Is(err, models.ErrMalformedKey) {
				logger.Debug().Err(err).Str(loggers.FieldObjectKey, key.String()).Msg("skipped malformed object key")
				selection.Malformed = append(selection.Malformed, key)
				metricObjectsSelectedTotal.WithLabelValues(outcomeMalformed).Inc()
				continue
			}
			return nil, errInternalKeyParseFailed(err)
		}

		if !window.Contains(capturedAt) {
			metricObjectsSelectedTotal.WithLabelValues(outcomeOutOfWindow).Inc()
			continue
		}
		selection.Keys = append(selection.Keys, key)
		metricObjectsSelectedTotal.WithLabelValues(outcomeSelected).Inc()
	}

	logger.Debug().Msgf("selected %d of %d log objects in window %s (%d malformed)",
		len(selection.Keys), len(keys), window, len(selection.Malformed))

	if len(selection.Keys) == 0 {
		return selection, errNoObjectsInWindow(window, len(keys), len(selection.Malformed))
	}
	return selection, nil
}
