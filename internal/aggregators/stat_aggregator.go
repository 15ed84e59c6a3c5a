package aggregators

import (
	"strings"

	"alb-analytics/internal/classifiers"
	"alb-analytics/internal/models"
	"alb-analytics/internal/normalizers"
)

// excludedURLFragment marks noise traffic that never counts towards a report.
const excludedURLFragment = "content/corpus"

// RecordSource is a lazy sequence of LogRecords in the style of bufio.Scanner.
type RecordSource interface {
	Scan() bool
	Record() models.LogRecord
	Err() error
	// Skipped is the number of malformed lines dropped by the source.
	Skipped() int64
}

//go:generate mockgen -source=stat_aggregator.go -destination=./mocks/stat_aggregator_mock.go -package=mocks
type StatAggregator interface {
	// Aggregate counts the records of source occurring strictly inside window
	// per (service, method, template url). Memory grows with distinct keys only.
	Aggregate(source RecordSource, window models.TimeWindow) (*models.StatReport, error)
}

type statAggregator struct {
	classifier classifiers.ServiceClassifier
	normalizer normalizers.URLNormalizer
}

func NewStatAggregator(classifier classifiers.ServiceClassifier, normalizer normalizers.URLNormalizer) StatAggregator {
	return &statAggregator{classifier: classifier, normalizer: normalizer}
}

func (a *statAggregator) Aggregate(source RecordSource, window models.TimeWindow) (*models.StatReport, error) {
	report := models.NewStatReport(window)

	for source.Scan() {
		record := source.Record()
		report.ProcessedRecords++

		if !window.Contains(record.OccurredAt) {
			report.OutOfWindow++
			continue
		}
		if strings.Contains(record.URL, excludedURLFragment) {
			report.Excluded++
			continue
		}

		report.Add(models.AggregationKey{
			Service: a.classifier.Classify(record.URL),
			Method:  record.Method,
			URL:     a.normalizer.Normalize(record.URL),
		})
	}
	report.SkippedLines = source.Skipped()

	if err := source.Err(); err != nil {
		return nil, err
	}
	return report, nil
}
