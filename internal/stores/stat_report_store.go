package stores

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/filestorages"
)

//go:generate mockgen -source=stat_report_store.go -destination=./mocks/stat_report_store_mock.go -package=mocks
type StatReportStore interface {
	// Key is where the report of window over selection is stored.
	Key(window models.TimeWindow, selection models.ALBSelection) string
	Exists(ctx context.Context, key string) (bool, error)
	// Put writes report as CSV, replacing any previous file at key in one
	// atomic rename.
	Put(ctx context.Context, key string, report *models.StatReport) error
}

type statReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewStatReportStore(fileStorage filestorages.FileStorage) StatReportStore {
	return &statReportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *statReportStore) Key(window models.TimeWindow, selection models.ALBSelection) string {
	return fmt.Sprintf("%s/stats_%s_%s_%s.csv", s.dir,
		window.Start().Format(models.WindowBoundLayout),
		window.End().Format(models.WindowBoundLayout),
		selection.Suffix())
}

func (s *statReportStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.fileStorage.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check stat report: %w", err)
	}
	return exists, nil
}

func (s *statReportStore) Put(ctx context.Context, key string, report *models.StatReport) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(models.ReportHeader); err != nil {
		return fmt.Errorf("failed to encode stat report: %w", err)
	}
	for _, entry := range report.Entries() {
		if err := writer.Write(entry.Row()); err != nil {
			return fmt.Errorf("failed to encode stat report: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to encode stat report: %w", err)
	}

	_, err := s.fileStorage.Put(ctx, key, &buf, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put stat report: %w", err)
	}
	return nil
}
