package stores

import (
	"context"
	"fmt"
	"io"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/filestorages"
)

// LogExportStore holds derived exports of raw logs: merged plain text and
// per-field CSV.
//
//go:generate mockgen -source=log_export_store.go -destination=./mocks/log_export_store_mock.go -package=mocks
type LogExportStore interface {
	MergedKey(window models.TimeWindow) string
	CSVKey(window models.TimeWindow, selection models.ALBSelection) string
	Exists(ctx context.Context, key string) (bool, error)
	// Put streams r into key and returns the bytes written. Nothing is visible
	// at key until r is fully read.
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
}

type logExportStore struct {
	fileStorage filestorages.FileStorage
}

func NewLogExportStore(fileStorage filestorages.FileStorage) LogExportStore {
	return &logExportStore{fileStorage: fileStorage}
}

func (s *logExportStore) MergedKey(window models.TimeWindow) string {
	return fmt.Sprintf("merged/merged_alb_logs_%s_%s.txt",
		window.Start().Format(models.WindowBoundLayout),
		window.End().Format(models.WindowBoundLayout))
}

func (s *logExportStore) CSVKey(window models.TimeWindow, selection models.ALBSelection) string {
	return fmt.Sprintf("csv/alb_logs_%s_%s_%s.csv",
		window.Start().Format(models.WindowBoundLayout),
		window.End().Format(models.WindowBoundLayout),
		selection.Suffix())
}

func (s *logExportStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.fileStorage.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check log export: %w", err)
	}
	return exists, nil
}

func (s *logExportStore) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	result, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return 0, fmt.Errorf("failed to put log export: %w", err)
	}
	return result.Size, nil
}
