package converters

import (
	"fmt"

	"alb-analytics/internal/shared/svcerrors"
)

// ExportService errors
const (
	codeInternalExportWriteFailed = "CNV_9000"
	codeInternalExportReadFailed  = "CNV_9001"
)

// errInternalExportWriteFailed returns an error when an export cannot be produced or stored.
func errInternalExportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportWriteFailed, fmt.Errorf("exportWriteFailed: %w", cause))
}

func errInternalExportReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportReadFailed, fmt.Errorf("exportReadFailed: %w", cause))
}
