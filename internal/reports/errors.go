package reports

import (
	"fmt"

	"alb-analytics/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeInvalidWindow          = "RPT_1000"
	codeNoLoadBalancerSelected = "RPT_1001"
	codeReportAlreadyExists    = "RPT_1002"

	codeInternalReportWriteFailed = "RPT_9000"
	codeInternalReportReadFailed  = "RPT_9001"
)

func errInvalidWindow(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidWindow, cause.Error(), cause)
}

func errNoLoadBalancerSelected() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoLoadBalancerSelected, "at least one of external or internal must be selected", nil)
}

func errReportAlreadyExists(key string) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, fmt.Sprintf("%s already exists", key), nil)
}

// errInternalReportWriteFailed returns an error when the report file cannot be written.
func errInternalReportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportWriteFailed, fmt.Errorf("reportWriteFailed: %w", cause))
}

func errInternalReportReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportReadFailed, fmt.Errorf("reportReadFailed: %w", cause))
}
