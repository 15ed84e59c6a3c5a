package aggregators

import (
	"fmt"

	"alb-analytics/internal/shared/svcerrors"
)

const (
	codeInternalRecordStreamFailed = "AGG_9000"
)

// errInternalRecordStreamFailed returns an error when reading the log record stream fails.
func errInternalRecordStreamFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordStreamFailed, fmt.Errorf("recordStreamFailed: %w", cause))
}
