package ingestors

import (
	"fmt"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeNoObjectsListed = "ING_1000"
	codeObjectVanished  = "ING_1001"

	codeInternalObjectListFailed  = "ING_9000"
	codeInternalObjectFetchFailed = "ING_9001"
	codeInternalObjectCacheFailed = "ING_9002"
)

// errNoObjectsListed returns an error when object storage holds nothing for the window's days.
func errNoObjectsListed(window models.TimeWindow) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoObjectsListed,
		fmt.Sprintf("no files found in object storage for window %s", window), nil)
}

// errObjectVanished returns an error when a listed object is gone by the time it is fetched.
func errObjectVanished(key models.LogObjectKey, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeObjectVanished, fmt.Sprintf("log object %s no longer exists", key), cause)
}

func errInternalObjectListFailed(prefix string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalObjectListFailed, fmt.Errorf("objectListFailed %s: %w", prefix, cause))
}

func errInternalObjectFetchFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalObjectFetchFailed, fmt.Errorf("objectFetchFailed: %w", cause))
}

// errInternalObjectCacheFailed returns an error when the local cache cannot be read or written.
func errInternalObjectCacheFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalObjectCacheFailed, fmt.Errorf("objectCacheFailed: %w", cause))
}
