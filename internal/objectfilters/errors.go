package objectfilters

import (
	"fmt"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/svcerrors"
)

const (
	codeNoObjectsInWindow = "OBJ_1000"

	codeInternalKeyParseFailed = "OBJ_9000"
)

// errNoObjectsInWindow returns an error when no object was captured inside the window.
func errNoObjectsInWindow(window models.TimeWindow, listed, malformed int) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoObjectsInWindow,
		fmt.Sprintf("no log objects in window %s (listed %d, malformed %d)", window, listed, malformed), nil)
}

// errInternalKeyParseFailed returns an error when a key fails for another reason than being malformed.
func errInternalKeyParseFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalKeyParseFailed, fmt.Errorf("keyParseFailed: %w", cause))
}
