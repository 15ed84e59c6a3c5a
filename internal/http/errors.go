package http

import (
	"alb-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidRequestBody = "HTTP_1000"
)

func errInvalidRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, msg, cause)
}
