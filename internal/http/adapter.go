package http

import (
	"encoding/json"
	"net/http"

	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/svcerrors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter turns an AppHttpHandler into a http.HandlerFunc. Errors
// that are not ServiceErrors are reported as SYS_9001.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		logServiceError(r, svcErr)
		writeErrorResponse(w, r, svcErr)
	}
}

func logServiceError(r *http.Request, svcErr *svcerrors.ServiceError) {
	logger := loggers.Ctx(r.Context())
	switch {
	case svcErr.IsInternalError():
		logger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("report request failed")
	case svcErr.IsNotFound():
		// an empty window is an expected outcome for a report request
		logger.Info().
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg(svcErr.Message)
	default:
		logger.Debug().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg(svcErr.Message)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(svcErr.HttpStatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}
