package http

import (
	"net/http"

	"alb-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records what a handler produced: the status, the service
// error of a failed request and the key of the report written.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError  *svcerrors.ServiceError
	reportKey string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError == nil {
		return metricsNoError
	}
	return w.svcError.Code
}

func (w *appResponseWriter) SetReportKey(key string) {
	w.reportKey = key
}

func (w *appResponseWriter) ReportKey() string {
	return w.reportKey
}
