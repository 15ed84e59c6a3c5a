package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alb-analytics/internal/models"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/reports"
	reportmocks "alb-analytics/internal/reports/mocks"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReportRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(body))
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerRequestID, "req-1")
	return req
}

func TestReportHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportService := reportmocks.NewMockReportService(ctrl)
	handler := NewReportHandler(mockReportService)

	mockReportService.EXPECT().
		StatAPICalls(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req reports.Request) (*reports.Result, *svcerrors.ServiceError) {
			assert.Equal(t, "req-1", progress.RunID(ctx))
			assert.Equal(t, "2023-05-01T12:00:00_2023-05-01T12:30:00", req.Window.String())
			assert.Equal(t, models.ALBSelection{External: true, Internal: true}, req.Selection)
			assert.True(t, req.ForceDownload)
			assert.False(t, req.Overwrite)
			return &reports.Result{ReportKey: "reports/stats.csv", Rows: 3, SkippedLines: 1}, nil
		})

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newReportRequest(
		`{"start":"2023-05-01T12:00:00","end":"2023-05-01T12:30:00","internal":true,"forceDownload":true}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "reports/stats.csv", body["reportKey"])
	assert.Equal(t, float64(3), body["rows"])
	assert.Equal(t, float64(1), body["skippedLines"])
}

func TestReportHandler_Handle_ExplicitExternalFalse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockReportService := reportmocks.NewMockReportService(ctrl)
	handler := NewReportHandler(mockReportService)

	mockReportService.EXPECT().
		StatAPICalls(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req reports.Request) (*reports.Result, *svcerrors.ServiceError) {
			assert.Equal(t, models.ALBSelection{Internal: true}, req.Selection)
			assert.True(t, req.Overwrite)
			return &reports.Result{}, nil
		})

	err := handler.Handle(httptest.NewRecorder(), newReportRequest(
		`{"start":"2023-05-01","end":"2023-05-02","external":false,"internal":true,"overwrite":true}`))
	require.NoError(t, err)
}

func TestReportHandler_Handle_InvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		wantCode    string
	}{
		{name: "empty body", body: ``, wantCode: "HTTP_1000"},
		{name: "invalid json", body: `{start}`, wantCode: "HTTP_1000"},
		{name: "unknown field", body: `{"start":"2023-05-01","end":"2023-05-02","customer":"x"}`, wantCode: "HTTP_1000"},
		{name: "missing end", body: `{"start":"2023-05-01"}`, wantCode: "HTTP_1000"},
		{name: "wrong content type", body: `{}`, contentType: "text/csv", wantCode: "HTTP_1000"},
		{name: "start after end", body: `{"start":"2023-05-02","end":"2023-05-01"}`, wantCode: "RPT_1000"},
		{name: "no load balancer", body: `{"start":"2023-05-01","end":"2023-05-02","external":false}`, wantCode: "RPT_1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			handler := NewReportHandler(reportmocks.NewMockReportService(ctrl))

			req := newReportRequest(tt.body)
			if tt.contentType != "" {
				req.Header.Set(headerContentType, tt.contentType)
			}
			err := handler.Handle(httptest.NewRecorder(), req)

			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
		})
	}
}

func TestReportHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockReportService := reportmocks.NewMockReportService(ctrl)
	handler := NewReportHandler(mockReportService)

	expectedErr := svcerrors.NewNotFoundError("OBJ_1000", "no log objects in window", nil)
	mockReportService.EXPECT().StatAPICalls(gomock.Any(), gomock.Any()).Return(nil, expectedErr)

	err := handler.Handle(httptest.NewRecorder(), newReportRequest(`{"start":"2023-05-01","end":"2023-05-02"}`))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "OBJ_1000", svcErr.Code)
	assert.Equal(t, http.StatusNotFound, svcErr.HttpStatusCode)
}

func TestRouter_ReportsRoute(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockReportService := reportmocks.NewMockReportService(ctrl)
	mockReportService.EXPECT().StatAPICalls(gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewResourceConflictError("RPT_1002", "reports/x.csv already exists", nil))

	logger, err := loggers.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	router := NewRouter(mockReportService, logger)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, newReportRequest(`{"start":"2023-05-01","end":"2023-05-02"}`))

	assert.Equal(t, http.StatusConflict, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "RPT_1002", errorResponse.ErrorCode)
	assert.Equal(t, "req-1", errorResponse.RequestID)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alb_analytics_http_http_requests_total")
}
