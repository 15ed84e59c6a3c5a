package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"alb-analytics/internal/models"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/reports"
	"alb-analytics/internal/shared/validators"
)

const maxRequestBytes = 64 * 1024

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// CreateReportRequest is the body of POST /reports. External defaults to true
// when omitted.
type CreateReportRequest struct {
	Start         string `json:"start" validate:"required"`
	End           string `json:"end" validate:"required"`
	External      *bool  `json:"external"`
	Internal      bool   `json:"internal"`
	ForceDownload bool   `json:"forceDownload"`
	Overwrite     bool   `json:"overwrite"`
}

type reportHandler struct {
	reportService reports.ReportService
	validate      *validators.Validate
}

func NewReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &reportHandler{
		reportService: reportService,
		validate:      validators.New(),
	}
}

// Handle processes POST /reports requests. The report is built synchronously
// and its summary returned.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	body, err := h.decode(r)
	if err != nil {
		return err
	}

	external := true
	if body.External != nil {
		external = *body.External
	}
	req, svcErr := reports.NewRequest(body.Start, body.End, models.ALBSelection{External: external, Internal: body.Internal}, body.ForceDownload)
	if svcErr != nil {
		return svcErr
	}
	req.Overwrite = body.Overwrite

	ctx := progress.WithRunID(r.Context(), requestID(r))
	result, svcErr := h.reportService.StatAPICalls(ctx, req)
	if svcErr != nil {
		return svcErr
	}

	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetReportKey(result.ReportKey)
	}
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(result)
}

func (h *reportHandler) decode(r *http.Request) (*CreateReportRequest, error) {
	if r.Body == nil {
		return nil, errInvalidRequestBody("empty request body", nil)
	}
	if ct := contentType(r); ct != "" && !strings.Contains(strings.ToLower(ct), "json") {
		return nil, errInvalidRequestBody(fmt.Sprintf("unsupported content type: %q", ct), nil)
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()

	var body CreateReportRequest
	if err := decoder.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errInvalidRequestBody("empty request body", err)
		}
		return nil, errInvalidRequestBody("invalid json", err)
	}

	if err := h.validate.Struct(&body); err != nil {
		var fields []string
		var ve validators.ValidationErrors
		if errors.As(err, &ve) {
			for _, e := range ve {
				fields = append(fields, fmt.Sprintf("%s (%s)", lowerFirst(e.Field()), e.Tag()))
			}
		}
		return nil, errInvalidRequestBody("invalid fields: "+strings.Join(fields, ", "), err)
	}
	return &body, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
