package extractors

import (
	"fmt"
	"strings"
	"time"

	"alb-analytics/internal/models"
)

const (
	// TimestampLayout is the request timestamp layout of access log lines.
	TimestampLayout = "2006-01-02T15:04:05.999999999Z"

	fieldTimestamp = 1
	fieldMethod    = 12
	fieldURL       = 13
	minFields      = 14
)

// MalformedLineError reports a line that cannot produce a LogRecord.
type MalformedLineError struct {
	Line   int
	Reason string
	Cause  error
}

func (e *MalformedLineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed log line %d: %s: %v", e.Line, e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed log line %d: %s", e.Line, e.Reason)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Cause
}

// ParseLine extracts the request timestamp, method and url of one access log line.
// The request field is tokenized positionally, so the http version after the url
// and everything that follows it are ignored.
func ParseLine(line string) (models.LogRecord, error) {
	fields := strings.Fields(line)
	if len(fields) < minFields {
		return models.LogRecord{}, &MalformedLineError{
			Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields)),
		}
	}

	occurredAt, err := time.Parse(TimestampLayout, fields[fieldTimestamp])
	if err != nil {
		return models.LogRecord{}, &MalformedLineError{Reason: "invalid timestamp", Cause: err}
	}

	return models.LogRecord{
		OccurredAt: occurredAt,
		Method:     strings.Trim(fields[fieldMethod], `"`),
		URL:        fields[fieldURL],
	}, nil
}
