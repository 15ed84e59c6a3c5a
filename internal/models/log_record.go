package models

import "time"

// LogRecord is one request event extracted from an access log line.
type LogRecord struct {
	OccurredAt time.Time
	Method     string
	URL        string
}
