package extractors

import (
	"bufio"
	"errors"
	"io"

	"alb-analytics/internal/models"
)

const maxLineBytes = 1024 * 1024

// RecordScanner streams LogRecords out of decompressed access log lines one
// line at a time. Malformed lines are skipped and counted. It is modeled on
// bufio.Scanner:
//
//	scanner := NewRecordScanner(r)
//	for scanner.Scan() {
//		record := scanner.Record()
//	}
//	if err := scanner.Err(); err != nil { ... }
type RecordScanner struct {
	lines   *bufio.Scanner
	record  models.LogRecord
	lineNo  int
	skipped int64
	onSkip  func(*MalformedLineError)
}

func NewRecordScanner(r io.Reader) *RecordScanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &RecordScanner{lines: lines}
}

// OnSkip registers a callback invoked for every skipped line.
func (s *RecordScanner) OnSkip(fn func(*MalformedLineError)) {
	s.onSkip = fn
}

// Scan advances to the next well-formed record. It returns false at the end
// of input or on a read error.
func (s *RecordScanner) Scan() bool {
	for s.lines.Scan() {
		s.lineNo++
		record, err := ParseLine(s.lines.Text())
		if err != nil {
			var malformed *MalformedLineError
			if errors.As(err, &malformed) {
				malformed.Line = s.lineNo
				if s.onSkip != nil {
					s.onSkip(malformed)
				}
			}
			s.skipped++
			metricLinesParsedTotal.WithLabelValues(outcomeSkipped).Inc()
			continue
		}

		s.record = record
		metricLinesParsedTotal.WithLabelValues(outcomeParsed).Inc()
		return true
	}
	return false
}

func (s *RecordScanner) Record() models.LogRecord { return s.record }

func (s *RecordScanner) Err() error { return s.lines.Err() }

// Skipped is the number of malformed lines seen so far.
func (s *RecordScanner) Skipped() int64 { return s.skipped }

// Lines is the number of lines read so far.
func (s *RecordScanner) Lines() int { return s.lineNo }
