package converters

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mileusna/useragent"
	"github.com/satyrius/gonx"
)

const (
	maxLineBytes = 1024 * 1024

	// albLogFormat is the leading part of an ALB access log entry. Fields
	// appended by newer log versions are ignored.
	albLogFormat = `$schema $timestamp $elb $client_port $target_port ` +
		`$request_processing_time $target_processing_time $response_processing_time ` +
		`$elb_status_code $target_status_code $received_bytes $sent_bytes ` +
		`"$request" "$user_agent" $ssl_cipher $ssl_protocol $target_group_arn ` +
		`"$trace_id" "$domain_name" "$chosen_cert_arn" $matched_rule_priority`

	fieldUserAgent        = "user_agent"
	columnUserAgentFamily = "user_agent_family"
)

// ALBFields are the access log fields exported, in column order.
var ALBFields = []string{
	"schema",
	"timestamp",
	"elb",
	"client_port",
	"target_port",
	"request_processing_time",
	"target_processing_time",
	"response_processing_time",
	"elb_status_code",
	"target_status_code",
	"received_bytes",
	"sent_bytes",
	"request",
	"user_agent",
	"ssl_cipher",
	"ssl_protocol",
	"target_group_arn",
	"trace_id",
	"domain_name",
	"chosen_cert_arn",
	"matched_rule_priority",
}

// ConvertStats counts the lines a conversion read.
type ConvertStats struct {
	Lines     int64
	Converted int64
	Skipped   int64
}

//go:generate mockgen -source=alb_csv_converter.go -destination=./mocks/alb_csv_converter_mock.go -package=mocks
type ALBCSVConverter interface {
	// Convert writes every access log line of r as a CSV row to w. Lines that
	// do not match the log format are skipped. onLine, when not nil, is called
	// after each line.
	Convert(r io.Reader, w io.Writer, onLine func()) (*ConvertStats, error)
}

type albCSVConverter struct {
	parser *gonx.Parser
}

func NewALBCSVConverter() ALBCSVConverter {
	return &albCSVConverter{parser: gonx.NewParser(albLogFormat)}
}

// Header is the header row written before the first record.
func Header() []string {
	header := make([]string, 0, len(ALBFields)+1)
	header = append(header, ALBFields...)
	return append(header, columnUserAgentFamily)
}

func (c *albCSVConverter) Convert(r io.Reader, w io.Writer, onLine func()) (*ConvertStats, error) {
	stats := &ConvertStats{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	writer := csv.NewWriter(w)

	if err := writer.Write(Header()); err != nil {
		return stats, fmt.Errorf("failed to write csv header: %w", err)
	}

	for scanner.Scan() {
		stats.Lines++
		if onLine != nil {
			onLine()
		}

		row, ok := c.row(scanner.Text())
		if !ok {
			stats.Skipped++
			metricLinesConvertedTotal.WithLabelValues(outcomeSkipped).Inc()
			continue
		}
		if err := writer.Write(row); err != nil {
			return stats, fmt.Errorf("failed to write csv row: %w", err)
		}
		stats.Converted++
		metricLinesConvertedTotal.WithLabelValues(outcomeConverted).Inc()
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read log lines: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("failed to flush csv: %w", err)
	}
	return stats, nil
}

func (c *albCSVConverter) row(line string) ([]string, bool) {
	if strings.TrimSpace(line) == "" {
		return nil, false
	}
	entry, err := c.parser.ParseString(line)
	if err != nil {
		return nil, false
	}

	row := make([]string, 0, len(ALBFields)+1)
	for _, name := range ALBFields {
		value, err := entry.Field(name)
		if err != nil {
			return nil, false
		}
		row = append(row, value)
	}
	agent, _ := entry.Field(fieldUserAgent)
	return append(row, userAgentFamily(agent)), true
}

// userAgentFamily returns the browser or client family of ua, or ua itself
// when it is not recognized.
func userAgentFamily(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
