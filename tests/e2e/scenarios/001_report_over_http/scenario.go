package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	accountID      = "710026814108"
	region         = "ap-northeast-1"
	externalLB     = "app.api-prod-elb"
	objectCount    = 12   // one object every 5 minutes, captured 18:05 .. 19:00
	linesPerObject = 1000 // lines per object, spread over the 5 minutes before capture
)

var (
	urls = []string{
		"https://api.example.com:443/api/users",
		"https://api.example.com:443/graph/v1.2/%d/posts",
		"https://api.example.com:443/unknown/path",
		"https://api.example.com:443/content/corpus/%d",
	}
)

// ### End - fixed configs

type createReportRequest struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Overwrite bool   `json:"overwrite"`
}

type reportResult struct {
	ReportKey    string `json:"reportKey"`
	Rows         int    `json:"rows"`
	Objects      int    `json:"objects"`
	Records      int64  `json:"records"`
	Counted      int64  `json:"counted"`
	Excluded     int64  `json:"excluded"`
	SkippedLines int64  `json:"skippedLines"`
}

// main runs the e2e scenario: 001_report_over_http
//
// This scenario seeds an S3 compatible bucket with gzip access log objects and
// asks a running albstat server for the report of one hour.
//
// What it tests:
//   - Listing per-day prefixes and filtering keys by capture time (the 19:00
//     object sits on the exclusive window end and must be skipped)
//   - Parallel downloads into the local cache
//   - Decompression, classification, url normalization and exclusion
//   - Conflict on an existing report and replacing it with overwrite
//
// Expected results:
//   - 11 objects are read, 11,000 records processed
//   - 2,750 records are excluded (content/corpus), 8,250 are counted
//   - The report has 3 rows: jarvis /api/users, pepper /graph/v1.2/<id>/posts
//     and the unclassified /unknown/path
//   - The second POST returns 409, the third (overwrite) returns 201
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080")            // Base URL of the albstat server
	endpointURL := getEnv("S3_ENDPOINT_URL", "http://localhost:9000") // S3 compatible endpoint the server reads from
	bucket := getEnv("S3_BUCKET", "prod-lbs-access-log")              // Bucket the server reads from
	dateUTC := "2025-12-28"                                           // Date of the generated logs (UTC)
	parallel := 4                                                     // Number of concurrent uploads

	fmt.Println("Starting e2e scenario: 001_report_over_http")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("S3_ENDPOINT_URL: %s\n", endpointURL)
	fmt.Printf("S3_BUCKET: %s\n", bucket)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Println()

	ctx := context.Background()
	client, err := newS3Client(ctx, endpointURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create s3 client: %v\n", err)
		os.Exit(1)
	}

	day, err := time.Parse("2006-01-02", dateUTC)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Invalid DATE_UTC: %v\n", err)
		os.Exit(1)
	}
	windowStart := day.Add(18 * time.Hour)

	// Upload all objects
	fmt.Printf("Uploading %d objects...\n", objectCount)
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error

	for i := 1; i <= objectCount; i++ {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(index int) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			capturedAt := windowStart.Add(time.Duration(index*5) * time.Minute)
			if err := uploadObject(ctx, client, bucket, index, capturedAt); err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("object %d: %w", index, err))
				mu.Unlock()
				return
			}
			fmt.Printf("Object %d uploaded (captured %s)\n", index, capturedAt.Format(time.RFC3339))
		}(i)
	}
	wg.Wait()

	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d uploads failed: %v\n", len(errors), errors)
		os.Exit(1)
	}
	fmt.Println()

	req := createReportRequest{
		Start: windowStart.Format("2006-01-02T15:04:05"),
		End:   windowStart.Add(time.Hour).Format("2006-01-02T15:04:05"),
	}

	// First run may hit a report left by a previous run
	req.Overwrite = true
	status, result, err := postReport(baseURL, req)
	if err != nil || status != http.StatusCreated {
		fmt.Fprintf(os.Stderr, "ERROR: First report failed (status %d): %v\n", status, err)
		os.Exit(1)
	}
	printResult(result)

	req.Overwrite = false
	status, _, err = postReport(baseURL, req)
	if err != nil || status != http.StatusConflict {
		fmt.Fprintf(os.Stderr, "ERROR: Expected 409 for existing report, got %d: %v\n", status, err)
		os.Exit(1)
	}
	fmt.Println("Existing report rejected (status 409)")

	wantObjects := objectCount - 1
	wantRecords := int64(wantObjects * linesPerObject)
	wantExcluded := wantRecords / int64(len(urls))
	if result.Rows != 3 || result.Objects != wantObjects || result.Records != wantRecords || result.Excluded != wantExcluded ||
		result.Counted != wantRecords-wantExcluded || result.SkippedLines != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: Unexpected report %+v\n", result)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func newS3Client(ctx context.Context, endpointURL string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			getEnv("AWS_ACCESS_KEY_ID", "minioadmin"), getEnv("AWS_SECRET_ACCESS_KEY", "minioadmin"), "")),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		o.UsePathStyle = true
	}), nil
}

func objectKey(index int, capturedAt time.Time) string {
	return fmt.Sprintf("AWSLogs/%s/elasticloadbalancing/%s/%s/%s_elasticloadbalancing_%s_%s.50dc6c495c0c9188_%s_10.0.0.%d_e2e%04d.log.gz",
		accountID, region, capturedAt.Format("2006/01/02"), accountID, region, externalLB,
		capturedAt.Format("20060102T1504Z"), index, index)
}

func generateObject(index int, capturedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	first := capturedAt.Add(-5*time.Minute + time.Millisecond)
	step := 5 * time.Minute / linesPerObject
	for i := 0; i < linesPerObject; i++ {
		url := urls[i%len(urls)]
		if strings.Contains(url, "%d") {
			url = fmt.Sprintf(url, index*linesPerObject+i)
		}
		ts := first.Add(time.Duration(i) * step).UTC().Format("2006-01-02T15:04:05.000000Z")
		line := fmt.Sprintf(`https %s app/api-prod-elb/50dc6c495c0c9188 192.168.131.39:2817 10.0.0.1:80 0.000 0.001 0.000 200 200 34 366 "GET %s HTTP/1.1" "curl/7.88.1" ECDHE-RSA-AES128-GCM-SHA256 TLSv1.2 arn:aws:elasticloadbalancing:%s:%s:targetgroup/t/73e2d6bc24d8a067 "Root=1-58337262-36d228ad5d99923122bbe354" "api.example.com" "-" 0`+"\n",
			ts, url, region, accountID)
		if _, err := w.Write([]byte(line)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func uploadObject(ctx context.Context, client *s3.Client, bucket string, index int, capturedAt time.Time) error {
	data, err := generateObject(index, capturedAt)
	if err != nil {
		return fmt.Errorf("failed to generate object: %w", err)
	}
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey(index, capturedAt)),
		Body:   bytes.NewReader(data),
	})
	return err
}

func postReport(baseURL string, body createReportRequest) (int, *reportResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/reports", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: 10 * time.Minute,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return resp.StatusCode, nil, nil
	}
	var result reportResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, &result, nil
}

func printResult(result *reportResult) {
	fmt.Println("=== Report ===")
	fmt.Printf("Report key: %s\n", result.ReportKey)
	fmt.Printf("Rows: %d\n", result.Rows)
	fmt.Printf("Objects: %d\n", result.Objects)
	fmt.Printf("Records: %d\n", result.Records)
	fmt.Printf("Counted: %d\n", result.Counted)
	fmt.Printf("Excluded: %d\n", result.Excluded)
	fmt.Printf("Skipped lines: %d\n", result.SkippedLines)
}
