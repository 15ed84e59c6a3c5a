package models

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

var ErrMalformedKey = errors.New("malformed log object key")

var captureSegmentPattern = regexp.MustCompile(`^\d{8}T\d{4}Z$`)

// LogObjectKey is a storage key of a compressed access log object, e.g.
//
//	AWSLogs/123/elasticloadbalancing/ap-northeast-1/2023/05/01/123_elasticloadbalancing_ap-northeast-1_app.api-prod-elb.abc_20230501T1205Z_10.0.0.1_xyz.log.gz
type LogObjectKey string

// CapturedAt parses the capture timestamp from the first `_YYYYMMDDTHHMMZ_`
// segment of the key's base name.
func (k LogObjectKey) CapturedAt() (time.Time, error) {
	for _, segment := range strings.Split(k.BaseName(), "_") {
		if !captureSegmentPattern.MatchString(segment) {
			continue
		}
		t, err := time.Parse(CaptureLayout, segment)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w %q: %w", ErrMalformedKey, string(k), err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w %q: no capture timestamp segment", ErrMalformedKey, string(k))
}

// BaseName is the last path element of the key.
func (k LogObjectKey) BaseName() string {
	return path.Base(string(k))
}

func (k LogObjectKey) String() string { return string(k) }
