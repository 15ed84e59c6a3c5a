package models

import (
	"sort"
	"strconv"
)

// ReportHeader is the header row of a stat report.
var ReportHeader = []string{"service", "method", "url", "count"}

// AggregationKey groups requests. An empty Service means unclassified.
type AggregationKey struct {
	Service string
	Method  string
	URL     string
}

type StatEntry struct {
	Key   AggregationKey
	Count int64
}

// Row renders the entry as a report row.
func (e StatEntry) Row() []string {
	return []string{e.Key.Service, e.Key.Method, e.Key.URL, strconv.FormatInt(e.Count, 10)}
}

// StatReport holds exact request counts per AggregationKey plus the counters of
// everything that did not contribute.
type StatReport struct {
	Window TimeWindow
	Counts map[AggregationKey]int64

	ProcessedRecords int64
	OutOfWindow      int64
	Excluded         int64
	SkippedLines     int64
}

func NewStatReport(window TimeWindow) *StatReport {
	return &StatReport{
		Window: window,
		Counts: make(map[AggregationKey]int64),
	}
}

func (r *StatReport) Add(key AggregationKey) {
	r.Counts[key]++
}

// Entries returns every entry sorted by service, method, then url.
func (r *StatReport) Entries() []StatEntry {
	entries := make([]StatEntry, 0, len(r.Counts))
	for k, c := range r.Counts {
		entries = append(entries, StatEntry{Key: k, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Key, entries[j].Key
		if a.Service != b.Service {
			return a.Service < b.Service
		}
		if a.Method != b.Method {
			return a.Method < b.Method
		}
		return a.URL < b.URL
	})
	return entries
}

// Total is the sum of all counts.
func (r *StatReport) Total() int64 {
	var total int64
	for _, c := range r.Counts {
		total += c
	}
	return total
}
