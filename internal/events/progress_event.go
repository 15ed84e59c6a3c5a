package events

// Stage names a long running step of a run.
type Stage string

const (
	StageDownload   Stage = "download"
	StageDecompress Stage = "decompress"
	StageAnalyze    Stage = "analyze"
	StageMerge      Stage = "merge"
	StageConvert    Stage = "convert"
)

// ProgressEvent reports how far a stage has advanced. Total is zero when the
// amount of work is not known upfront, e.g. lines of a stream being read.
//
// Example JSON:
//
//	{
//	  "runId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "stage": "download",
//	  "count": 12,
//	  "total": 48
//	}
type ProgressEvent struct {
	RunID string `json:"runId"`
	Stage Stage  `json:"stage"`
	Count int64  `json:"count"`
	Total int64  `json:"total"`
}

// Done reports whether the event closes a stage with a known total.
func (e ProgressEvent) Done() bool {
	return e.Total > 0 && e.Count >= e.Total
}

// Percent is Count over Total in percent, or -1 when Total is unknown.
func (e ProgressEvent) Percent() float64 {
	if e.Total <= 0 {
		return -1
	}
	return float64(e.Count) * 100 / float64(e.Total)
}
