package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
// Counters only ever increase; the struct is owned by a single Run call.
type RunStats struct {
	Total     int
	Current   int
	Converted int
	Renamed   int
	Skipped   int
	Failed    int
	Deleted   int // Review-phase deletions.

	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceSaved returns the byte difference between conversion inputs and
// outputs. Positive means the GIFs are smaller than their sources.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}
