package domain

const (
	PeriodMS   = 120000 // one observation period, in milliseconds
	Periods    = 60     // periods tracked, a two hour window
	BucketSize = 6      // periods merged into one chart bar

	Buckets         = (Periods + BucketSize - 1) / BucketSize
	HistogramDigits = (Periods + 3) / 4

	// ActiveWindowMS is how recently a participant must have been seen to count as active.
	ActiveWindowMS = Periods * PeriodMS
)

// ActivityRecord is the per-puzzle activity payload served to clients.
type ActivityRecord struct {
	ChannelCount       int
	ActiveParticipants []string
	Histogram          string // hex, HistogramDigits long
	LastActiveAt       int64  // unix ms, <= 0 means never
}

type Summary struct {
	Buckets        []int // nil when there is nothing to chart
	LastActiveText string
}

// Summarize computes what a client renders next to a puzzle: the bucketed
// sparkline and the "time since last activity" label. The label is always
// filled in, even when the histogram cannot be decoded.
func Summarize(rec ActivityRecord, now int64) (Summary, error) {
	var s Summary

	if rec.LastActiveAt <= 0 {
		s.LastActiveText = "never"
	} else {
		elapsed := now - rec.LastActiveAt
		if elapsed < 0 {
			elapsed = 0
		}
		s.LastActiveText = FormatDelta(elapsed)
	}

	buckets, err := Bucketize(rec.Histogram, rec.LastActiveAt, now)
	if err != nil {
		return s, err
	}
	s.Buckets = buckets

	return s, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
