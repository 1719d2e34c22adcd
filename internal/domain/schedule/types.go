package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, duration time.Duration) Interval {
	return Interval{Start: start, End: start.Add(duration)}
}

// Overlaps reports whether two half-open intervals intersect:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// DaySchedule is the read-only scheduling sheet for one designer on one
// calendar date, assembled from the designer's configuration.
type DaySchedule struct {
	DesignerID  uuid.UUID
	Date        time.Time // midnight in the salon's location
	OpenMinute  int       // minutes after midnight
	CloseMinute int
	Granularity time.Duration
	Closed      bool
	// Deadline, when set, is the instant beyond which no new slot may start.
	Deadline *time.Time
}

func (d DaySchedule) OpensAt() time.Time {
	return d.Date.Add(time.Duration(d.OpenMinute) * time.Minute)
}

func (d DaySchedule) ClosesAt() time.Time {
	return d.Date.Add(time.Duration(d.CloseMinute) * time.Minute)
}
