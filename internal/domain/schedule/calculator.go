package schedule

import (
	"sort"
	"time"
)

// ComputeSlots returns the ordered start instants at which a booking of the
// given duration may legally begin for the day, excluding anything that
// overlaps an existing non-cancelled booking, starts in the past, or starts
// beyond the booking deadline.
//
// booked must contain only non-cancelled intervals for the same designer and
// date. The grid never emits a start whose end would exceed the operating
// window close.
func ComputeSlots(day DaySchedule, booked []Interval, duration time.Duration, now time.Time) []time.Time {
	if duration <= 0 || day.Granularity <= 0 {
		return nil
	}
	if day.Closed {
		return nil
	}
	if day.Deadline != nil && day.Date.After(*day.Deadline) {
		return nil
	}

	open := day.OpensAt()
	closeAt := day.ClosesAt()

	var slots []time.Time
	for start := open; !start.Add(duration).After(closeAt); start = start.Add(day.Granularity) {
		if start.Before(now) {
			continue
		}
		if day.Deadline != nil && start.After(*day.Deadline) {
			continue
		}
		if overlapsAny(NewInterval(start, duration), booked) {
			continue
		}
		slots = append(slots, start)
	}
	return slots
}

func overlapsAny(candidate Interval, booked []Interval) bool {
	for _, iv := range booked {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// MergeSlotSets unions per-designer slot sets for the designer-agnostic
// query mode: deduplicated and in ascending order.
func MergeSlotSets(sets ...[]time.Time) []time.Time {
	seen := make(map[int64]time.Time)
	for _, set := range sets {
		for _, t := range set {
			seen[t.UnixNano()] = t
		}
	}
	merged := make([]time.Time, 0, len(seen))
	for _, t := range seen {
		merged = append(merged, t)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Before(merged[j]) })
	return merged
}

// ContainsSlot reports whether start is a member of the slot set; used to
// validate requested start times on creation and reschedule.
func ContainsSlot(slots []time.Time, start time.Time) bool {
	for _, s := range slots {
		if s.Equal(start) {
			return true
		}
	}
	return false
}
