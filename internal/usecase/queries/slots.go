package queries

import (
	"context"
	"time"

	"salon-reserve/internal/domain/schedule"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

type ScheduleReadStore interface {
	DayScheduleFor(ctx context.Context, designerID uuid.UUID, date time.Time) (*schedule.DaySchedule, error)
	NonCancelledIntervals(ctx context.Context, designerID uuid.UUID, date time.Time) ([]schedule.Interval, error)
	ActiveDesignersForServices(ctx context.Context, serviceIDs []uuid.UUID) ([]uuid.UUID, error)
}

type ServiceCatalog interface {
	// TotalDurationMin sums the durations of the given services; it fails
	// when any id is unknown or inactive.
	TotalDurationMin(ctx context.Context, serviceIDs []uuid.UUID) (int, error)
}

type SlotQueries interface {
	// AvailableSlots computes the bookable start instants for the designer,
	// date and service set. A nil designerID requests the designer-agnostic
	// union over every active designer able to perform the services.
	AvailableSlots(ctx context.Context, designerID *uuid.UUID, date time.Time, serviceIDs []uuid.UUID) ([]time.Time, error)
}

type slotQueriesImpl struct {
	schedules ScheduleReadStore
	catalog   ServiceCatalog
	clock     clock.Clock
}

func NewSlotQueries(schedules ScheduleReadStore, catalog ServiceCatalog, clk clock.Clock) SlotQueries {
	return &slotQueriesImpl{schedules: schedules, catalog: catalog, clock: clk}
}

func (q *slotQueriesImpl) AvailableSlots(ctx context.Context, designerID *uuid.UUID, date time.Time, serviceIDs []uuid.UUID) ([]time.Time, error) {
	if len(serviceIDs) == 0 {
		return nil, errs.ErrEmptyServiceSet
	}

	durationMin, err := q.catalog.TotalDurationMin(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	duration := time.Duration(durationMin) * time.Minute
	now := q.clock.Now()

	if designerID != nil {
		return q.designerSlots(ctx, *designerID, date, duration, now)
	}

	candidates, err := q.schedules.ActiveDesignersForServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	sets := make([][]time.Time, 0, len(candidates))
	for _, id := range candidates {
		slots, serr := q.designerSlots(ctx, id, date, duration, now)
		if serr != nil {
			return nil, serr
		}
		sets = append(sets, slots)
	}
	return schedule.MergeSlotSets(sets...), nil
}

func (q *slotQueriesImpl) designerSlots(ctx context.Context, designerID uuid.UUID, date time.Time, duration time.Duration, now time.Time) ([]time.Time, error) {
	day, err := q.schedules.DayScheduleFor(ctx, designerID, date)
	if err != nil {
		return nil, err
	}
	booked, err := q.schedules.NonCancelledIntervals(ctx, designerID, date)
	if err != nil {
		return nil, err
	}
	return schedule.ComputeSlots(*day, booked, duration, now), nil
}
