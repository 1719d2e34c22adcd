package readstore

import (
	"context"
	"time"

	"salon-reserve/internal/domain/schedule"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/db"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db          db.DBTX
	granularity time.Duration
}

func NewScheduleReadStore(dbtx db.DBTX, granularity time.Duration) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx, granularity: granularity}
}

const selectDesignerDay = `
SELECT d.open_minute, d.close_minute, d.booking_deadline,
       EXISTS (
           SELECT 1 FROM designer_closed_dates c
           WHERE c.designer_id = d.id AND c.closed_on = $2::date
       ) AS closed
FROM designers d
WHERE d.id = $1 AND d.active = true`

func (r *ScheduleReadStore) DayScheduleFor(ctx context.Context, designerID uuid.UUID, date time.Time) (*schedule.DaySchedule, error) {
	day := schedule.DaySchedule{
		DesignerID:  designerID,
		Date:        date,
		Granularity: r.granularity,
	}
	err := r.db.QueryRow(ctx, selectDesignerDay, designerID, date).Scan(
		&day.OpenMinute, &day.CloseMinute, &day.Deadline, &day.Closed,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, errs.ErrDesignerNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read designer day", err)
	}
	return &day, nil
}

// DayScheduleForUpdate locks the designer row while reading the day. Writers
// validating a slot serialize here even when the day has no bookings yet.
func (r *ScheduleReadStore) DayScheduleForUpdate(ctx context.Context, designerID uuid.UUID, date time.Time) (*schedule.DaySchedule, error) {
	day := schedule.DaySchedule{
		DesignerID:  designerID,
		Date:        date,
		Granularity: r.granularity,
	}
	err := r.db.QueryRow(ctx, selectDesignerDay+"\nFOR UPDATE OF d", designerID, date).Scan(
		&day.OpenMinute, &day.CloseMinute, &day.Deadline, &day.Closed,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, errs.ErrDesignerNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock designer day", err)
	}
	return &day, nil
}

func (r *ScheduleReadStore) NonCancelledIntervals(ctx context.Context, designerID uuid.UUID, date time.Time) ([]schedule.Interval, error) {
	bookings := NewBookingReadStore(r.db)
	return bookings.DayIntervals(ctx, designerID, date, nil, false)
}

const selectDesignersForServices = `
SELECT ds.designer_id
FROM designer_services ds
JOIN designers d ON d.id = ds.designer_id AND d.active = true
WHERE ds.service_id = ANY($1)
GROUP BY ds.designer_id
HAVING COUNT(DISTINCT ds.service_id) = $2
ORDER BY ds.designer_id`

// ActiveDesignersForServices returns the active designers able to perform
// every service in the set.
func (r *ScheduleReadStore) ActiveDesignersForServices(ctx context.Context, serviceIDs []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectDesignersForServices, serviceIDs, len(serviceIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find designers for services", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan designer id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate designer ids", err)
	}
	return ids, nil
}
