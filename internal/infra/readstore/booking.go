package readstore

import (
	"context"
	"time"

	"salon-reserve/internal/domain/schedule"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/db"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const selectBookingView = `
SELECT b.id, b.customer_id, b.designer_id, d.name, b.start_time, b.duration_min,
       b.amount_cents, b.status, b.notes, b.payment_ref, b.reschedule_count,
       b.created_at, b.updated_at
FROM bookings b
LEFT JOIN designers d ON d.id = b.designer_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	var notes string
	err := r.db.QueryRow(ctx, selectBookingView, id).Scan(
		&v.ID, &v.CustomerID, &v.DesignerID, &v.DesignerName, &v.StartTime,
		&v.DurationMin, &v.AmountCents, &v.Status, &notes, &v.PaymentRef,
		&v.RescheduleCount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	if notes != "" {
		v.Notes = &notes
	}

	serviceIDs, err := r.serviceIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	v.ServiceIDs = serviceIDs

	return &v, nil
}

const selectBookingsByCustomer = `
SELECT b.id, b.designer_id, d.name, b.start_time, b.duration_min, b.amount_cents, b.status, b.created_at
FROM bookings b
LEFT JOIN designers d ON d.id = b.designer_id
WHERE b.customer_id = $1
ORDER BY b.start_time DESC`

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, selectBookingsByCustomer, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.DesignerID, &item.DesignerName, &item.StartTime,
			&item.DurationMin, &item.AmountCents, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

const selectBookingSnapshot = `
SELECT id, customer_id, designer_id, start_time, duration_min, amount_cents,
       status, notes, payment_ref, reschedule_count, created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var s shared.BookingSnapshot
	err := r.db.QueryRow(ctx, selectBookingSnapshot, id).Scan(
		&s.ID, &s.CustomerID, &s.DesignerID, &s.StartTime, &s.DurationMin,
		&s.AmountCents, &s.Status, &s.Notes, &s.PaymentRef, &s.RescheduleCount,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking snapshot", err)
	}

	serviceIDs, err := r.serviceIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	s.ServiceIDs = serviceIDs

	return &s, nil
}

const selectDayIntervals = `
SELECT start_time, duration_min
FROM bookings
WHERE designer_id = $1
  AND status <> 'cancelled'
  AND start_time >= $2 AND start_time < $3
  AND ($4::uuid IS NULL OR id <> $4)`

// DayIntervals returns the occupied intervals of the designer's day.
// forUpdate locks the matched rows so a concurrent creation or reschedule
// against the same day serializes on this read.
func (r *BookingReadStore) DayIntervals(ctx context.Context, designerID uuid.UUID, date time.Time, excludeBookingID *uuid.UUID, forUpdate bool) ([]schedule.Interval, error) {
	query := selectDayIntervals
	if forUpdate {
		query += "\nFOR UPDATE"
	}

	dayStart := date
	dayEnd := date.Add(24 * time.Hour)

	rows, err := r.db.Query(ctx, query, designerID, dayStart, dayEnd, excludeBookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read day intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var start time.Time
		var durationMin int
		if err := rows.Scan(&start, &durationMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval row", err)
		}
		intervals = append(intervals, schedule.NewInterval(start, time.Duration(durationMin)*time.Minute))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate interval rows", err)
	}
	return intervals, nil
}

const selectBookingServiceIDs = `
SELECT service_id FROM booking_services WHERE booking_id = $1 ORDER BY position`

func (r *BookingReadStore) serviceIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectBookingServiceIDs, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booking services", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service ids", err)
	}
	return ids, nil
}
