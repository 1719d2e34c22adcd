package repository

import (
	"context"

	"salon-reserve/internal/domain/booking"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBooking = `
INSERT INTO bookings (
	id, customer_id, designer_id, start_time, duration_min, amount_cents,
	status, notes, payment_ref, reschedule_count, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
RETURNING id`

const insertBookingService = `
INSERT INTO booking_services (booking_id, service_id, position) VALUES ($1, $2, $3)`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertBooking,
		b.ID(), b.CustomerID(), b.DesignerID(), b.StartTime(), b.DurationMin(),
		b.Amount().Cents(), b.Status().String(), b.Notes().String(), b.PaymentRef(),
		b.RescheduleCount(), b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	for i, serviceID := range b.ServiceIDs() {
		if _, err := dbtx.Exec(ctx, insertBookingService, id, serviceID, i); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to attach booking service", err)
		}
	}

	return id, nil
}

const updateBooking = `
UPDATE bookings
SET start_time = $2, status = $3, payment_ref = $4, reschedule_count = $5, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx, updateBooking,
		b.ID(), b.StartTime(), b.Status().String(), b.PaymentRef(), b.RescheduleCount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
