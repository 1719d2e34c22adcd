package shared

import (
	"context"
	"time"

	"salon-reserve/internal/domain/booking"
	"salon-reserve/internal/domain/schedule"
	"salon-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Passes() PassRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal read operations the write side needs. When
// obtained from a Tx they run inside that transaction, so the ForUpdate
// variants acquire row locks that serialize concurrent writers.
type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// DayScheduleForUpdate locks the designer row, serializing concurrent
	// writers against the same designer before they check overlaps.
	DayScheduleForUpdate(ctx context.Context, designerID uuid.UUID, date time.Time) (*schedule.DaySchedule, error)
	// DesignerDayIntervalsForUpdate locks and returns the non-cancelled
	// booking intervals of the designer's day; the overlap re-check and the
	// subsequent insert/update observe a stable view of the day.
	DesignerDayIntervalsForUpdate(ctx context.Context, designerID uuid.UUID, date time.Time, excludeBookingID *uuid.UUID) ([]schedule.Interval, error)
	ServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*ServiceSnapshot, error)
	ActiveDesignersForServices(ctx context.Context, serviceIDs []uuid.UUID) ([]uuid.UUID, error)
	ActivePassForUpdate(ctx context.Context, id uuid.UUID) (*ActivePassSnapshot, error)
	ContentItemByID(ctx context.Context, id uuid.UUID) (*ContentItemSnapshot, error)
	MonthlyUsage(ctx context.Context, activePassID, contentItemID uuid.UUID, month string) (int, error)
	ConsumptionByBookingID(ctx context.Context, bookingID uuid.UUID) (*ConsumptionRecord, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
}

type PassRepository interface {
	SetRemaining(ctx context.Context, dbtx db.DBTX, activePassID, contentItemID uuid.UUID, remaining int) error
	AddMonthlyUsage(ctx context.Context, dbtx db.DBTX, activePassID, contentItemID uuid.UUID, month string, delta int) error
	RecordConsumption(ctx context.Context, dbtx db.DBTX, rec *ConsumptionRecord) error
	MarkConsumptionRefunded(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request; false means another
	// request holds it and the caller must consult the stored record.
	TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
