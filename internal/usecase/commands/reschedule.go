package commands

import (
	"context"
	"time"

	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type RescheduleResult struct {
	BookingID uuid.UUID
	Status    string
}

type RescheduleCommands interface {
	RescheduleBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, newStart time.Time) (*RescheduleResult, error)
}

type rescheduleUseCaseImpl struct {
	booking *bookingUseCaseImpl
}

func NewRescheduleUseCase(uow shared.UnitOfWork, cfg config.BookingConfig, clk clock.Clock) RescheduleCommands {
	return &rescheduleUseCaseImpl{
		booking: &bookingUseCaseImpl{uow: uow, cfg: cfg, clock: clk},
	}
}

// RescheduleBooking moves a booking to a new start. Precondition failures
// surface in a fixed order so callers always observe the same error for the
// same state, regardless of how many checks would fail.
func (uc *rescheduleUseCaseImpl) RescheduleBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, newStart time.Time) (*RescheduleResult, error) {
	var result RescheduleResult
	err := uc.booking.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		now := uc.booking.clock.Now()
		if err := entity.Reschedule(actor, newStart, now, uc.booking.cfg.RescheduleCutoff); err != nil {
			return err
		}

		designerID := entity.DesignerID()
		if designerID == nil {
			return errs.ErrDesignerNotFound
		}
		excludeID := entity.ID()
		if err := uc.booking.validateSlot(ctx, tx, *designerID, entity.StartTime(), entity.DurationMin(), &excludeID, now); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := createBookingNotification(ctx, tx, bookingID, "booking_rescheduled", now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = RescheduleResult{BookingID: entity.ID(), Status: entity.Status().String()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
