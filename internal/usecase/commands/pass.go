package commands

import (
	"context"
	"time"

	"salon-reserve/internal/domain/pass"
	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConsumePassRequest struct {
	ActivePassID  uuid.UUID `json:"active_pass_id"`
	ContentItemID uuid.UUID `json:"content_item_id"`
	Quantity      int       `json:"quantity"`
	BookingID     uuid.UUID `json:"booking_id"`
}

type ConsumePassResult struct {
	Remaining int
}

type RefundPassResult struct {
	Remaining  int
	IsReplayed bool
}

type PassCommands interface {
	ConsumeEntitlement(ctx context.Context, req ConsumePassRequest, actor user.Actor) (*ConsumePassResult, error)
	RefundEntitlement(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*RefundPassResult, error)
}

type passUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPassUseCase(uow shared.UnitOfWork, clk clock.Clock) PassCommands {
	return &passUseCaseImpl{uow: uow, clock: clk}
}

// ConsumeEntitlement spends pass balance for a booking. The pass row is
// locked for the whole transaction, so two concurrent consumptions of the
// same pass serialize and the second observes the decremented balance.
func (uc *passUseCaseImpl) ConsumeEntitlement(ctx context.Context, req ConsumePassRequest, actor user.Actor) (*ConsumePassResult, error) {
	if req.Quantity <= 0 {
		return nil, errs.ErrValidation
	}

	var result ConsumePassResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := loadActivePassForUpdate(ctx, tx, req.ActivePassID)
		if err != nil {
			return err
		}
		if !actor.CanActOn(entity.CustomerID()) {
			return errs.ErrForbidden
		}

		item, err := tx.Reads().ContentItemByID(ctx, req.ContentItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPassNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if item.PassID != entity.PassID() {
			return errs.ErrPassNotFound
		}

		now := uc.clock.Now()
		month := monthOf(now)
		usedThisMonth, err := tx.Reads().MonthlyUsage(ctx, req.ActivePassID, req.ContentItemID, month.String())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		remaining, err := entity.Consume(req.ContentItemID, req.Quantity, usedThisMonth, item.MonthlyCap, now)
		if err != nil {
			return err
		}

		if err := tx.Passes().SetRemaining(ctx, tx.DB(), req.ActivePassID, req.ContentItemID, remaining); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrInsufficientBalance
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Passes().AddMonthlyUsage(ctx, tx.DB(), req.ActivePassID, req.ContentItemID, month.String(), req.Quantity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		rec := &shared.ConsumptionRecord{
			BookingID:     req.BookingID,
			ActivePassID:  req.ActivePassID,
			ContentItemID: req.ContentItemID,
			Quantity:      req.Quantity,
			CreatedAt:     now,
		}
		if err := tx.Passes().RecordConsumption(ctx, tx.DB(), rec); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateBooking
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = ConsumePassResult{Remaining: remaining}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RefundEntitlement restores the balance spent on a booking. Refunds are
// keyed by booking id: the first call restores, every later call is a
// no-op reporting the already-refunded state.
func (uc *passUseCaseImpl) RefundEntitlement(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*RefundPassResult, error) {
	var result RefundPassResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Reads().ConsumptionByBookingID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPassNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity, err := loadActivePassForUpdate(ctx, tx, rec.ActivePassID)
		if err != nil {
			return err
		}
		if !actor.CanActOn(entity.CustomerID()) {
			return errs.ErrForbidden
		}

		if rec.Refunded {
			result = RefundPassResult{Remaining: entity.Remaining(rec.ContentItemID), IsReplayed: true}
			return nil
		}

		remaining, err := applyRefundToPass(ctx, tx, entity, rec)
		if err != nil {
			return err
		}
		result = RefundPassResult{Remaining: remaining}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// applyRefund is the internal variant used when a cancellation triggers the
// refund inside an already-open transaction. The caller has checked the
// record is not yet refunded.
func applyRefund(ctx context.Context, tx shared.Tx, rec *shared.ConsumptionRecord) error {
	entity, err := loadActivePassForUpdate(ctx, tx, rec.ActivePassID)
	if err != nil {
		return err
	}
	_, err = applyRefundToPass(ctx, tx, entity, rec)
	return err
}

func applyRefundToPass(ctx context.Context, tx shared.Tx, entity *pass.ActivePass, rec *shared.ConsumptionRecord) (int, error) {
	remaining, err := entity.Refund(rec.ContentItemID, rec.Quantity)
	if err != nil {
		return 0, err
	}

	if err := tx.Passes().SetRemaining(ctx, tx.DB(), rec.ActivePassID, rec.ContentItemID, remaining); err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Passes().AddMonthlyUsage(ctx, tx.DB(), rec.ActivePassID, rec.ContentItemID, monthOf(rec.CreatedAt).String(), -rec.Quantity); err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Passes().MarkConsumptionRefunded(ctx, tx.DB(), rec.BookingID); err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return remaining, nil
}

func loadActivePassForUpdate(ctx context.Context, tx shared.Tx, activePassID uuid.UUID) (*pass.ActivePass, error) {
	snap, err := tx.Reads().ActivePassForUpdate(ctx, activePassID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return pass.ReconstructActivePass(
		snap.ID,
		snap.CustomerID,
		snap.PassID,
		snap.VariantName,
		snap.PurchaseDate,
		snap.ExpiryDate,
		snap.Remaining,
	), nil
}

func monthOf(t time.Time) pass.Month {
	m, _ := pass.NewMonth(t.Format("2006-01"))
	return m
}
