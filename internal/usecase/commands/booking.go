package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"salon-reserve/internal/domain/booking"
	"salon-reserve/internal/domain/schedule"
	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DesignerID *uuid.UUID  `json:"designer_id"`
	ServiceIDs []uuid.UUID `json:"service_ids"`
	StartTime  time.Time   `json:"start_time"`
	Notes      string      `json:"notes"`
}

type CreateBookingResult struct {
	BookingID  uuid.UUID
	Status     string
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	SubmitPaymentNote(ctx context.Context, bookingID uuid.UUID, actor user.Actor, paymentRef string) error
	SetBookingStatus(ctx context.Context, bookingID uuid.UUID, actor user.Actor, target booking.Status) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   config.BookingConfig
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, cfg config.BookingConfig, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, cfg: cfg, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	if len(req.ServiceIDs) == 0 {
		return nil, errs.ErrEmptyServiceSet
	}

	requestHash := calculateRequestHash(req)
	expiresAt := uc.clock.Now().Add(uc.cfg.IdempotencyKeyTTL)

	var result CreateBookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, actor.ID, "POST /bookings", requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if !claimed {
			replayed, rerr := uc.resolveExistingKey(ctx, tx, idempotencyKey, actor.ID, requestHash)
			if rerr != nil {
				return rerr
			}
			result = *replayed
			return nil
		}

		created, cerr := uc.createNewBooking(ctx, tx, req, actor, idempotencyKey)
		if cerr != nil {
			return cerr
		}
		result = *created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *bookingUseCaseImpl) resolveExistingKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string) (*CreateBookingResult, error) {
	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateBooking
		}
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking id")
		}
		snap, serr := tx.Reads().BookingByID(ctx, *existing.ResultBookingID)
		if serr != nil {
			return nil, errs.Mark(serr, errs.ErrIdempotencyCheckFailed)
		}
		return &CreateBookingResult{BookingID: snap.ID, Status: snap.Status, IsReplayed: true}, nil

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateBooking
		}
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *bookingUseCaseImpl) createNewBooking(ctx context.Context, tx shared.Tx, req CreateBookingRequest, actor user.Actor, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	services, err := tx.Reads().ServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrServiceNotFound)
	}
	durationMin, amountCents, err := sumServices(req.ServiceIDs, services)
	if err != nil {
		return nil, err
	}

	designerID, err := uc.resolveDesigner(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := uc.validateSlot(ctx, tx, designerID, req.StartTime, durationMin, nil, now); err != nil {
		return nil, err
	}

	amount, err := booking.NewMoney(amountCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	entity, err := booking.NewBooking(
		actor.ID,
		&designerID,
		req.ServiceIDs,
		req.StartTime,
		durationMin,
		amount,
		booking.NewNote(req.Notes),
		actor.Role,
		now,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	bookingID, err := tx.Bookings().Create(ctx, tx.DB(), entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := createBookingNotification(ctx, tx, bookingID, "booking_created", now); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, actor.ID, calculateIDHash(bookingID), bookingID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{BookingID: bookingID, Status: string(entity.Status())}, nil
}

// resolveDesigner picks a concrete designer for designer-agnostic requests:
// the first active designer able to perform every requested service.
func (uc *bookingUseCaseImpl) resolveDesigner(ctx context.Context, tx shared.Tx, req CreateBookingRequest) (uuid.UUID, error) {
	if req.DesignerID != nil {
		return *req.DesignerID, nil
	}
	candidates, err := tx.Reads().ActiveDesignersForServices(ctx, req.ServiceIDs)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(candidates) == 0 {
		return uuid.Nil, errs.ErrDesignerNotFound
	}
	return candidates[0], nil
}

// validateSlot re-checks the requested start against the designer's day while
// holding row locks on the day's bookings, so two concurrent requests for the
// same slot cannot both pass.
func (uc *bookingUseCaseImpl) validateSlot(ctx context.Context, tx shared.Tx, designerID uuid.UUID, startTime time.Time, durationMin int, excludeBookingID *uuid.UUID, now time.Time) error {
	date := truncateToDay(startTime)
	day, err := tx.Reads().DayScheduleForUpdate(ctx, designerID, date)
	if err != nil {
		return err
	}

	booked, err := tx.Reads().DesignerDayIntervalsForUpdate(ctx, designerID, date, excludeBookingID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	duration := time.Duration(durationMin) * time.Minute
	slots := schedule.ComputeSlots(*day, booked, duration, now)
	if !schedule.ContainsSlot(slots, startTime) {
		requested := schedule.NewInterval(startTime, duration)
		for _, iv := range booked {
			if requested.Overlaps(iv) {
				return errs.ErrBookingConflict
			}
		}
		return errs.ErrSlotUnavailable
	}
	return nil
}

func (uc *bookingUseCaseImpl) SubmitPaymentNote(ctx context.Context, bookingID uuid.UUID, actor user.Actor, paymentRef string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := entity.SubmitPaymentNote(actor, paymentRef); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return createBookingNotification(ctx, tx, bookingID, "payment_note_submitted", uc.clock.Now())
	})
}

func (uc *bookingUseCaseImpl) SetBookingStatus(ctx context.Context, bookingID uuid.UUID, actor user.Actor, target booking.Status) error {
	if !target.IsValid() {
		return errs.ErrValidation
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if err := entity.TransitionTo(actor, target, uc.clock.Now()); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if target == booking.StatusCancelled {
			if err := refundConsumptionIfAny(ctx, tx, bookingID); err != nil {
				return err
			}
		}

		return createBookingNotification(ctx, tx, bookingID, "booking_"+string(target), uc.clock.Now())
	})
}

// refundConsumptionIfAny restores pass balance spent on the booking. The
// refund is keyed by booking id, so replays after the first are no-ops.
func refundConsumptionIfAny(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) error {
	rec, err := tx.Reads().ConsumptionByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rec.Refunded {
		return nil
	}
	return applyRefund(ctx, tx, rec)
}

func loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bookingFromSnapshot(snap)
}

func bookingFromSnapshot(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	status, err := booking.NewStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	amount, err := booking.NewMoney(snap.AmountCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.ReconstructBooking(
		snap.ID,
		snap.CustomerID,
		snap.DesignerID,
		snap.ServiceIDs,
		snap.StartTime,
		snap.DurationMin,
		amount,
		status,
		booking.NewNote(snap.Notes),
		snap.PaymentRef,
		snap.RescheduleCount,
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}

func sumServices(requested []uuid.UUID, services []*shared.ServiceSnapshot) (int, int64, error) {
	found := make(map[uuid.UUID]*shared.ServiceSnapshot, len(services))
	for _, s := range services {
		found[s.ID] = s
	}

	durationMin := 0
	var amountCents int64
	for _, id := range requested {
		s, ok := found[id]
		if !ok || !s.Active {
			return 0, 0, errs.Mark(errs.New("service "+id.String()+" not available"), errs.ErrServiceNotFound)
		}
		durationMin += s.DurationMin
		amountCents += s.PriceCents
	}
	return durationMin, amountCents, nil
}

func createBookingNotification(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, topic string, runAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, runAt)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func calculateRequestHash(req CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
