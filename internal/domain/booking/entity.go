package booking

import (
	"errors"
	"time"

	"salon-reserve/internal/domain/schedule"
	"salon-reserve/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidTransition       = errors.New("transition not allowed from current status")
	ErrNotOwner                = errors.New("booking not owned by requester")
	ErrAdminOnly               = errors.New("administrator action required")
	ErrEmptyServices           = errors.New("booking requires at least one service")
	ErrNonPositiveDuration     = errors.New("duration must be positive")
	ErrStartInPast             = errors.New("start time cannot be in the past")
	ErrCompletionBeforeStart   = errors.New("cannot complete before the appointment start")
	ErrNotReschedulable        = errors.New("booking not reschedulable")
	ErrRescheduleLimitReached  = errors.New("reschedule limit reached")
	ErrInsideRestrictionWindow = errors.New("inside restriction window")
)

// DefaultRescheduleCutoff is the pre-appointment period during which
// rescheduling is disallowed, measured against the current start time.
// The effective cutoff is configurable and passed into Reschedule.
const DefaultRescheduleCutoff = 72 * time.Hour

// MaxReschedules is a lifetime limit with no administrative reset path.
const MaxReschedules = 1

type Booking struct {
	id              uuid.UUID
	customerID      uuid.UUID
	designerID      *uuid.UUID // nil means "any designer"
	serviceIDs      []uuid.UUID
	startTime       time.Time
	durationMin     int
	amount          Money
	status          Status
	notes           Note
	paymentRef      *string
	rescheduleCount int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	customerID uuid.UUID,
	designerID *uuid.UUID,
	serviceIDs []uuid.UUID,
	startTime time.Time,
	durationMin int,
	amount Money,
	notes Note,
	tier user.Role,
	now time.Time,
) (*Booking, error) {
	if len(serviceIDs) == 0 {
		return nil, ErrEmptyServices
	}
	if durationMin <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if startTime.Before(now) {
		return nil, ErrStartInPast
	}

	status := StatusPendingPayment
	if tier.SkipsUpfrontPayment() {
		status = StatusPendingConfirmation
	}

	return &Booking{
		id:          uuid.New(),
		customerID:  customerID,
		designerID:  designerID,
		serviceIDs:  serviceIDs,
		startTime:   startTime,
		durationMin: durationMin,
		amount:      amount,
		status:      status,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, customerID uuid.UUID,
	designerID *uuid.UUID,
	serviceIDs []uuid.UUID,
	startTime time.Time,
	durationMin int,
	amount Money,
	status Status,
	notes Note,
	paymentRef *string,
	rescheduleCount int,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		customerID:      customerID,
		designerID:      designerID,
		serviceIDs:      serviceIDs,
		startTime:       startTime,
		durationMin:     durationMin,
		amount:          amount,
		status:          status,
		notes:           notes,
		paymentRef:      paymentRef,
		rescheduleCount: rescheduleCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// SubmitPaymentNote records the customer's bank-transfer reference and moves
// the booking to pending_confirmation. The note is stored as-is;
// reconciliation against the actual transfer is an administrator action.
func (b *Booking) SubmitPaymentNote(actor user.Actor, ref string) error {
	if !actor.CanActOn(b.customerID) {
		return ErrNotOwner
	}
	if b.status != StatusPendingPayment {
		return ErrInvalidTransition
	}
	b.paymentRef = &ref
	b.status = StatusPendingConfirmation
	return nil
}

func (b *Booking) Confirm(actor user.Actor) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) Complete(actor user.Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	if !b.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	if now.Before(b.startTime) {
		return ErrCompletionBeforeStart
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) Cancel(actor user.Actor) error {
	if !actor.CanActOn(b.customerID) {
		return ErrNotOwner
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

// TransitionTo applies an explicit status change request, dispatching to the
// guarded transition for the target status. The booking is left unchanged
// when any guard rejects.
func (b *Booking) TransitionTo(actor user.Actor, next Status, now time.Time) error {
	switch next {
	case StatusPendingConfirmation:
		if !actor.CanActOn(b.customerID) {
			return ErrNotOwner
		}
		if b.status != StatusPendingPayment {
			return ErrInvalidTransition
		}
		b.status = StatusPendingConfirmation
		return nil
	case StatusConfirmed:
		return b.Confirm(actor)
	case StatusCompleted:
		return b.Complete(actor, now)
	case StatusCancelled:
		return b.Cancel(actor)
	default:
		return ErrInvalidTransition
	}
}

// Reschedule applies the one-time date change. Preconditions are checked in
// order so each rejection carries its own reason. The restriction window is
// the configured cutoff measured from the current start time, not the
// requested one.
func (b *Booking) Reschedule(actor user.Actor, newStart time.Time, now time.Time, cutoff time.Duration) error {
	if !actor.Owns(b.customerID) {
		return ErrNotOwner
	}
	if b.status.IsTerminal() {
		return ErrNotReschedulable
	}
	if b.rescheduleCount >= MaxReschedules {
		return ErrRescheduleLimitReached
	}
	if cutoff <= 0 {
		cutoff = DefaultRescheduleCutoff
	}
	if !now.Add(cutoff).Before(b.startTime) {
		return ErrInsideRestrictionWindow
	}

	b.startTime = newStart
	b.rescheduleCount++
	if b.status != StatusPendingPayment {
		b.status = StatusPendingConfirmation
	}
	return nil
}

// Interval is the half-open occupation window of the appointment.
func (b *Booking) Interval() schedule.Interval {
	return schedule.NewInterval(b.startTime, time.Duration(b.durationMin)*time.Minute)
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) CustomerID() uuid.UUID    { return b.customerID }
func (b *Booking) DesignerID() *uuid.UUID   { return b.designerID }
func (b *Booking) ServiceIDs() []uuid.UUID  { return b.serviceIDs }
func (b *Booking) StartTime() time.Time     { return b.startTime }
func (b *Booking) DurationMin() int         { return b.durationMin }
func (b *Booking) Amount() Money            { return b.amount }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Notes() Note              { return b.notes }
func (b *Booking) PaymentRef() *string      { return b.paymentRef }
func (b *Booking) RescheduleCount() int     { return b.rescheduleCount }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
