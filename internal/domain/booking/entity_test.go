//go:build unit

package booking_test

import (
	"testing"
	"time"

	"salon-reserve/internal/domain/booking"
	"salon-reserve/internal/domain/user"
	"salon-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func owner(b *builder.BookingBuilder) user.Actor {
	return user.Actor{ID: b.CustomerID, Role: user.RoleCustomer}
}

func admin() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func stranger() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleCustomer}
}

func TestNewBooking(t *testing.T) {
	t.Run("customer tier starts at pending_payment", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPendingPayment, actual.Status())
		assert.Equal(t, 0, actual.RescheduleCount())
	})

	t.Run("member tier skips upfront payment", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Tier = user.RoleMember
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPendingConfirmation, actual.Status())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "no services",
				mutate: func(b *builder.BookingBuilder) { b.ServiceIDs = nil },
				errIs:  booking.ErrEmptyServices,
			},
			{
				name:   "non-positive duration",
				mutate: func(b *builder.BookingBuilder) { b.DurationMin = 0 },
				errIs:  booking.ErrNonPositiveDuration,
			},
			{
				name:   "start in the past",
				mutate: func(b *builder.BookingBuilder) { b.StartTime = b.CreatedAt.Add(-1 * time.Hour) },
				errIs:  booking.ErrStartInPast,
			},
		}
		for _, tt := range cases {
			t.Run(tt.name, func(t *testing.T) {
				_, err := builder.NewBookingBuilder().With(tt.mutate).BuildDomain()
				assert.ErrorIs(t, err, tt.errIs)
			})
		}
	})
}

func TestSubmitPaymentNote(t *testing.T) {
	t.Run("owner moves pending_payment to pending_confirmation", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		entity := b.BuildReconstructed()

		require.NoError(t, entity.SubmitPaymentNote(owner(b), "TRANSFER-123"))

		assert.Equal(t, booking.StatusPendingConfirmation, entity.Status())
		require.NotNil(t, entity.PaymentRef())
		assert.Equal(t, "TRANSFER-123", *entity.PaymentRef())
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		entity := builder.NewBookingBuilder().BuildReconstructed()

		err := entity.SubmitPaymentNote(stranger(), "TRANSFER-123")

		assert.ErrorIs(t, err, booking.ErrNotOwner)
		assert.Equal(t, booking.StatusPendingPayment, entity.Status())
	})

	t.Run("rejected outside pending_payment", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
		})
		entity := b.BuildReconstructed()

		assert.ErrorIs(t, entity.SubmitPaymentNote(owner(b), "TRANSFER-123"), booking.ErrInvalidTransition)
	})
}

func TestTransitionTo(t *testing.T) {
	now := time.Now()
	afterStart := now.Add(200 * time.Hour)

	t.Run("allowed edges", func(t *testing.T) {
		cases := []struct {
			name  string
			from  booking.Status
			to    booking.Status
			actor func(*builder.BookingBuilder) user.Actor
			now   time.Time
		}{
			{"payment reported", booking.StatusPendingPayment, booking.StatusPendingConfirmation, owner, now},
			{"admin confirms", booking.StatusPendingConfirmation, booking.StatusConfirmed, func(*builder.BookingBuilder) user.Actor { return admin() }, now},
			{"admin completes after start", booking.StatusConfirmed, booking.StatusCompleted, func(*builder.BookingBuilder) user.Actor { return admin() }, afterStart},
			{"owner cancels pending_payment", booking.StatusPendingPayment, booking.StatusCancelled, owner, now},
			{"owner cancels pending_confirmation", booking.StatusPendingConfirmation, booking.StatusCancelled, owner, now},
			{"owner cancels confirmed", booking.StatusConfirmed, booking.StatusCancelled, owner, now},
			{"admin cancels on behalf of owner", booking.StatusConfirmed, booking.StatusCancelled, func(*builder.BookingBuilder) user.Actor { return admin() }, now},
		}
		for _, tt := range cases {
			t.Run(tt.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = tt.from })
				entity := b.BuildReconstructed()

				require.NoError(t, entity.TransitionTo(tt.actor(b), tt.to, tt.now))
				assert.Equal(t, tt.to, entity.Status())
			})
		}
	})

	t.Run("disallowed edges leave status unchanged", func(t *testing.T) {
		cases := []struct {
			name string
			from booking.Status
			to   booking.Status
		}{
			{"skip payment confirmation", booking.StatusPendingPayment, booking.StatusConfirmed},
			{"skip straight to completed", booking.StatusPendingPayment, booking.StatusCompleted},
			{"complete unconfirmed", booking.StatusPendingConfirmation, booking.StatusCompleted},
			{"revert completed", booking.StatusCompleted, booking.StatusConfirmed},
			{"cancel completed", booking.StatusCompleted, booking.StatusCancelled},
			{"cancel cancelled", booking.StatusCancelled, booking.StatusCancelled},
			{"revive cancelled", booking.StatusCancelled, booking.StatusConfirmed},
			{"backwards to pending_payment", booking.StatusConfirmed, booking.StatusPendingPayment},
		}
		for _, tt := range cases {
			t.Run(tt.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = tt.from })
				entity := b.BuildReconstructed()

				err := entity.TransitionTo(admin(), tt.to, afterStart)

				assert.ErrorIs(t, err, booking.ErrInvalidTransition)
				assert.Equal(t, tt.from, entity.Status())
			})
		}
	})

	t.Run("confirm requires admin", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusPendingConfirmation
		})
		entity := b.BuildReconstructed()

		err := entity.TransitionTo(owner(b), booking.StatusConfirmed, now)

		assert.ErrorIs(t, err, booking.ErrAdminOnly)
		assert.Equal(t, booking.StatusPendingConfirmation, entity.Status())
	})

	t.Run("complete requires admin", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
		})
		entity := b.BuildReconstructed()

		assert.ErrorIs(t, entity.TransitionTo(owner(b), booking.StatusCompleted, afterStart), booking.ErrAdminOnly)
	})

	t.Run("complete before the appointment start is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
		})
		entity := b.BuildReconstructed()

		err := entity.TransitionTo(admin(), booking.StatusCompleted, entity.StartTime().Add(-1*time.Minute))

		assert.ErrorIs(t, err, booking.ErrCompletionBeforeStart)
		assert.Equal(t, booking.StatusConfirmed, entity.Status())
	})

	t.Run("complete exactly at start time succeeds", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
		})
		entity := b.BuildReconstructed()

		require.NoError(t, entity.TransitionTo(admin(), booking.StatusCompleted, entity.StartTime()))
	})

	t.Run("cancel by stranger is rejected", func(t *testing.T) {
		entity := builder.NewBookingBuilder().BuildReconstructed()

		assert.ErrorIs(t, entity.TransitionTo(stranger(), booking.StatusCancelled, now), booking.ErrNotOwner)
	})
}

func TestReschedule(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	cutoff := booking.DefaultRescheduleCutoff

	freshBuilder := func() *builder.BookingBuilder {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
			b.StartTime = now.Add(96 * time.Hour)
		})
	}

	t.Run("first reschedule outside the window succeeds", func(t *testing.T) {
		b := freshBuilder()
		entity := b.BuildReconstructed()
		newStart := now.Add(120 * time.Hour)

		require.NoError(t, entity.Reschedule(owner(b), newStart, now, cutoff))

		assert.Equal(t, newStart, entity.StartTime())
		assert.Equal(t, 1, entity.RescheduleCount())
		assert.Equal(t, booking.StatusPendingConfirmation, entity.Status())
	})

	t.Run("pending_payment keeps its status", func(t *testing.T) {
		b := freshBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusPendingPayment
		})
		entity := b.BuildReconstructed()

		require.NoError(t, entity.Reschedule(owner(b), now.Add(120*time.Hour), now, cutoff))

		assert.Equal(t, booking.StatusPendingPayment, entity.Status())
	})

	t.Run("second reschedule hits the lifetime limit", func(t *testing.T) {
		b := freshBuilder()
		entity := b.BuildReconstructed()
		require.NoError(t, entity.Reschedule(owner(b), now.Add(120*time.Hour), now, cutoff))

		err := entity.Reschedule(owner(b), now.Add(144*time.Hour), now, cutoff)

		assert.ErrorIs(t, err, booking.ErrRescheduleLimitReached)
		assert.Equal(t, 1, entity.RescheduleCount())
	})

	t.Run("inside the restriction window is rejected regardless of target", func(t *testing.T) {
		b := freshBuilder().With(func(b *builder.BookingBuilder) {
			b.StartTime = now.Add(10 * time.Hour)
		})
		entity := b.BuildReconstructed()

		err := entity.Reschedule(owner(b), now.Add(500*time.Hour), now, cutoff)

		assert.ErrorIs(t, err, booking.ErrInsideRestrictionWindow)
		assert.Equal(t, 0, entity.RescheduleCount())
	})

	t.Run("window boundary is exclusive", func(t *testing.T) {
		// exactly 72h ahead is still inside the window
		b := freshBuilder().With(func(b *builder.BookingBuilder) {
			b.StartTime = now.Add(booking.DefaultRescheduleCutoff)
		})
		entity := b.BuildReconstructed()

		assert.ErrorIs(t, entity.Reschedule(owner(b), now.Add(500*time.Hour), now, cutoff), booking.ErrInsideRestrictionWindow)
	})

	t.Run("a shorter configured cutoff admits closer appointments", func(t *testing.T) {
		b := freshBuilder().With(func(b *builder.BookingBuilder) {
			b.StartTime = now.Add(10 * time.Hour)
		})
		entity := b.BuildReconstructed()

		require.NoError(t, entity.Reschedule(owner(b), now.Add(120*time.Hour), now, 6*time.Hour))
		assert.Equal(t, 1, entity.RescheduleCount())
	})

	t.Run("admin cannot reschedule on behalf of the owner", func(t *testing.T) {
		entity := freshBuilder().BuildReconstructed()

		assert.ErrorIs(t, entity.Reschedule(admin(), now.Add(120*time.Hour), now, cutoff), booking.ErrNotOwner)
	})

	t.Run("terminal statuses are not reschedulable", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			b := freshBuilder().With(func(b *builder.BookingBuilder) { b.Status = status })
			entity := b.BuildReconstructed()

			assert.ErrorIs(t, entity.Reschedule(owner(b), now.Add(120*time.Hour), now, cutoff), booking.ErrNotReschedulable)
		}
	})

	t.Run("ownership is checked before the limit", func(t *testing.T) {
		b := freshBuilder().With(func(b *builder.BookingBuilder) { b.RescheduleCount = 1 })
		entity := b.BuildReconstructed()

		assert.ErrorIs(t, entity.Reschedule(stranger(), now.Add(120*time.Hour), now, cutoff), booking.ErrNotOwner)
	})
}
