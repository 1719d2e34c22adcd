package httperr

import (
	"errors"
	"net/http"

	"salon-reserve/internal/domain/booking"
	"salon-reserve/internal/domain/pass"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Conflict reason codes exposed in the response detail so clients can
// distinguish why a request was rejected without parsing messages.
const (
	ReasonSlotTaken         = "slot_taken"
	ReasonInvalidTransition = "invalid_transition"
	ReasonRescheduleLimit   = "reschedule_limit"
	ReasonInsideCutoff      = "inside_cutoff"
	ReasonInsufficientUses  = "insufficient_uses"
	ReasonMonthlyCapReached = "monthly_cap_reached"
	ReasonDuplicateRequest  = "duplicate_request"
	ReasonRequestInProgress = "request_in_progress"
)

type mapping struct {
	status int
	msg    string
	reason string
}

var errorMappings = []struct {
	target error
	m      mapping
}{
	{errs.ErrBookingNotFound, mapping{http.StatusNotFound, "Booking not found", ""}},
	{errs.ErrDesignerNotFound, mapping{http.StatusNotFound, "Designer not found", ""}},
	{errs.ErrServiceNotFound, mapping{http.StatusNotFound, "Service not found", ""}},
	{errs.ErrPassNotFound, mapping{http.StatusNotFound, "Pass not found", ""}},

	{errs.ErrForbidden, mapping{http.StatusForbidden, "Operation not permitted", ""}},
	{booking.ErrNotOwner, mapping{http.StatusForbidden, "Operation not permitted", ""}},
	{booking.ErrAdminOnly, mapping{http.StatusForbidden, "Administrator role required", ""}},

	{errs.ErrEmptyServiceSet, mapping{http.StatusBadRequest, "At least one service is required", ""}},
	{errs.ErrValidation, mapping{http.StatusBadRequest, "Invalid request", ""}},
	{booking.ErrStartInPast, mapping{http.StatusBadRequest, "Start time must not be in the past", ""}},
	{booking.ErrEmptyServices, mapping{http.StatusBadRequest, "At least one service is required", ""}},

	{errs.ErrBookingConflict, mapping{http.StatusConflict, "Requested slot is already booked", ReasonSlotTaken}},
	{errs.ErrSlotUnavailable, mapping{http.StatusConflict, "Requested slot is not bookable", ReasonSlotTaken}},
	{booking.ErrInvalidTransition, mapping{http.StatusConflict, "Status transition not allowed", ReasonInvalidTransition}},
	{booking.ErrCompletionBeforeStart, mapping{http.StatusConflict, "Booking cannot be completed before its start time", ReasonInvalidTransition}},
	{booking.ErrNotReschedulable, mapping{http.StatusConflict, "Booking can no longer be rescheduled", ReasonInvalidTransition}},
	{booking.ErrRescheduleLimitReached, mapping{http.StatusConflict, "Reschedule limit reached", ReasonRescheduleLimit}},
	{booking.ErrInsideRestrictionWindow, mapping{http.StatusConflict, "Too close to the appointment to reschedule", ReasonInsideCutoff}},
	{pass.ErrInsufficientBalance, mapping{http.StatusConflict, "Not enough pass usages remaining", ReasonInsufficientUses}},
	{errs.ErrInsufficientBalance, mapping{http.StatusConflict, "Not enough pass usages remaining", ReasonInsufficientUses}},
	{pass.ErrMonthlyLimitReached, mapping{http.StatusConflict, "Monthly usage cap reached", ReasonMonthlyCapReached}},
	// An expired pass is treated as absent rather than conflicting: callers
	// cannot act on it at all, so it joins the not-found branch.
	{pass.ErrExpired, mapping{http.StatusNotFound, "Pass not found", ""}},
	{pass.ErrUnknownContentItem, mapping{http.StatusNotFound, "Pass content item not found", ""}},
	{errs.ErrDuplicateBooking, mapping{http.StatusConflict, "Duplicate request with different parameters", ReasonDuplicateRequest}},
	{errs.ErrIdempotencyInProgress, mapping{http.StatusConflict, "Request is currently being processed", ReasonRequestInProgress}},
}

// RespondWithError translates usecase and domain errors into the uniform
// error envelope. Unrecognized errors fall through to 500 without leaking
// internals; 502 is reserved for infrastructure failures.
func RespondWithError(c *gin.Context, err error) {
	for _, em := range errorMappings {
		if errors.Is(err, em.target) {
			var detail any
			if em.m.reason != "" {
				detail = gin.H{"reason": em.m.reason}
			}
			AbortWithError(c, em.m.status, err, em.m.msg, detail)
			return
		}
	}

	if infra.IsKind(err, infra.KindNotFound) {
		AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		return
	}
	if errors.Is(err, errs.ErrDatabaseOperationFailed) || infra.IsKind(err, infra.KindDBFailure) {
		AbortWithError(c, http.StatusBadGateway, err, "Upstream dependency failed", nil)
		return
	}

	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
