package errs

import "errors"

// Sentinel errors shared across usecase layers. Conflict sentinels are
// deliberately fine-grained so the handler can surface a machine-readable
// reason code per rejected invariant.
var (
	// Validation
	ErrValidation      = errors.New("validation error")
	ErrEmptyServiceSet = errors.New("at least one service required")

	// Authorization
	ErrForbidden = errors.New("requester is not the owner nor an administrator")

	// Not found
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDesignerNotFound = errors.New("designer not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrPassNotFound     = errors.New("active pass not found")

	// Conflict. Transition and reschedule rejections carry their own
	// sentinels in the booking and pass domain packages.
	ErrBookingConflict       = errors.New("time slot conflict")
	ErrSlotUnavailable       = errors.New("slot unavailable")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrDuplicateBooking      = errors.New("duplicate booking")
	ErrIdempotencyInProgress = errors.New("idempotency in progress")

	// Dependency
	ErrIdempotencyCheckFailed  = errors.New("idempotency check failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
