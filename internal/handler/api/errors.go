package api

import "errors"

var (
	errMissingIdempotencyKey = errors.New("Idempotency-Key header is required")
	errInvalidIdempotencyKey = errors.New("Idempotency-Key must be a valid UUID")
)
