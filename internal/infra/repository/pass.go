package repository

import (
	"context"

	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/db"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type PassRepository struct{}

func NewPassRepository() *PassRepository {
	return &PassRepository{}
}

const setRemainingUsage = `
UPDATE active_pass_usages
SET remaining = $3, updated_at = now()
WHERE active_pass_id = $1 AND content_item_id = $2`

// SetRemaining writes the post-arithmetic balance computed by the domain
// entity. The caller holds the pass row lock, so the write cannot race a
// concurrent consumption; the CHECK (remaining >= 0) constraint is the last
// line of defence.
func (r *PassRepository) SetRemaining(ctx context.Context, dbtx db.DBTX, activePassID, contentItemID uuid.UUID, remaining int) error {
	tag, err := dbtx.Exec(ctx, setRemainingUsage, activePassID, contentItemID, remaining)
	if err != nil {
		if isCheckViolation(err) {
			return infra.WrapRepoErr("usage balance would go negative", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update usage balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("usage entry not found", nil, infra.KindNotFound)
	}
	return nil
}

const upsertMonthlyUsage = `
INSERT INTO pass_monthly_usages (active_pass_id, content_item_id, month, used)
VALUES ($1, $2, $3, $4)
ON CONFLICT (active_pass_id, content_item_id, month)
DO UPDATE SET used = pass_monthly_usages.used + EXCLUDED.used`

func (r *PassRepository) AddMonthlyUsage(ctx context.Context, dbtx db.DBTX, activePassID, contentItemID uuid.UUID, month string, delta int) error {
	if _, err := dbtx.Exec(ctx, upsertMonthlyUsage, activePassID, contentItemID, month, delta); err != nil {
		return infra.WrapRepoErr("failed to record monthly usage", err)
	}
	return nil
}

const insertConsumption = `
INSERT INTO pass_consumptions (booking_id, active_pass_id, content_item_id, quantity, refunded, created_at)
VALUES ($1, $2, $3, $4, false, now())`

func (r *PassRepository) RecordConsumption(ctx context.Context, dbtx db.DBTX, rec *shared.ConsumptionRecord) error {
	_, err := dbtx.Exec(ctx, insertConsumption, rec.BookingID, rec.ActivePassID, rec.ContentItemID, rec.Quantity)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("booking already consumed an entitlement", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to record consumption", err)
	}
	return nil
}

const markRefunded = `
UPDATE pass_consumptions SET refunded = true WHERE booking_id = $1 AND refunded = false`

// MarkConsumptionRefunded flips the refunded flag; the WHERE clause makes a
// second refund for the same booking a no-op, which is what keys the
// exactly-once compensation.
func (r *PassRepository) MarkConsumptionRefunded(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, markRefunded, bookingID); err != nil {
		return infra.WrapRepoErr("failed to mark consumption refunded", err)
	}
	return nil
}
