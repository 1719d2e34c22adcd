package repository

import (
	"context"
	"time"

	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository writes outbox jobs in the same transaction as the
// lifecycle change that triggers them. Delivery (LINE/SMS/email) is a
// separate worker's concern.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const insertNotificationJob = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, attempts, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 0, 'pending', now(), now())`

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if _, err := dbtx.Exec(ctx, insertNotificationJob, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
