package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	DesignerID      *uuid.UUID  `json:"designer_id,omitempty"`
	DesignerName    *string     `json:"designer_name,omitempty"`
	ServiceIDs      []uuid.UUID `json:"service_ids"`
	StartTime       time.Time   `json:"start_time"`
	DurationMin     int         `json:"duration_min"`
	AmountCents     int64       `json:"amount_cents"`
	Status          string      `json:"status"`
	Notes           *string     `json:"notes,omitempty"`
	PaymentRef      *string     `json:"payment_ref,omitempty"`
	RescheduleCount int         `json:"reschedule_count"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID  `json:"id"`
	DesignerID   *uuid.UUID `json:"designer_id,omitempty"`
	DesignerName *string    `json:"designer_name,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	DurationMin  int        `json:"duration_min"`
	AmountCents  int64      `json:"amount_cents"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ActivePassView struct {
	ID           uuid.UUID           `json:"id"`
	PassID       uuid.UUID           `json:"pass_id"`
	PassName     string              `json:"pass_name"`
	VariantName  string              `json:"variant_name"`
	PurchaseDate time.Time           `json:"purchase_date"`
	ExpiryDate   time.Time           `json:"expiry_date"`
	Remaining    []ContentItemUsage  `json:"remaining"`
}

type ContentItemUsage struct {
	ContentItemID uuid.UUID  `json:"content_item_id"`
	Category      string     `json:"category"`
	ServiceID     *uuid.UUID `json:"service_id,omitempty"`
	Remaining     int        `json:"remaining"`
	MonthlyCap    *int       `json:"monthly_cap,omitempty"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
}

type PassQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ActivePassView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ActivePassView, error)
}
