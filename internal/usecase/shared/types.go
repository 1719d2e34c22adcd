package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type BookingSnapshot struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	DesignerID      *uuid.UUID
	ServiceIDs      []uuid.UUID
	StartTime       time.Time
	DurationMin     int
	AmountCents     int64
	Status          string
	Notes           string
	PaymentRef      *string
	RescheduleCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int64
	Active      bool
}

type ActivePassSnapshot struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	PassID       uuid.UUID
	VariantName  string
	PurchaseDate time.Time
	ExpiryDate   time.Time
	Remaining    map[uuid.UUID]int
}

type ContentItemSnapshot struct {
	ID         uuid.UUID
	PassID     uuid.UUID
	Category   string
	ServiceID  *uuid.UUID
	TotalQty   int
	MonthlyCap *int
}

type ConsumptionRecord struct {
	BookingID     uuid.UUID
	ActivePassID  uuid.UUID
	ContentItemID uuid.UUID
	Quantity      int
	Refunded      bool
	CreatedAt     time.Time
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
