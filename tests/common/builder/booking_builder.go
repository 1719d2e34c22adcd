//go:build unit || e2e

package builder

import (
	"time"

	dombooking "salon-reserve/internal/domain/booking"
	"salon-reserve/internal/domain/user"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	DesignerID      *uuid.UUID
	DesignerName    *string
	ServiceIDs      []uuid.UUID
	StartTime       time.Time
	DurationMin     int
	AmountCents     int64
	Status          dombooking.Status
	Notes           string
	PaymentRef      *string
	RescheduleCount int
	Tier            user.Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	designerID := uuid.New()
	designerName := "Test Designer"
	return &BookingBuilder{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		DesignerID:   &designerID,
		DesignerName: &designerName,
		ServiceIDs:   []uuid.UUID{uuid.New()},
		StartTime:    now.Add(96 * time.Hour).Truncate(30 * time.Minute),
		DurationMin:  60,
		AmountCents:  5500,
		Status:       dombooking.StatusPendingPayment,
		Notes:        "",
		Tier:         user.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	amount, err := dombooking.NewMoney(b.AmountCents)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.CustomerID, b.DesignerID, b.ServiceIDs,
		b.StartTime, b.DurationMin, amount, dombooking.NewNote(b.Notes), b.Tier, b.CreatedAt)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	amount, _ := dombooking.NewMoney(b.AmountCents)
	return dombooking.ReconstructBooking(b.ID, b.CustomerID, b.DesignerID, b.ServiceIDs,
		b.StartTime, b.DurationMin, amount, b.Status, dombooking.NewNote(b.Notes),
		b.PaymentRef, b.RescheduleCount, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	var notes *string
	if b.Notes != "" {
		notes = &b.Notes
	}
	return reqdto.CreateBookingRequest{
		DesignerID: b.DesignerID,
		ServiceIDs: b.ServiceIDs,
		StartTime:  b.StartTime,
		Notes:      notes,
	}
}

func (b *BookingBuilder) BuildCreateCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		DesignerID: b.DesignerID,
		ServiceIDs: b.ServiceIDs,
		StartTime:  b.StartTime,
		Notes:      b.Notes,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		DesignerID:      b.DesignerID,
		DesignerName:    b.DesignerName,
		ServiceIDs:      b.ServiceIDs,
		StartTime:       b.StartTime,
		DurationMin:     b.DurationMin,
		AmountCents:     b.AmountCents,
		Status:          string(b.Status),
		PaymentRef:      b.PaymentRef,
		RescheduleCount: b.RescheduleCount,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItemQuery() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.ID,
		DesignerID:   b.DesignerID,
		DesignerName: b.DesignerName,
		StartTime:    b.StartTime,
		DurationMin:  b.DurationMin,
		AmountCents:  b.AmountCents,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}
