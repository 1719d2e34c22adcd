package response

import (
	"time"

	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customerId"`
	DesignerID      *uuid.UUID  `json:"designerId,omitempty"`
	DesignerName    *string     `json:"designerName,omitempty"`
	ServiceIDs      []uuid.UUID `json:"serviceIds"`
	StartTime       time.Time   `json:"startTime"`
	DurationMin     int         `json:"durationMin"`
	AmountCents     int64       `json:"amountCents"`
	Status          string      `json:"status"`
	Notes           *string     `json:"notes,omitempty"`
	PaymentRef      *string     `json:"paymentRef,omitempty"`
	RescheduleCount int         `json:"rescheduleCount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type BookingListResponse struct {
	ID           uuid.UUID  `json:"id"`
	DesignerID   *uuid.UUID `json:"designerId,omitempty"`
	DesignerName *string    `json:"designerName,omitempty"`
	StartTime    time.Time  `json:"startTime"`
	DurationMin  int        `json:"durationMin"`
	AmountCents  int64      `json:"amountCents"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type CreateBookingResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		CustomerID:      rm.CustomerID,
		DesignerID:      rm.DesignerID,
		DesignerName:    rm.DesignerName,
		ServiceIDs:      rm.ServiceIDs,
		StartTime:       rm.StartTime,
		DurationMin:     rm.DurationMin,
		AmountCents:     rm.AmountCents,
		Status:          rm.Status,
		Notes:           rm.Notes,
		PaymentRef:      rm.PaymentRef,
		RescheduleCount: rm.RescheduleCount,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	responses := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &BookingListResponse{
			ID:           item.ID,
			DesignerID:   item.DesignerID,
			DesignerName: item.DesignerName,
			StartTime:    item.StartTime,
			DurationMin:  item.DurationMin,
			AmountCents:  item.AmountCents,
			Status:       item.Status,
			CreatedAt:    item.CreatedAt,
		})
	}
	return responses
}

func FromCreateBookingResult(result *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:     result.BookingID,
		Status: result.Status,
	}
}
