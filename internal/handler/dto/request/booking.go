package request

import (
	"strings"
	"time"

	"salon-reserve/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DesignerID *uuid.UUID  `json:"designer_id,omitempty"`
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	StartTime  time.Time   `json:"start_time" binding:"required"`
	Notes      *string     `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	notes := ""
	if r.Notes != nil {
		notes = strings.TrimSpace(*r.Notes)
	}
	return commands.CreateBookingRequest{
		DesignerID: r.DesignerID,
		ServiceIDs: r.ServiceIDs,
		StartTime:  r.StartTime,
		Notes:      notes,
	}
}

type SubmitPaymentNoteRequest struct {
	PaymentRef string `json:"payment_ref" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleBookingRequest struct {
	NewStartTime time.Time `json:"new_start_time" binding:"required"`
}
