package request

import (
	"salon-reserve/internal/usecase/commands"

	"github.com/google/uuid"
)

type ConsumePassRequest struct {
	ContentItemID uuid.UUID `json:"content_item_id" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
}

func (r ConsumePassRequest) ToCommand(activePassID uuid.UUID) commands.ConsumePassRequest {
	return commands.ConsumePassRequest{
		ActivePassID:  activePassID,
		ContentItemID: r.ContentItemID,
		Quantity:      r.Quantity,
		BookingID:     r.BookingID,
	}
}
