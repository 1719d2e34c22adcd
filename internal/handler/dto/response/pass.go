package response

import (
	"time"

	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ActivePassResponse struct {
	ID           uuid.UUID           `json:"id"`
	PassID       uuid.UUID           `json:"passId"`
	PassName     string              `json:"passName"`
	VariantName  string              `json:"variantName"`
	PurchaseDate time.Time           `json:"purchaseDate"`
	ExpiryDate   time.Time           `json:"expiryDate"`
	Remaining    []ContentItemUsage  `json:"remaining"`
}

type ContentItemUsage struct {
	ContentItemID uuid.UUID  `json:"contentItemId"`
	Category      string     `json:"category"`
	ServiceID     *uuid.UUID `json:"serviceId,omitempty"`
	Remaining     int        `json:"remaining"`
	MonthlyCap    *int       `json:"monthlyCap,omitempty"`
}

type ConsumePassResponse struct {
	Remaining int `json:"remaining"`
}

type RefundPassResponse struct {
	Remaining  int  `json:"remaining"`
	IsReplayed bool `json:"isReplayed"`
}

func FromActivePassView(rm *queries.ActivePassView) *ActivePassResponse {
	usages := make([]ContentItemUsage, 0, len(rm.Remaining))
	for _, u := range rm.Remaining {
		usages = append(usages, ContentItemUsage{
			ContentItemID: u.ContentItemID,
			Category:      u.Category,
			ServiceID:     u.ServiceID,
			Remaining:     u.Remaining,
			MonthlyCap:    u.MonthlyCap,
		})
	}
	return &ActivePassResponse{
		ID:           rm.ID,
		PassID:       rm.PassID,
		PassName:     rm.PassName,
		VariantName:  rm.VariantName,
		PurchaseDate: rm.PurchaseDate,
		ExpiryDate:   rm.ExpiryDate,
		Remaining:    usages,
	}
}

func FromActivePassViews(rms []*queries.ActivePassView) []*ActivePassResponse {
	responses := make([]*ActivePassResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromActivePassView(rm))
	}
	return responses
}
