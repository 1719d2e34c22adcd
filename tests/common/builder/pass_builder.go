//go:build unit || e2e

package builder

import (
	"time"

	dompass "salon-reserve/internal/domain/pass"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type PassBuilder struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	PassID        uuid.UUID
	PassName      string
	VariantName   string
	ContentItemID uuid.UUID
	Category      dompass.Category
	ServiceID     *uuid.UUID
	TotalQty      int
	Remaining     int
	MonthlyCap    *int
	BookingID     uuid.UUID
	Quantity      int
	PurchaseDate  time.Time
	ExpiryDate    time.Time
}

func NewPassBuilder() *PassBuilder {
	now := time.Now().Truncate(time.Second)
	return &PassBuilder{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		PassID:        uuid.New(),
		PassName:      "Cut Pass",
		VariantName:   "standard",
		ContentItemID: uuid.New(),
		Category:      dompass.CategoryBenefit,
		TotalQty:      10,
		Remaining:     10,
		BookingID:     uuid.New(),
		Quantity:      1,
		PurchaseDate:  now.AddDate(0, -1, 0),
		ExpiryDate:    now.AddDate(0, 5, 0),
	}
}

func (p *PassBuilder) With(mutate func(*PassBuilder)) *PassBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PassBuilder) BuildDomain() *dompass.ActivePass {
	return dompass.ReconstructActivePass(p.ID, p.CustomerID, p.PassID, p.VariantName,
		p.PurchaseDate, p.ExpiryDate, map[uuid.UUID]int{p.ContentItemID: p.Remaining})
}

func (p *PassBuilder) BuildContentItem() dompass.ContentItem {
	return dompass.ContentItem{
		ID:         p.ContentItemID,
		Category:   p.Category,
		ServiceID:  p.ServiceID,
		Total:      p.TotalQty,
		MonthlyCap: p.MonthlyCap,
	}
}

func (p *PassBuilder) BuildConsumeRequestDTO() reqdto.ConsumePassRequest {
	return reqdto.ConsumePassRequest{
		ContentItemID: p.ContentItemID,
		Quantity:      p.Quantity,
		BookingID:     p.BookingID,
	}
}

func (p *PassBuilder) BuildConsumeCommand() commands.ConsumePassRequest {
	return commands.ConsumePassRequest{
		ActivePassID:  p.ID,
		ContentItemID: p.ContentItemID,
		Quantity:      p.Quantity,
		BookingID:     p.BookingID,
	}
}

func (p *PassBuilder) BuildViewQuery() *queries.ActivePassView {
	return &queries.ActivePassView{
		ID:           p.ID,
		PassID:       p.PassID,
		PassName:     p.PassName,
		VariantName:  p.VariantName,
		PurchaseDate: p.PurchaseDate,
		ExpiryDate:   p.ExpiryDate,
		Remaining: []queries.ContentItemUsage{
			{
				ContentItemID: p.ContentItemID,
				Category:      string(p.Category),
				ServiceID:     p.ServiceID,
				Remaining:     p.Remaining,
				MonthlyCap:    p.MonthlyCap,
			},
		},
	}
}
