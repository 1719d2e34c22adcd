package pass

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpired             = errors.New("pass expired")
	ErrUnknownContentItem  = errors.New("content item not part of pass")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrMonthlyLimitReached = errors.New("monthly limit reached")
)

// ActivePass is a customer's instantiated season-pass purchase. Remaining
// usage counts are lifetime allotments per content item; they never go
// negative and stop being consumable once the pass expires.
type ActivePass struct {
	id           uuid.UUID
	customerID   uuid.UUID
	passID       uuid.UUID
	variantName  string
	purchaseDate time.Time
	expiryDate   time.Time
	remaining    map[uuid.UUID]int
}

func NewActivePass(
	customerID, passID uuid.UUID,
	variantName string,
	purchaseDate, expiryDate time.Time,
	items []ContentItem,
) *ActivePass {
	remaining := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		remaining[item.ID] = item.Total
	}
	return &ActivePass{
		id:           uuid.New(),
		customerID:   customerID,
		passID:       passID,
		variantName:  variantName,
		purchaseDate: purchaseDate,
		expiryDate:   expiryDate,
		remaining:    remaining,
	}
}

func ReconstructActivePass(
	id, customerID, passID uuid.UUID,
	variantName string,
	purchaseDate, expiryDate time.Time,
	remaining map[uuid.UUID]int,
) *ActivePass {
	return &ActivePass{
		id:           id,
		customerID:   customerID,
		passID:       passID,
		variantName:  variantName,
		purchaseDate: purchaseDate,
		expiryDate:   expiryDate,
		remaining:    remaining,
	}
}

func (p *ActivePass) IsExpired(now time.Time) bool {
	return p.expiryDate.Before(now)
}

// Consume decrements the lifetime allotment for the content item.
// usedThisMonth and monthlyCap implement the optional per-calendar-month
// ceiling; the caller supplies the month counter read under the same lock
// that guards the decrement.
func (p *ActivePass) Consume(itemID uuid.UUID, qty int, usedThisMonth int, monthlyCap *int, now time.Time) (int, error) {
	if qty <= 0 {
		return 0, ErrNonPositiveQuantity
	}
	if p.IsExpired(now) {
		return 0, ErrExpired
	}
	balance, ok := p.remaining[itemID]
	if !ok {
		return 0, ErrUnknownContentItem
	}
	if balance < qty {
		return balance, ErrInsufficientBalance
	}
	if monthlyCap != nil && usedThisMonth+qty > *monthlyCap {
		return balance, ErrMonthlyLimitReached
	}
	p.remaining[itemID] = balance - qty
	return p.remaining[itemID], nil
}

// Refund restores a previously consumed allotment. The monthly cap is not
// re-checked; refunds compensate cancellations and must always apply.
func (p *ActivePass) Refund(itemID uuid.UUID, qty int) (int, error) {
	if qty <= 0 {
		return 0, ErrNonPositiveQuantity
	}
	if _, ok := p.remaining[itemID]; !ok {
		return 0, ErrUnknownContentItem
	}
	p.remaining[itemID] += qty
	return p.remaining[itemID], nil
}

func (p *ActivePass) Remaining(itemID uuid.UUID) int {
	return p.remaining[itemID]
}

func (p *ActivePass) RemainingUsages() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(p.remaining))
	for k, v := range p.remaining {
		out[k] = v
	}
	return out
}

func (p *ActivePass) ID() uuid.UUID           { return p.id }
func (p *ActivePass) CustomerID() uuid.UUID   { return p.customerID }
func (p *ActivePass) PassID() uuid.UUID       { return p.passID }
func (p *ActivePass) VariantName() string     { return p.variantName }
func (p *ActivePass) PurchaseDate() time.Time { return p.purchaseDate }
func (p *ActivePass) ExpiryDate() time.Time   { return p.expiryDate }
