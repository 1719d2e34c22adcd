package readstore

import (
	"context"

	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/db"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type PassReadStore struct {
	db db.DBTX
}

func NewPassReadStore(dbtx db.DBTX) *PassReadStore {
	return &PassReadStore{db: dbtx}
}

const selectActivePassView = `
SELECT ap.id, ap.pass_id, p.name, p.variant_name, ap.purchase_date, ap.expiry_date
FROM active_passes ap
JOIN pass_definitions p ON p.id = ap.pass_id
WHERE ap.id = $1`

func (r *PassReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ActivePassView, error) {
	var v queries.ActivePassView
	err := r.db.QueryRow(ctx, selectActivePassView, id).Scan(
		&v.ID, &v.PassID, &v.PassName, &v.VariantName, &v.PurchaseDate, &v.ExpiryDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("active pass not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active pass", err)
	}
	usages, err := r.contentUsages(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Remaining = usages
	return &v, nil
}

const selectActivePassesByCustomer = `
SELECT ap.id, ap.pass_id, p.name, p.variant_name, ap.purchase_date, ap.expiry_date
FROM active_passes ap
JOIN pass_definitions p ON p.id = ap.pass_id
WHERE ap.customer_id = $1
ORDER BY ap.purchase_date DESC`

func (r *PassReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.ActivePassView, error) {
	rows, err := r.db.Query(ctx, selectActivePassesByCustomer, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active passes", err)
	}
	defer rows.Close()

	var views []*queries.ActivePassView
	for rows.Next() {
		var v queries.ActivePassView
		if err := rows.Scan(&v.ID, &v.PassID, &v.PassName, &v.VariantName, &v.PurchaseDate, &v.ExpiryDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active pass row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active pass rows", err)
	}

	for _, v := range views {
		usages, err := r.contentUsages(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Remaining = usages
	}
	return views, nil
}

const selectContentUsages = `
SELECT ci.id, ci.category, ci.service_id, u.remaining, ci.monthly_cap
FROM active_pass_usages u
JOIN pass_content_items ci ON ci.id = u.content_item_id
WHERE u.active_pass_id = $1
ORDER BY ci.id`

func (r *PassReadStore) contentUsages(ctx context.Context, activePassID uuid.UUID) ([]queries.ContentItemUsage, error) {
	rows, err := r.db.Query(ctx, selectContentUsages, activePassID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read pass usages", err)
	}
	defer rows.Close()

	var usages []queries.ContentItemUsage
	for rows.Next() {
		var u queries.ContentItemUsage
		if err := rows.Scan(&u.ContentItemID, &u.Category, &u.ServiceID, &u.Remaining, &u.MonthlyCap); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pass usage row", err)
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pass usage rows", err)
	}
	return usages, nil
}

const selectActivePassForUpdate = `
SELECT ap.id, ap.customer_id, ap.pass_id, p.variant_name, ap.purchase_date, ap.expiry_date
FROM active_passes ap
JOIN pass_definitions p ON p.id = ap.pass_id
WHERE ap.id = $1
FOR UPDATE OF ap`

// SnapshotForUpdate locks the active pass row so concurrent consumptions
// against the same pass serialize.
func (r *PassReadStore) SnapshotForUpdate(ctx context.Context, id uuid.UUID) (*shared.ActivePassSnapshot, error) {
	var s shared.ActivePassSnapshot
	err := r.db.QueryRow(ctx, selectActivePassForUpdate, id).Scan(
		&s.ID, &s.CustomerID, &s.PassID, &s.VariantName, &s.PurchaseDate, &s.ExpiryDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("active pass not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock active pass", err)
	}

	rows, err := r.db.Query(ctx, `SELECT content_item_id, remaining FROM active_pass_usages WHERE active_pass_id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pass usages", err)
	}
	defer rows.Close()

	s.Remaining = make(map[uuid.UUID]int)
	for rows.Next() {
		var itemID uuid.UUID
		var remaining int
		if err := rows.Scan(&itemID, &remaining); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pass usage row", err)
		}
		s.Remaining[itemID] = remaining
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pass usage rows", err)
	}
	return &s, nil
}

const selectContentItem = `
SELECT id, pass_id, category, service_id, total_qty, monthly_cap
FROM pass_content_items
WHERE id = $1`

func (r *PassReadStore) ContentItemByID(ctx context.Context, id uuid.UUID) (*shared.ContentItemSnapshot, error) {
	var s shared.ContentItemSnapshot
	err := r.db.QueryRow(ctx, selectContentItem, id).Scan(
		&s.ID, &s.PassID, &s.Category, &s.ServiceID, &s.TotalQty, &s.MonthlyCap,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("content item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read content item", err)
	}
	return &s, nil
}

const selectMonthlyUsage = `
SELECT used FROM pass_monthly_usages
WHERE active_pass_id = $1 AND content_item_id = $2 AND month = $3`

func (r *PassReadStore) MonthlyUsage(ctx context.Context, activePassID, contentItemID uuid.UUID, month string) (int, error) {
	var used int
	err := r.db.QueryRow(ctx, selectMonthlyUsage, activePassID, contentItemID, month).Scan(&used)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read monthly usage", err)
	}
	return used, nil
}

const selectConsumptionByBooking = `
SELECT booking_id, active_pass_id, content_item_id, quantity, refunded, created_at
FROM pass_consumptions
WHERE booking_id = $1`

func (r *PassReadStore) ConsumptionByBookingID(ctx context.Context, bookingID uuid.UUID) (*shared.ConsumptionRecord, error) {
	var rec shared.ConsumptionRecord
	err := r.db.QueryRow(ctx, selectConsumptionByBooking, bookingID).Scan(
		&rec.BookingID, &rec.ActivePassID, &rec.ContentItemID, &rec.Quantity, &rec.Refunded, &rec.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("consumption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read consumption", err)
	}
	return &rec, nil
}
