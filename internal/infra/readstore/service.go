package readstore

import (
	"context"

	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/db"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const selectServicesByIDs = `
SELECT id, name, duration_min, price_cents, active
FROM services
WHERE id = ANY($1)`

func (r *ServiceReadStore) ByIDs(ctx context.Context, ids []uuid.UUID) ([]*shared.ServiceSnapshot, error) {
	rows, err := r.db.Query(ctx, selectServicesByIDs, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	defer rows.Close()

	var services []*shared.ServiceSnapshot
	for rows.Next() {
		var s shared.ServiceSnapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMin, &s.PriceCents, &s.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return services, nil
}

// TotalDurationMin sums durations over the service set, failing when any id
// is unknown or inactive.
func (r *ServiceReadStore) TotalDurationMin(ctx context.Context, serviceIDs []uuid.UUID) (int, error) {
	services, err := r.ByIDs(ctx, serviceIDs)
	if err != nil {
		return 0, err
	}
	found := make(map[uuid.UUID]*shared.ServiceSnapshot, len(services))
	for _, s := range services {
		found[s.ID] = s
	}

	total := 0
	for _, id := range serviceIDs {
		s, ok := found[id]
		if !ok || !s.Active {
			return 0, errs.Mark(errs.New("service "+id.String()+" not available"), errs.ErrServiceNotFound)
		}
		total += s.DurationMin
	}
	return total, nil
}
