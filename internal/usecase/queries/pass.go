package queries

import (
	"context"

	"github.com/google/uuid"
)

type PassReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ActivePassView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*ActivePassView, error)
}

type passQueriesImpl struct {
	store PassReadStore
}

func NewPassQueries(store PassReadStore) PassQueries {
	return &passQueriesImpl{store: store}
}

func (q *passQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ActivePassView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *passQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ActivePassView, error) {
	return q.store.FindByCustomerID(ctx, customerID)
}
