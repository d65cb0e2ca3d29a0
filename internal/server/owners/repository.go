package owners

import (
	"context"

	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when no owner exists.
	Get(ctx context.Context, id string) (*models.Owner, error)
	Put(ctx context.Context, owner *models.Owner) error
	Delete(ctx context.Context, id string) error
}

// StoreRepository keeps owners in one table of a document store.
type StoreRepository struct {
	store docstore.Store
	table string
}

func NewStoreRepository(store docstore.Store, table string) *StoreRepository {
	return &StoreRepository{store: store, table: table}
}

func (r *StoreRepository) Get(ctx context.Context, id string) (*models.Owner, error) {
	var o models.Owner
	if err := r.store.Get(ctx, r.table, id, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *StoreRepository) Put(ctx context.Context, owner *models.Owner) error {
	return r.store.Put(ctx, r.table, owner.ID, owner)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.table, id)
}
