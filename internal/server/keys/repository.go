package keys

import (
	"context"

	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when no key exists.
	Get(ctx context.Context, id string) (*models.VaultKey, error)
	Put(ctx context.Context, key *models.VaultKey) error
	Delete(ctx context.Context, id string) error
}

// StoreRepository keeps vault keys in one table of a document store.
type StoreRepository struct {
	store docstore.Store
	table string
}

func NewStoreRepository(store docstore.Store, table string) *StoreRepository {
	return &StoreRepository{store: store, table: table}
}

func (r *StoreRepository) Get(ctx context.Context, id string) (*models.VaultKey, error) {
	var k models.VaultKey
	if err := r.store.Get(ctx, r.table, id, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *StoreRepository) Put(ctx context.Context, key *models.VaultKey) error {
	return r.store.Put(ctx, r.table, key.ID, key)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.table, id)
}
