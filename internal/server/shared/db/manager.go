// Package db opens the configured document store and hands out the typed
// repositories built on it.
package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dmitrijs2005/keyescrow/internal/filex"
	"github.com/dmitrijs2005/keyescrow/internal/server/config"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore/badgerstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore/dynamostore"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore/s3store"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore/sqlstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/keys"
	"github.com/dmitrijs2005/keyescrow/internal/server/owners"
)

// AWSConfigFunc returns the shared AWS configuration.
type AWSConfigFunc func(ctx context.Context) (aws.Config, error)

type RepositoryManager interface {
	Store() docstore.Store
	Keys() keys.Repository
	Owners() owners.Repository
	Close() error
}

type StoreRepositoryManager struct {
	store  docstore.Store
	keys   keys.Repository
	owners owners.Repository
}

func NewStoreRepositoryManager(store docstore.Store, keysTable, usersTable string) *StoreRepositoryManager {
	return &StoreRepositoryManager{
		store:  store,
		keys:   keys.NewStoreRepository(store, keysTable),
		owners: owners.NewStoreRepository(store, usersTable),
	}
}

func (m *StoreRepositoryManager) Store() docstore.Store     { return m.store }
func (m *StoreRepositoryManager) Keys() keys.Repository     { return m.keys }
func (m *StoreRepositoryManager) Owners() owners.Repository { return m.owners }
func (m *StoreRepositoryManager) Close() error              { return m.store.Close() }

// NewRepositoryManager opens the store selected by c.StoreBackend. loadAWS
// is only called for the dynamodb and s3 backends.
func NewRepositoryManager(ctx context.Context, c *config.Config, loadAWS AWSConfigFunc) (RepositoryManager, error) {
	store, err := OpenStore(ctx, c, loadAWS)
	if err != nil {
		return nil, err
	}
	return NewStoreRepositoryManager(store, c.KeysTable, c.UsersTable), nil
}

func OpenStore(ctx context.Context, c *config.Config, loadAWS AWSConfigFunc) (docstore.Store, error) {
	codec, err := docstore.CodecByName(c.StoreCodec)
	if err != nil {
		return nil, err
	}

	switch c.StoreBackend {
	case "memory":
		return docstore.NewMemoryStore(codec), nil
	case "postgres":
		return sqlStore(ctx, sqlstore.Postgres, c.DatabaseDSN, codec)
	case "sqlite":
		if err := filex.EnsureParentDir(c.SQLitePath); err != nil {
			return nil, err
		}
		return sqlStore(ctx, sqlstore.SQLite, c.SQLitePath, codec)
	case "badger":
		dir := c.BadgerDir
		if dir != "" {
			if dir, err = filex.EnsureDir(dir); err != nil {
				return nil, err
			}
		}
		s, err := badgerstore.Open(dir, codec)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "dynamodb":
		cfg, err := loadAWS(ctx)
		if err != nil {
			return nil, err
		}
		return dynamostore.NewFromConfig(cfg, c.DynamoEndpoint, nil), nil
	case "s3":
		cfg, err := loadAWS(ctx)
		if err != nil {
			return nil, err
		}
		return s3store.NewFromConfig(cfg, c.S3BaseEndpoint, c.S3Bucket, c.S3Prefix, codec), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", c.StoreBackend)
}

func sqlStore(ctx context.Context, dialect sqlstore.Dialect, dsn string, codec docstore.Codec) (docstore.Store, error) {
	s, err := sqlstore.Open(ctx, dialect, dsn, codec)
	if err != nil {
		return nil, err
	}
	return s, nil
}
