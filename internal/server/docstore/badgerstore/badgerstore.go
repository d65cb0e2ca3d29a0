// Package badgerstore implements docstore.Store on an embedded Badger
// database, for single-node deployments without an external database.
package badgerstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
)

type Store struct {
	db    *badger.DB
	codec docstore.Codec
}

// Open opens (or creates) the database in dir. An empty dir keeps the
// database in memory.
func Open(dir string, codec docstore.Codec) (*Store, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir).WithSyncWrites(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger open error: %w", err)
	}
	return New(db, codec), nil
}

func New(db *badger.DB, codec docstore.Codec) *Store {
	if codec == nil {
		codec = docstore.JSON
	}
	return &Store{db: db, codec: codec}
}

func (s *Store) Get(ctx context.Context, table, id string, out any) error {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(docstore.Key(table, id)))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return common.ErrorNotFound
	}
	if err != nil {
		return fmt.Errorf("badger error: %w", err)
	}

	if err := s.codec.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, table, id string, doc any) error {
	data, err := s.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(docstore.Key(table, id)), data)
	})
	if err != nil {
		return fmt.Errorf("badger error: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, table, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(docstore.Key(table, id)))
	})
	if err != nil {
		return fmt.Errorf("badger error: %w", err)
	}
	return nil
}

// CollectGarbage runs one value log GC cycle. Nothing to rewrite is not an
// error.
func (s *Store) CollectGarbage(discardRatio float64) error {
	err := s.db.RunValueLogGC(discardRatio)
	if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return fmt.Errorf("badger gc error: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
