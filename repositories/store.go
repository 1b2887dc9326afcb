//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// IStore runs a unit of work against the repositories.
// Update commits only when fn returns nil; any error discards every write made in fn.
type IStore interface {
	Update(fn func(tx Tx) error) error
	View(fn func(tx Tx) error) error
}

type Store struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStore(db *badger.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) Update(fn func(tx Tx) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return fn(Tx{txn: txn})
	})
}

func (s *Store) View(fn func(tx Tx) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		return fn(Tx{txn: txn})
	})
}

// Tx hands out repositories bound to a single badger transaction.
type Tx struct {
	txn *badger.Txn
}

func (t Tx) Users() IUserRepository {
	return UserRepository{txn: t.txn}
}

func (t Tx) Invites() IInviteRepository {
	return InviteRepository{txn: t.txn}
}

func (t Tx) Friendships() IFriendshipRepository {
	return FriendshipRepository{txn: t.txn}
}

func (t Tx) Rooms() IRoomRepository {
	return RoomRepository{txn: t.txn}
}

// getJSON decodes the value stored under key.
// badger.ErrKeyNotFound is returned untouched so callers can map it to a domain error.
func getJSON(txn *badger.Txn, key []byte, dst any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, dst); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	})
}

func setJSON(txn *badger.Txn, key []byte, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return txn.Set(key, bytes)
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	switch {
	case err == nil:
		return true, nil
	case err == badger.ErrKeyNotFound:
		return false, nil
	default:
		return false, err
	}
}

// scanJSON walks every key under prefix in key order.
func scanJSON(txn *badger.Txn, prefix []byte, fn func(key []byte, val []byte) error) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		key := item.KeyCopy(nil)
		if err := item.Value(func(val []byte) error {
			return fn(key, val)
		}); err != nil {
			return err
		}
	}
	return nil
}
