//go:generate go run go.uber.org/mock/mockgen -source=identity.go -destination=../mocks/mock_identity_repository.go -package=mocks
package repositories

import (
	"fmt"
	"messager/domain"
	"messager/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IIdentityRepository interface {
	CreateIdentity(handle, hashedPassword string) (domain.Address, error)
	GetIdentity(handle string) (Identity, error)
}

// IdentityRepository holds the credentials used to obtain a caller address.
// It is independent from the messaging state and writes in its own transactions.
type IdentityRepository struct {
	db *badger.DB
}

func NewIdentityRepository(db *badger.DB) IIdentityRepository {
	return &IdentityRepository{db: db}
}

// Identity is the credential record bound to a caller address.
type Identity struct {
	Address      domain.Address
	Handle       string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

type diskIdentity struct {
	Address      string   `json:"address"`
	Handle       string   `json:"handle"`
	PasswordHash string   `json:"password_hash"`
	Roles        []string `json:"roles"`
	CreatedAt    int64    `json:"created_at"`
}

func identityKey(handle string) []byte {
	return []byte("identity:" + handle)
}

// CreateIdentity persists the credentials and returns the newly generated address.
func (i IdentityRepository) CreateIdentity(handle, hashedPassword string) (domain.Address, error) {
	address := domain.Address(uuid.NewString())
	err := i.db.Update(func(txn *badger.Txn) error {
		found, err := exists(txn, identityKey(handle))
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("%w: %s", errors.ErrIdentityAlreadyExists, handle)
		}
		return setJSON(txn, identityKey(handle), diskIdentity{
			Address:      string(address),
			Handle:       handle,
			PasswordHash: hashedPassword,
			Roles:        []string{"user"},
			CreatedAt:    time.Now().UnixNano(),
		})
	})
	// Only the identity key is read, so a conflict means the same handle was committed concurrently
	if errors.Is(err, badger.ErrConflict) {
		return "", fmt.Errorf("%w: %s", errors.ErrIdentityAlreadyExists, handle)
	}
	if err != nil {
		return "", err
	}
	return address, nil
}

func (i IdentityRepository) GetIdentity(handle string) (Identity, error) {
	var di diskIdentity
	err := i.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, identityKey(handle), &di)
	})
	if err == badger.ErrKeyNotFound {
		return Identity{}, fmt.Errorf("%w: %s", errors.ErrInvalidCredentials, handle)
	}
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		Address:      domain.Address(di.Address),
		Handle:       di.Handle,
		PasswordHash: di.PasswordHash,
		Roles:        di.Roles,
		CreatedAt:    time.Unix(0, di.CreatedAt).UTC(),
	}, nil
}
