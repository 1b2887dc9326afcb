package repositories

import (
	"encoding/json"
	"fmt"
	"messager/domain"
	"messager/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	CreateUser(user domain.User) error
	GetUser(addr domain.Address) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	Exists(addr domain.Address) (bool, error)
	ListUsers() ([]domain.User, error)
}

// UserRepository is the identity registry.
// Users live under "user:{address}" and the username index under "username:{username}".
// Friend lists are owned by FriendshipRepository and are not filled here.
type UserRepository struct {
	txn *badger.Txn
}

type diskUser struct {
	Owner     string `json:"owner"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	CreatedAt int64  `json:"created_at"`
}

func userKey(addr domain.Address) []byte {
	return []byte("user:" + string(addr))
}

func usernameKey(username string) []byte {
	return []byte("username:" + username)
}

// CreateUser stores a new user and reserves its username.
// The username is checked first so a taken username is reported even for an existing caller.
func (u UserRepository) CreateUser(user domain.User) error {
	taken, err := exists(u.txn, usernameKey(user.Username))
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateUsername, user.Username)
	}

	registered, err := exists(u.txn, userKey(user.Owner))
	if err != nil {
		return err
	}
	if registered {
		return fmt.Errorf("%w: %s", errors.ErrAccountExists, user.Owner)
	}

	if err = setJSON(u.txn, userKey(user.Owner), fromUser(user)); err != nil {
		return err
	}
	return u.txn.Set(usernameKey(user.Username), []byte(user.Owner))
}

func (u UserRepository) GetUser(addr domain.Address) (domain.User, error) {
	var du diskUser
	err := getJSON(u.txn, userKey(addr), &du)
	if err == badger.ErrKeyNotFound {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, addr)
	}
	if err != nil {
		return domain.User{}, err
	}
	return toUser(du), nil
}

func (u UserRepository) GetUserByUsername(username string) (domain.User, error) {
	item, err := u.txn.Get(usernameKey(username))
	if err == badger.ErrKeyNotFound {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, username)
	}
	if err != nil {
		return domain.User{}, err
	}
	owner, err := item.ValueCopy(nil)
	if err != nil {
		return domain.User{}, err
	}
	return u.GetUser(domain.Address(owner))
}

func (u UserRepository) Exists(addr domain.Address) (bool, error) {
	return exists(u.txn, userKey(addr))
}

func (u UserRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User
	err := scanJSON(u.txn, []byte("user:"), func(key, val []byte) error {
		var du diskUser
		if err := json.Unmarshal(val, &du); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		users = append(users, toUser(du))
		return nil
	})
	return users, err
}

func fromUser(user domain.User) diskUser {
	return diskUser{
		Owner:     string(user.Owner),
		Name:      user.Name,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.UnixNano(),
	}
}

func toUser(du diskUser) domain.User {
	return domain.User{
		Owner:     domain.Address(du.Owner),
		Name:      du.Name,
		Username:  du.Username,
		Exists:    true,
		Friends:   []domain.Address{},
		CreatedAt: time.Unix(0, du.CreatedAt).UTC(),
	}
}
