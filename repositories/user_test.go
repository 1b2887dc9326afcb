package repositories

import (
	"messager/domain"
	"messager/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Create_And_Get_User(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)
	at := time.Now().UTC()

	err := store.Update(func(tx Tx) error {
		return tx.Users().CreateUser(domain.User{Owner: "addr1", Name: "Alice", Username: "alice123", CreatedAt: at})
	})
	req.NoError(err)

	var user domain.User
	err = store.View(func(tx Tx) error {
		user, err = tx.Users().GetUser("addr1")
		return err
	})
	req.NoError(err)
	req.Equal(domain.Address("addr1"), user.Owner)
	req.Equal("Alice", user.Name)
	req.Equal("alice123", user.Username)
	req.True(user.Exists)
	req.Empty(user.Friends)
	req.True(at.Equal(user.CreatedAt))
}

func Test_Create_User_With_Taken_Username(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)

	req.NoError(store.Update(func(tx Tx) error {
		return tx.Users().CreateUser(domain.User{Owner: "addr1", Name: "Alice", Username: "alice123"})
	}))

	err := store.Update(func(tx Tx) error {
		return tx.Users().CreateUser(domain.User{Owner: "addr2", Name: "Bob", Username: "alice123"})
	})
	req.ErrorIs(err, errors.ErrDuplicateUsername)

	// Nothing of the failed call is visible
	err = store.View(func(tx Tx) error {
		_, err := tx.Users().GetUser("addr2")
		return err
	})
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_Create_User_Twice_For_Same_Address(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)

	req.NoError(store.Update(func(tx Tx) error {
		return tx.Users().CreateUser(domain.User{Owner: "addr1", Name: "Alice", Username: "alice123"})
	}))

	err := store.Update(func(tx Tx) error {
		return tx.Users().CreateUser(domain.User{Owner: "addr1", Name: "Alice", Username: "alice456"})
	})
	req.ErrorIs(err, errors.ErrAccountExists)

	// The second username was not reserved
	err = store.View(func(tx Tx) error {
		_, err := tx.Users().GetUserByUsername("alice456")
		return err
	})
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_Get_User_By_Username(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)

	req.NoError(store.Update(func(tx Tx) error {
		if err := tx.Users().CreateUser(domain.User{Owner: "addr1", Name: "Alice", Username: "alice123"}); err != nil {
			return err
		}
		return tx.Users().CreateUser(domain.User{Owner: "addr2", Name: "Bob", Username: "bob123"})
	}))

	req.NoError(store.View(func(tx Tx) error {
		user, err := tx.Users().GetUserByUsername("bob123")
		req.NoError(err)
		req.Equal(domain.Address("addr2"), user.Owner)

		users, err := tx.Users().ListUsers()
		req.NoError(err)
		req.Len(users, 2)

		found, err := tx.Users().Exists("addr3")
		req.NoError(err)
		req.False(found)
		return nil
	}))
}
