package repositories

import (
	"messager/domain"
	"messager/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Establish_Friendship_Is_Symmetric(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)
	room := domain.DeriveRoomID("alice", "bob")

	req.NoError(store.Update(func(tx Tx) error {
		return tx.Friendships().Establish("alice", "bob", room)
	}))

	req.NoError(store.View(func(tx Tx) error {
		friendships := tx.Friendships()

		ofAlice, err := friendships.ListFriends("alice")
		req.NoError(err)
		req.Equal([]domain.Friend{{Address: "bob", RoomID: room}}, ofAlice)

		ofBob, err := friendships.ListFriends("bob")
		req.NoError(err)
		req.Equal([]domain.Friend{{Address: "alice", RoomID: room}}, ofBob)

		fromAlice, err := friendships.RoomID("alice", "bob")
		req.NoError(err)
		fromBob, err := friendships.RoomID("bob", "alice")
		req.NoError(err)
		req.Equal(fromAlice, fromBob)

		ok, err := friendships.AreFriends("bob", "alice")
		req.NoError(err)
		req.True(ok)
		return nil
	}))
}

func Test_Establish_Friendship_Twice(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)
	room := domain.DeriveRoomID("alice", "bob")

	req.NoError(store.Update(func(tx Tx) error {
		return tx.Friendships().Establish("alice", "bob", room)
	}))
	err := store.Update(func(tx Tx) error {
		return tx.Friendships().Establish("bob", "alice", room)
	})
	req.ErrorIs(err, errors.ErrAlreadyFriends)
}

func Test_RoomID_Without_Friendship(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)

	err := store.View(func(tx Tx) error {
		_, err := tx.Friendships().RoomID("alice", "bob")
		return err
	})
	req.ErrorIs(err, errors.ErrNotFriends)
}

func Test_Friends_Keep_Acceptance_Order(t *testing.T) {
	req := require.New(t)
	store, _ := newTestStore(t)

	req.NoError(store.Update(func(tx Tx) error {
		req.NoError(tx.Friendships().Establish("alice", "clara", domain.DeriveRoomID("alice", "clara")))
		return tx.Friendships().Establish("bob", "alice", domain.DeriveRoomID("alice", "bob"))
	}))

	req.NoError(store.View(func(tx Tx) error {
		friends, err := tx.Friendships().ListFriends("alice")
		req.NoError(err)
		req.Len(friends, 2)
		req.Equal(domain.Address("clara"), friends[0].Address)
		req.Equal(domain.Address("bob"), friends[1].Address)
		return nil
	}))
}
