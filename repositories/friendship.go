package repositories

import (
	"fmt"
	"messager/domain"
	"messager/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IFriendshipRepository interface {
	Establish(a, b domain.Address, room domain.RoomID) error
	ListFriends(addr domain.Address) ([]domain.Friend, error)
	RoomID(addr, friend domain.Address) (domain.RoomID, error)
	AreFriends(a, b domain.Address) (bool, error)
}

// FriendshipRepository stores each user's friends in acceptance order
// under "friends:{address}", together with the room shared with each of them.
type FriendshipRepository struct {
	txn *badger.Txn
}

type diskFriend struct {
	Address string `json:"address"`
	RoomID  string `json:"room_id"`
}

func friendsKey(addr domain.Address) []byte {
	return []byte("friends:" + string(addr))
}

// Establish records the edge on both sides with the same room.
func (f FriendshipRepository) Establish(a, b domain.Address, room domain.RoomID) error {
	friendsOfA, err := f.load(a)
	if err != nil {
		return err
	}
	friendsOfB, err := f.load(b)
	if err != nil {
		return err
	}
	if containsFriend(friendsOfA, b) || containsFriend(friendsOfB, a) {
		return fmt.Errorf("%w: %s and %s", errors.ErrAlreadyFriends, a, b)
	}

	friendsOfA = append(friendsOfA, diskFriend{Address: string(b), RoomID: string(room)})
	friendsOfB = append(friendsOfB, diskFriend{Address: string(a), RoomID: string(room)})
	if err = setJSON(f.txn, friendsKey(a), friendsOfA); err != nil {
		return err
	}
	return setJSON(f.txn, friendsKey(b), friendsOfB)
}

func (f FriendshipRepository) ListFriends(addr domain.Address) ([]domain.Friend, error) {
	friends, err := f.load(addr)
	if err != nil {
		return nil, err
	}
	return lo.Map(friends, func(item diskFriend, _ int) domain.Friend {
		return domain.Friend{Address: domain.Address(item.Address), RoomID: domain.RoomID(item.RoomID)}
	}), nil
}

func (f FriendshipRepository) RoomID(addr, friend domain.Address) (domain.RoomID, error) {
	friends, err := f.load(addr)
	if err != nil {
		return "", err
	}
	found, ok := lo.Find(friends, func(item diskFriend) bool {
		return item.Address == string(friend)
	})
	if !ok {
		return "", fmt.Errorf("%w: %s and %s", errors.ErrNotFriends, addr, friend)
	}
	return domain.RoomID(found.RoomID), nil
}

func (f FriendshipRepository) AreFriends(a, b domain.Address) (bool, error) {
	friends, err := f.load(a)
	if err != nil {
		return false, err
	}
	return containsFriend(friends, b), nil
}

func (f FriendshipRepository) load(addr domain.Address) ([]diskFriend, error) {
	friends := []diskFriend{}
	err := getJSON(f.txn, friendsKey(addr), &friends)
	if err == badger.ErrKeyNotFound {
		return []diskFriend{}, nil
	}
	return friends, err
}

func containsFriend(friends []diskFriend, addr domain.Address) bool {
	return lo.ContainsBy(friends, func(item diskFriend) bool {
		return item.Address == string(addr)
	})
}
