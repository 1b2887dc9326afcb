package repositories

import (
	"encoding/json"
	"fmt"
	"messager/domain"
	"messager/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IRoomRepository interface {
	CreateRoom(room domain.Room) error
	GetRoom(id domain.RoomID) (domain.Room, error)
	AppendMessage(id domain.RoomID, message domain.Message) error
	ListRooms() ([]domain.Room, error)
}

// RoomRepository is the room store.
// The room header lives under "room:{id}" and each message under
// "msg:{id}:{sequence}" where the sequence is zero padded to 19 digits,
// so a prefix scan returns messages in the order they were appended.
type RoomRepository struct {
	txn *badger.Txn
}

type diskRoom struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"`
	CreatedAt    int64     `json:"created_at"`
	MessageCount int64     `json:"message_count"`
}

type diskMessage struct {
	Sender         string `json:"sender"`
	MsgForReceiver string `json:"msg_for_receiver"`
	MsgForSender   string `json:"msg_for_sender"`
	At             int64  `json:"at"`
}

func roomKey(id domain.RoomID) []byte {
	return []byte("room:" + string(id))
}

func messagePrefix(id domain.RoomID) []byte {
	return []byte(fmt.Sprintf("msg:%s:", id))
}

func messageKey(id domain.RoomID, sequence int64) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d", id, sequence))
}

func (r RoomRepository) CreateRoom(room domain.Room) error {
	found, err := exists(r.txn, roomKey(room.ID))
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("%w: %s", errors.ErrRoomExists, room.ID)
	}
	return setJSON(r.txn, roomKey(room.ID), diskRoom{
		ID:           string(room.ID),
		Participants: [2]string{string(room.Participants[0]), string(room.Participants[1])},
		CreatedAt:    room.CreatedAt.UnixNano(),
	})
}

// GetRoom returns the room with its full history.
func (r RoomRepository) GetRoom(id domain.RoomID) (domain.Room, error) {
	header, err := r.loadHeader(id)
	if err != nil {
		return domain.Room{}, err
	}
	room := toRoom(header)
	err = scanJSON(r.txn, messagePrefix(id), func(key, val []byte) error {
		var dm diskMessage
		if err := json.Unmarshal(val, &dm); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		room.PostMessage(toMessage(dm))
		return nil
	})
	if err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

// AppendMessage adds a message at the end of the room log.
// Only the two participants may write to a room.
func (r RoomRepository) AppendMessage(id domain.RoomID, message domain.Message) error {
	header, err := r.loadHeader(id)
	if err != nil {
		return err
	}
	room := toRoom(header)
	if !room.HasParticipant(message.Sender) {
		return fmt.Errorf("%w: %s", errors.ErrAccessDenied, id)
	}

	err = setJSON(r.txn, messageKey(id, header.MessageCount), diskMessage{
		Sender:         string(message.Sender),
		MsgForReceiver: message.MsgForReceiver,
		MsgForSender:   message.MsgForSender,
		At:             message.At.UnixNano(),
	})
	if err != nil {
		return err
	}
	header.MessageCount++
	return setJSON(r.txn, roomKey(id), header)
}

func (r RoomRepository) ListRooms() ([]domain.Room, error) {
	var rooms []domain.Room
	err := scanJSON(r.txn, []byte("room:"), func(key, val []byte) error {
		var header diskRoom
		if err := json.Unmarshal(val, &header); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		rooms = append(rooms, toRoom(header))
		return nil
	})
	return rooms, err
}

func (r RoomRepository) loadHeader(id domain.RoomID) (diskRoom, error) {
	var header diskRoom
	err := getJSON(r.txn, roomKey(id), &header)
	if err == badger.ErrKeyNotFound {
		return diskRoom{}, fmt.Errorf("%w: %s", errors.ErrRoomNotFound, id)
	}
	return header, err
}

func toRoom(header diskRoom) domain.Room {
	return domain.Room{
		ID:           domain.RoomID(header.ID),
		Participants: [2]domain.Address{domain.Address(header.Participants[0]), domain.Address(header.Participants[1])},
		Messages:     []domain.Message{},
		CreatedAt:    time.Unix(0, header.CreatedAt).UTC(),
	}
}

func toMessage(dm diskMessage) domain.Message {
	return domain.Message{
		Sender:         domain.Address(dm.Sender),
		MsgForReceiver: dm.MsgForReceiver,
		MsgForSender:   dm.MsgForSender,
		At:             time.Unix(0, dm.At).UTC(),
	}
}
