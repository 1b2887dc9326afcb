package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// RoomID identifies the private room shared by two friends.
type RoomID string

func (r RoomID) String() string {
	return string(r)
}

// DeriveRoomID returns the identifier of the room between a and b.
// The pair is put in canonical order before hashing so DeriveRoomID(a, b) == DeriveRoomID(b, a).
// Each address is length prefixed: addresses are opaque and may contain any separator.
func DeriveRoomID(a, b Address) RoomID {
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s%d:%s", len(first), first, len(second), second)))
	return RoomID(hex.EncodeToString(sum[:]))
}

type Room struct {
	ID           RoomID
	Participants [2]Address
	Messages     []Message
	CreatedAt    time.Time
}

func NewRoom(a, b Address, at time.Time) *Room {
	return &Room{
		ID:           DeriveRoomID(a, b),
		Participants: [2]Address{a, b},
		CreatedAt:    at,
	}
}

// HasParticipant reports whether the address is one of the two room members.
func (r *Room) HasParticipant(addr Address) bool {
	return r.Participants[0] == addr || r.Participants[1] == addr
}

func (r *Room) PostMessage(message Message) {
	r.Messages = append(r.Messages, message)
}
