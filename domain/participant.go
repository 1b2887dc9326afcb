// Package domain contains core concepts of the messaging system.
// This file defines the caller identity and user records.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

// Address is the opaque identity of whoever invokes an operation.
// It is supplied by the transport layer and never authenticated here.
type Address string

func (a Address) String() string {
	return string(a)
}

// User is the public record of a registered account.
type User struct {
	Owner     Address
	Name      string
	Username  string
	Exists    bool
	Friends   []Address
	CreatedAt time.Time
}

// Friend is one side of an accepted friendship edge.
type Friend struct {
	Address Address
	RoomID  RoomID
}

// Invite is a pending, one-directional friend request.
type Invite struct {
	Sender  Address
	Message string
	SentAt  time.Time
}
