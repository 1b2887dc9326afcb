// Package domain contains core concepts of the messaging system.
// This file defines Message events and related rules.
// Messages are immutable once appended to a room.
package domain

import "time"

// Message carries two renderings of the same text: one for the receiver
// and one kept for the sender's own view of the conversation.
type Message struct {
	Sender         Address
	MsgForReceiver string
	MsgForSender   string
	At             time.Time
}
