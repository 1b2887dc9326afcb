package domain

// Limits enforced by the validate tags below. Lengths are counted in bytes.
const (
	MaxNameBytes     = 64
	MaxUsernameBytes = 32
	MaxInviteBytes   = 280
	MaxMessageBytes  = 4096
	MaxBatchSize     = 256
)

// CreateAccountCommand registers the caller under a unique username.
type CreateAccountCommand struct {
	Caller   Address `validate:"required"`
	Name     string  `validate:"required,maxbytes=64"`
	Username string  `validate:"required,maxbytes=32,username"`
}

type SendInviteCommand struct {
	Caller  Address `validate:"required"`
	To      Address `validate:"required"`
	Message string  `validate:"maxbytes=280"`
}

type AcceptInviteCommand struct {
	Caller Address `validate:"required"`
	From   Address `validate:"required"`
}

// RoomMessage is one entry of a message send, single or batched.
type RoomMessage struct {
	Room           RoomID `validate:"required"`
	MsgForReceiver string `validate:"maxbytes=4096"`
	MsgForSender   string `validate:"maxbytes=4096"`
}

type SendMessageCommand struct {
	Caller  Address `validate:"required"`
	Message RoomMessage
}

// SendMultipleMessagesCommand is applied all-or-nothing.
// The batch size is capped so one call always fits in a single store transaction.
type SendMultipleMessagesCommand struct {
	Caller   Address       `validate:"required"`
	Messages []RoomMessage `validate:"required,min=1,max=256,dive"`
}
