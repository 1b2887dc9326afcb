// Package messagerpb holds the wire contract of the messager gRPC services.
package messagerpb

import "time"

type CreateAccountRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type UserResponse struct {
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Exists    bool      `json:"exists"`
	Friends   []string  `json:"friends"`
	CreatedAt time.Time `json:"created_at"`
}

type SendInviteRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type AcceptInviteRequest struct {
	From string `json:"from"`
}

// AddressRequest targets a user. An empty address means the caller.
type AddressRequest struct {
	Address string `json:"address"`
}

type UsernameRequest struct {
	Username string `json:"username"`
}

type FriendRoomRequest struct {
	Address string `json:"address"`
	Friend  string `json:"friend"`
}

type RoomIDResponse struct {
	RoomID string `json:"room_id"`
}

type InviteResponse struct {
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

type InvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
}

type FriendsResponse struct {
	Friends []string `json:"friends"`
}

type SendMessageRequest struct {
	Room           string `json:"room"`
	MsgForReceiver string `json:"msg_for_receiver"`
	MsgForSender   string `json:"msg_for_sender"`
}

type SendMultipleMessagesRequest struct {
	Messages []SendMessageRequest `json:"messages"`
}

type MessageResponse struct {
	Sender         string    `json:"sender"`
	MsgForReceiver string    `json:"msg_for_receiver"`
	MsgForSender   string    `json:"msg_for_sender"`
	At             time.Time `json:"at"`
}

type MessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type GetRoomRequest struct {
	RoomID string `json:"room_id"`
}

type RoomResponse struct {
	RoomID       string            `json:"room_id"`
	Participants []string          `json:"participants"`
	Messages     []MessageResponse `json:"messages"`
	CreatedAt    time.Time         `json:"created_at"`
}

type Empty struct{}

type RegisterRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
