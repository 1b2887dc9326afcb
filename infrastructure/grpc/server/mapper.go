package server

import (
	"messager/domain"
	pb "messager/infrastructure/grpc/messagerpb"

	"github.com/samber/lo"
)

func ToUserResponse(user domain.User) *pb.UserResponse {
	return &pb.UserResponse{
		Owner:     string(user.Owner),
		Name:      user.Name,
		Username:  user.Username,
		Exists:    user.Exists,
		Friends:   toStrings(user.Friends),
		CreatedAt: user.CreatedAt,
	}
}

func ToInvitesResponse(invites []domain.Invite) *pb.InvitesResponse {
	return &pb.InvitesResponse{
		Invites: lo.Map(invites, func(item domain.Invite, _ int) pb.InviteResponse {
			return pb.InviteResponse{
				Sender:  string(item.Sender),
				Message: item.Message,
				SentAt:  item.SentAt,
			}
		}),
	}
}

func ToMessageResponse(message domain.Message) pb.MessageResponse {
	return pb.MessageResponse{
		Sender:         string(message.Sender),
		MsgForReceiver: message.MsgForReceiver,
		MsgForSender:   message.MsgForSender,
		At:             message.At,
	}
}

func ToMessagesResponse(messages []domain.Message) *pb.MessagesResponse {
	return &pb.MessagesResponse{Messages: lo.Map(messages, func(item domain.Message, _ int) pb.MessageResponse {
		return ToMessageResponse(item)
	})}
}

func ToRoomResponse(room domain.Room) *pb.RoomResponse {
	return &pb.RoomResponse{
		RoomID:       string(room.ID),
		Participants: toStrings(room.Participants[:]),
		Messages:     ToMessagesResponse(room.Messages).Messages,
		CreatedAt:    room.CreatedAt,
	}
}

func ToRoomMessage(req pb.SendMessageRequest) domain.RoomMessage {
	return domain.RoomMessage{
		Room:           domain.RoomID(req.Room),
		MsgForReceiver: req.MsgForReceiver,
		MsgForSender:   req.MsgForSender,
	}
}

func toStrings(addresses []domain.Address) []string {
	return lo.Map(addresses, func(item domain.Address, _ int) string {
		return string(item)
	})
}
