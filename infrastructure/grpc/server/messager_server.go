package server

import (
	"context"
	"log/slog"
	"messager/auth"
	"messager/domain"
	"messager/errors"
	pb "messager/infrastructure/grpc/messagerpb"
	"messager/services"

	"github.com/samber/lo"
)

// MessagerServer exposes the messaging facade over gRPC.
// The caller of every mutating call is the address carried by the bearer token.
type MessagerServer struct {
	pb.UnimplementedMessagerServiceServer
	log             *slog.Logger
	messagerService services.IMessagerService
}

func NewMessagerServer(log *slog.Logger, messagerService services.IMessagerService) *MessagerServer {
	return &MessagerServer{log: log, messagerService: messagerService}
}

func (s *MessagerServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.UserResponse, error) {
	caller, err := auth.CallerFromContext(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	user, err := s.messagerService.CreateAccount(ctx, domain.CreateAccountCommand{
		Caller:   caller,
		Name:     req.Name,
		Username: req.Username,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return ToUserResponse(user), nil
}

func (s *MessagerServer) SendInvite(ctx context.Context, req *pb.SendInviteRequest) (*pb.Empty, error) {
	caller, err := auth.CallerFromContext(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	err = s.messagerService.SendInvite(ctx, domain.SendInviteCommand{
		Caller:  caller,
		To:      domain.Address(req.To),
		Message: req.Message,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Empty{}, nil
}

func (s *MessagerServer) AcceptInvite(ctx context.Context, req *pb.AcceptInviteRequest) (*pb.RoomIDResponse, error) {
	caller, err := auth.CallerFromContext(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	roomID, err := s.messagerService.AcceptInvite(ctx, domain.AcceptInviteCommand{
		Caller: caller,
		From:   domain.Address(req.From),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RoomIDResponse{RoomID: string(roomID)}, nil
}

func (s *MessagerServer) GetInvites(ctx context.Context, req *pb.AddressRequest) (*pb.InvitesResponse, error) {
	who, err := targetOrCaller(ctx, req.Address)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	invites, err := s.messagerService.GetInvites(ctx, who)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return ToInvitesResponse(invites), nil
}

func (s *MessagerServer) GetFriends(ctx context.Context, req *pb.AddressRequest) (*pb.FriendsResponse, error) {
	who, err := targetOrCaller(ctx, req.Address)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	friends, err := s.messagerService.GetFriends(ctx, who)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FriendsResponse{Friends: toStrings(friends)}, nil
}

func (s *MessagerServer) GetFriendRoom(ctx context.Context, req *pb.FriendRoomRequest) (*pb.RoomIDResponse, error) {
	who, err := targetOrCaller(ctx, req.Address)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	roomID, err := s.messagerService.FriendRoomID(ctx, who, domain.Address(req.Friend))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RoomIDResponse{RoomID: string(roomID)}, nil
}

func (s *MessagerServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageResponse, error) {
	caller, err := auth.CallerFromContext(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	message, err := s.messagerService.SendMessage(ctx, domain.SendMessageCommand{
		Caller:  caller,
		Message: ToRoomMessage(*req),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return lo.ToPtr(ToMessageResponse(message)), nil
}

func (s *MessagerServer) SendMultipleMessages(ctx context.Context, req *pb.SendMultipleMessagesRequest) (*pb.MessagesResponse, error) {
	caller, err := auth.CallerFromContext(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	messages, err := s.messagerService.SendMultipleMessages(ctx, domain.SendMultipleMessagesCommand{
		Caller:   caller,
		Messages: lo.Map(req.Messages, func(item pb.SendMessageRequest, _ int) domain.RoomMessage { return ToRoomMessage(item) }),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return ToMessagesResponse(messages), nil
}

func (s *MessagerServer) GetRoom(ctx context.Context, req *pb.GetRoomRequest) (*pb.RoomResponse, error) {
	room, err := s.messagerService.GetRoom(ctx, domain.RoomID(req.RoomID))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return ToRoomResponse(room), nil
}

func (s *MessagerServer) GetUser(ctx context.Context, req *pb.AddressRequest) (*pb.UserResponse, error) {
	who, err := targetOrCaller(ctx, req.Address)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	user, err := s.messagerService.GetUser(ctx, who)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return ToUserResponse(user), nil
}

func (s *MessagerServer) GetUserByUsername(ctx context.Context, req *pb.UsernameRequest) (*pb.UserResponse, error) {
	user, err := s.messagerService.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return ToUserResponse(user), nil
}

// targetOrCaller resolves the address a read applies to.
func targetOrCaller(ctx context.Context, address string) (domain.Address, error) {
	if address != "" {
		return domain.Address(address), nil
	}
	return auth.CallerFromContext(ctx)
}
