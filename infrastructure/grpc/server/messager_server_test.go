package server_test

import (
	"context"
	"log/slog"
	"messager/auth"
	"messager/domain"
	"messager/errors"
	pb "messager/infrastructure/grpc/messagerpb"
	"messager/infrastructure/grpc/server"
	"messager/mocks"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const (
	alice = domain.Address("0xalice")
	bob   = domain.Address("0xbob")
)

type harness struct {
	messager pb.MessagerServiceClient
	auth     pb.AuthServiceClient
	service  *mocks.MockIMessagerService
	authSvc  *mocks.MockIAuthService
	issuer   *auth.TokenIssuer
}

func newHarness(t *testing.T) harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	service := mocks.NewMockIMessagerService(ctrl)
	authSvc := mocks.NewMockIAuthService(ctrl)

	listener := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(auth.AuthInterceptor(issuer, pb.PublicMethods...)))
	pb.RegisterMessagerServiceServer(s, server.NewMessagerServer(log, service))
	pb.RegisterAuthServiceServer(s, server.NewAuthServer(log, authSvc))
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		pb.WithJSON(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return harness{
		messager: pb.NewMessagerServiceClient(conn),
		auth:     pb.NewAuthServiceClient(conn),
		service:  service,
		authSvc:  authSvc,
		issuer:   issuer,
	}
}

func (h harness) as(t *testing.T, addr domain.Address) context.Context {
	t.Helper()
	token, err := h.issuer.GenerateToken(addr, []string{"user"})
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestMessagerServer_RejectsCallsWithoutToken(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	_, err := h.messager.SendMessage(context.Background(), &pb.SendMessageRequest{Room: "room", MsgForReceiver: "hi"})

	req.Equal(codes.Unauthenticated, status.Code(err))
}

func TestMessagerServer_CreateAccount_UsesTokenAddressAsCaller(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	h.service.EXPECT().
		CreateAccount(gomock.Any(), domain.CreateAccountCommand{Caller: alice, Name: "Alice", Username: "alice"}).
		Return(domain.User{Owner: alice, Name: "Alice", Username: "alice", Exists: true, Friends: []domain.Address{}, CreatedAt: createdAt}, nil)

	resp, err := h.messager.CreateAccount(h.as(t, alice), &pb.CreateAccountRequest{Name: "Alice", Username: "alice"})

	req.NoError(err)
	req.Equal(string(alice), resp.Owner)
	req.Equal("alice", resp.Username)
	req.True(resp.Exists)
	req.Empty(resp.Friends)
	req.True(createdAt.Equal(resp.CreatedAt))
}

func TestMessagerServer_MapsDomainErrorsToStatus(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "duplicate username", err: errors.ErrDuplicateUsername, code: codes.AlreadyExists},
		{name: "unknown room", err: errors.ErrRoomNotFound, code: codes.NotFound},
		{name: "outsider", err: errors.ErrAccessDenied, code: codes.PermissionDenied},
		{name: "invalid payload", err: errors.ErrInvalidPayload, code: codes.InvalidArgument},
		{name: "storage failure", err: context.DeadlineExceeded, code: codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			h.service.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(domain.Message{}, tt.err)

			_, err := h.messager.SendMessage(h.as(t, alice), &pb.SendMessageRequest{Room: "room", MsgForReceiver: "hi"})

			req.Equal(tt.code, status.Code(err))
			if tt.code != codes.Internal {
				req.ErrorIs(errors.FromGRPCError(err), tt.err)
			}
		})
	}
}

func TestMessagerServer_SendMultipleMessages_KeepsOrder(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	room := domain.DeriveRoomID(alice, bob)

	h.service.EXPECT().
		SendMultipleMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.SendMultipleMessagesCommand) ([]domain.Message, error) {
			req.Equal(alice, cmd.Caller)
			req.Len(cmd.Messages, 2)
			req.Equal("first", cmd.Messages[0].MsgForReceiver)
			req.Equal("second", cmd.Messages[1].MsgForReceiver)
			return []domain.Message{
				{Sender: alice, MsgForReceiver: "first"},
				{Sender: alice, MsgForReceiver: "second"},
			}, nil
		})

	resp, err := h.messager.SendMultipleMessages(h.as(t, alice), &pb.SendMultipleMessagesRequest{
		Messages: []pb.SendMessageRequest{
			{Room: string(room), MsgForReceiver: "first"},
			{Room: string(room), MsgForReceiver: "second"},
		},
	})

	req.NoError(err)
	req.Len(resp.Messages, 2)
	req.Equal("first", resp.Messages[0].MsgForReceiver)
	req.Equal("second", resp.Messages[1].MsgForReceiver)
}

func TestMessagerServer_Reads_DefaultToCaller(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	h.service.EXPECT().GetFriends(gomock.Any(), alice).Return([]domain.Address{bob}, nil)
	h.service.EXPECT().GetInvites(gomock.Any(), bob).Return([]domain.Invite{{Sender: alice, Message: "hi"}}, nil)

	friends, err := h.messager.GetFriends(h.as(t, alice), &pb.AddressRequest{})
	req.NoError(err)
	req.Equal([]string{string(bob)}, friends.Friends)

	invites, err := h.messager.GetInvites(h.as(t, alice), &pb.AddressRequest{Address: string(bob)})
	req.NoError(err)
	req.Len(invites.Invites, 1)
	req.Equal(string(alice), invites.Invites[0].Sender)
}

func TestMessagerServer_GetRoom(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	room := domain.NewRoom(alice, bob, time.Now().UTC())
	room.PostMessage(domain.Message{Sender: alice, MsgForReceiver: "Hello", MsgForSender: "Hello"})

	h.service.EXPECT().GetRoom(gomock.Any(), room.ID).Return(*room, nil)

	resp, err := h.messager.GetRoom(h.as(t, bob), &pb.GetRoomRequest{RoomID: string(room.ID)})

	req.NoError(err)
	req.Equal(string(room.ID), resp.RoomID)
	req.ElementsMatch([]string{string(alice), string(bob)}, resp.Participants)
	req.Len(resp.Messages, 1)
	req.Equal("Hello", resp.Messages[0].MsgForReceiver)
}

func TestAuthServer_RegisterAndLogin_ArePublic(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	h.authSvc.EXPECT().Register("alice", "ComplexPass123!").Return(auth.Token("token-1"), alice, nil)
	h.authSvc.EXPECT().Login("alice", "ComplexPass123!").Return(auth.Token("token-2"), nil)
	h.authSvc.EXPECT().Login("alice", "wrong").Return(auth.Token(""), errors.ErrInvalidCredentials)

	registered, err := h.auth.Register(context.Background(), &pb.RegisterRequest{Handle: "alice", Password: "ComplexPass123!"})
	req.NoError(err)
	req.Equal("token-1", registered.Token)
	req.Equal(string(alice), registered.UserID)

	logged, err := h.auth.Login(context.Background(), &pb.LoginRequest{Handle: "alice", Password: "ComplexPass123!"})
	req.NoError(err)
	req.Equal("token-2", logged.Token)

	_, err = h.auth.Login(context.Background(), &pb.LoginRequest{Handle: "alice", Password: "wrong"})
	req.Equal(codes.Unauthenticated, status.Code(err))
}
