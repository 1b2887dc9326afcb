package e2e

import (
	"context"
	"net/http"
	"testing"

	"messager/domain"
	pb "messager/infrastructure/grpc/messagerpb"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testFriendshipSuite struct {
	BaseGrpcSuite
}

func TestFriendshipSuite(t *testing.T) {
	suite.Run(t, &testFriendshipSuite{})
}

type participant struct {
	handle  string
	token   string
	address string
}

func (s *testFriendshipSuite) register(name string) participant {
	// Unique per run so the suite can be replayed against the same database
	p := participant{handle: name + uuid.NewString()[:8]}
	s.WithAuth("register "+name, func(ctx context.Context, client pb.AuthServiceClient) {
		resp, err := client.Register(ctx, &pb.RegisterRequest{Handle: p.handle, Password: "ComplexPass123!"})
		s.Require().NoError(err)
		p.token, p.address = resp.Token, resp.UserID
	})
	return p
}

func (s *testFriendshipSuite) TestInviteAcceptAndChat() {
	alice := s.register("alice")
	bob := s.register("bob")
	var roomID string

	s.Run("Step 1: both users open an account", func() {
		for _, p := range []participant{alice, bob} {
			s.WithMessager("create account "+p.handle, p.token, func(ctx context.Context, client pb.MessagerServiceClient) {
				user, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{Name: p.handle, Username: p.handle})
				s.Require().NoError(err)
				s.Require().Equal(p.address, user.Owner)
			})
		}
	})

	s.Run("Step 2: Alice invites Bob who accepts", func() {
		s.WithMessager("invite", alice.token, func(ctx context.Context, client pb.MessagerServiceClient) {
			_, err := client.SendInvite(ctx, &pb.SendInviteRequest{To: bob.address, Message: "hey"})
			s.Require().NoError(err)
		})
		s.WithMessager("accept", bob.token, func(ctx context.Context, client pb.MessagerServiceClient) {
			resp, err := client.AcceptInvite(ctx, &pb.AcceptInviteRequest{From: alice.address})
			s.Require().NoError(err)
			roomID = resp.RoomID
		})
		s.Require().Equal(string(domain.DeriveRoomID(domain.Address(alice.address), domain.Address(bob.address))), roomID)
	})

	s.Run("Step 3: messages are read back in order", func() {
		s.WithMessager("send", alice.token, func(ctx context.Context, client pb.MessagerServiceClient) {
			_, err := client.SendMultipleMessages(ctx, &pb.SendMultipleMessagesRequest{Messages: []pb.SendMessageRequest{
				{Room: roomID, MsgForReceiver: "one", MsgForSender: "one"},
				{Room: roomID, MsgForReceiver: "two", MsgForSender: "two"},
			}})
			s.Require().NoError(err)
		})
		s.WithMessager("read", bob.token, func(ctx context.Context, client pb.MessagerServiceClient) {
			room, err := client.GetRoom(ctx, &pb.GetRoomRequest{RoomID: roomID})
			s.Require().NoError(err)
			s.Require().Len(room.Messages, 2)
			s.Require().Equal("one", room.Messages[0].MsgForReceiver)
			s.Require().Equal("two", room.Messages[1].MsgForReceiver)
		})
	})

	s.Run("Step 4: an outsider cannot write", func() {
		eve := s.register("eve")
		s.WithMessager("intrude", eve.token, func(ctx context.Context, client pb.MessagerServiceClient) {
			_, err := client.SendMessage(ctx, &pb.SendMessageRequest{Room: roomID, MsgForReceiver: "hi"})
			s.Require().Equal(codes.PermissionDenied, status.Code(err))
		})
	})
}

func (s *testFriendshipSuite) TestGatewayHealth() {
	if s.Config.GatewayURL == "" {
		s.T().Skip("GATEWAY_URL is not set")
	}
	resp, err := resty.New().SetBaseURL(s.Config.GatewayURL).R().Get("/health")
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, resp.StatusCode())
}
