package messagerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	MessagerServiceName = "messager.v1.MessagerService"
	AuthServiceName     = "messager.v1.AuthService"
)

const (
	MessagerService_CreateAccount_FullMethodName        = "/messager.v1.MessagerService/CreateAccount"
	MessagerService_SendInvite_FullMethodName           = "/messager.v1.MessagerService/SendInvite"
	MessagerService_AcceptInvite_FullMethodName         = "/messager.v1.MessagerService/AcceptInvite"
	MessagerService_GetInvites_FullMethodName           = "/messager.v1.MessagerService/GetInvites"
	MessagerService_GetFriends_FullMethodName           = "/messager.v1.MessagerService/GetFriends"
	MessagerService_GetFriendRoom_FullMethodName        = "/messager.v1.MessagerService/GetFriendRoom"
	MessagerService_SendMessage_FullMethodName          = "/messager.v1.MessagerService/SendMessage"
	MessagerService_SendMultipleMessages_FullMethodName = "/messager.v1.MessagerService/SendMultipleMessages"
	MessagerService_GetRoom_FullMethodName              = "/messager.v1.MessagerService/GetRoom"
	MessagerService_GetUser_FullMethodName              = "/messager.v1.MessagerService/GetUser"
	MessagerService_GetUserByUsername_FullMethodName    = "/messager.v1.MessagerService/GetUserByUsername"

	AuthService_Register_FullMethodName = "/messager.v1.AuthService/Register"
	AuthService_Login_FullMethodName    = "/messager.v1.AuthService/Login"
)

// PublicMethods are served without a bearer token.
var PublicMethods = []string{
	AuthService_Register_FullMethodName,
	AuthService_Login_FullMethodName,
}

type MessagerServiceClient interface {
	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*UserResponse, error)
	SendInvite(ctx context.Context, in *SendInviteRequest, opts ...grpc.CallOption) (*Empty, error)
	AcceptInvite(ctx context.Context, in *AcceptInviteRequest, opts ...grpc.CallOption) (*RoomIDResponse, error)
	GetInvites(ctx context.Context, in *AddressRequest, opts ...grpc.CallOption) (*InvitesResponse, error)
	GetFriends(ctx context.Context, in *AddressRequest, opts ...grpc.CallOption) (*FriendsResponse, error)
	GetFriendRoom(ctx context.Context, in *FriendRoomRequest, opts ...grpc.CallOption) (*RoomIDResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	SendMultipleMessages(ctx context.Context, in *SendMultipleMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error)
	GetRoom(ctx context.Context, in *GetRoomRequest, opts ...grpc.CallOption) (*RoomResponse, error)
	GetUser(ctx context.Context, in *AddressRequest, opts ...grpc.CallOption) (*UserResponse, error)
	GetUserByUsername(ctx context.Context, in *UsernameRequest, opts ...grpc.CallOption) (*UserResponse, error)
}

type messagerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMessagerServiceClient(cc grpc.ClientConnInterface) MessagerServiceClient {
	return &messagerServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messagerServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, MessagerService_CreateAccount_FullMethodName, in, opts)
}

func (c *messagerServiceClient) SendInvite(ctx context.Context, in *SendInviteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MessagerService_SendInvite_FullMethodName, in, opts)
}

func (c *messagerServiceClient) AcceptInvite(ctx context.Context, in *AcceptInviteRequest, opts ...grpc.CallOption) (*RoomIDResponse, error) {
	return invoke[RoomIDResponse](ctx, c.cc, MessagerService_AcceptInvite_FullMethodName, in, opts)
}

func (c *messagerServiceClient) GetInvites(ctx context.Context, in *AddressRequest, opts ...grpc.CallOption) (*InvitesResponse, error) {
	return invoke[InvitesResponse](ctx, c.cc, MessagerService_GetInvites_FullMethodName, in, opts)
}

func (c *messagerServiceClient) GetFriends(ctx context.Context, in *AddressRequest, opts ...grpc.CallOption) (*FriendsResponse, error) {
	return invoke[FriendsResponse](ctx, c.cc, MessagerService_GetFriends_FullMethodName, in, opts)
}

func (c *messagerServiceClient) GetFriendRoom(ctx context.Context, in *FriendRoomRequest, opts ...grpc.CallOption) (*RoomIDResponse, error) {
	return invoke[RoomIDResponse](ctx, c.cc, MessagerService_GetFriendRoom_FullMethodName, in, opts)
}

func (c *messagerServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MessagerService_SendMessage_FullMethodName, in, opts)
}

func (c *messagerServiceClient) SendMultipleMessages(ctx context.Context, in *SendMultipleMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error) {
	return invoke[MessagesResponse](ctx, c.cc, MessagerService_SendMultipleMessages_FullMethodName, in, opts)
}

func (c *messagerServiceClient) GetRoom(ctx context.Context, in *GetRoomRequest, opts ...grpc.CallOption) (*RoomResponse, error) {
	return invoke[RoomResponse](ctx, c.cc, MessagerService_GetRoom_FullMethodName, in, opts)
}

func (c *messagerServiceClient) GetUser(ctx context.Context, in *AddressRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, MessagerService_GetUser_FullMethodName, in, opts)
}

func (c *messagerServiceClient) GetUserByUsername(ctx context.Context, in *UsernameRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, MessagerService_GetUserByUsername_FullMethodName, in, opts)
}

type MessagerServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*UserResponse, error)
	SendInvite(context.Context, *SendInviteRequest) (*Empty, error)
	AcceptInvite(context.Context, *AcceptInviteRequest) (*RoomIDResponse, error)
	GetInvites(context.Context, *AddressRequest) (*InvitesResponse, error)
	GetFriends(context.Context, *AddressRequest) (*FriendsResponse, error)
	GetFriendRoom(context.Context, *FriendRoomRequest) (*RoomIDResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error)
	SendMultipleMessages(context.Context, *SendMultipleMessagesRequest) (*MessagesResponse, error)
	GetRoom(context.Context, *GetRoomRequest) (*RoomResponse, error)
	GetUser(context.Context, *AddressRequest) (*UserResponse, error)
	GetUserByUsername(context.Context, *UsernameRequest) (*UserResponse, error)
}

// UnimplementedMessagerServiceServer can be embedded to keep servers
// compiling when methods are added to the service.
type UnimplementedMessagerServiceServer struct{}

func (UnimplementedMessagerServiceServer) CreateAccount(context.Context, *CreateAccountRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedMessagerServiceServer) SendInvite(context.Context, *SendInviteRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SendInvite not implemented")
}
func (UnimplementedMessagerServiceServer) AcceptInvite(context.Context, *AcceptInviteRequest) (*RoomIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptInvite not implemented")
}
func (UnimplementedMessagerServiceServer) GetInvites(context.Context, *AddressRequest) (*InvitesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvites not implemented")
}
func (UnimplementedMessagerServiceServer) GetFriends(context.Context, *AddressRequest) (*FriendsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFriends not implemented")
}
func (UnimplementedMessagerServiceServer) GetFriendRoom(context.Context, *FriendRoomRequest) (*RoomIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFriendRoom not implemented")
}
func (UnimplementedMessagerServiceServer) SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedMessagerServiceServer) SendMultipleMessages(context.Context, *SendMultipleMessagesRequest) (*MessagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMultipleMessages not implemented")
}
func (UnimplementedMessagerServiceServer) GetRoom(context.Context, *GetRoomRequest) (*RoomResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRoom not implemented")
}
func (UnimplementedMessagerServiceServer) GetUser(context.Context, *AddressRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedMessagerServiceServer) GetUserByUsername(context.Context, *UsernameRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserByUsername not implemented")
}

func RegisterMessagerServiceServer(s grpc.ServiceRegistrar, srv MessagerServiceServer) {
	s.RegisterService(&MessagerService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler,
// running the interceptor chain the same way generated stubs do.
func unaryHandler[S any, Req any, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var MessagerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MessagerServiceName,
	HandlerType: (*MessagerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAccount", Handler: unaryHandler(MessagerService_CreateAccount_FullMethodName, MessagerServiceServer.CreateAccount)},
		{MethodName: "SendInvite", Handler: unaryHandler(MessagerService_SendInvite_FullMethodName, MessagerServiceServer.SendInvite)},
		{MethodName: "AcceptInvite", Handler: unaryHandler(MessagerService_AcceptInvite_FullMethodName, MessagerServiceServer.AcceptInvite)},
		{MethodName: "GetInvites", Handler: unaryHandler(MessagerService_GetInvites_FullMethodName, MessagerServiceServer.GetInvites)},
		{MethodName: "GetFriends", Handler: unaryHandler(MessagerService_GetFriends_FullMethodName, MessagerServiceServer.GetFriends)},
		{MethodName: "GetFriendRoom", Handler: unaryHandler(MessagerService_GetFriendRoom_FullMethodName, MessagerServiceServer.GetFriendRoom)},
		{MethodName: "SendMessage", Handler: unaryHandler(MessagerService_SendMessage_FullMethodName, MessagerServiceServer.SendMessage)},
		{MethodName: "SendMultipleMessages", Handler: unaryHandler(MessagerService_SendMultipleMessages_FullMethodName, MessagerServiceServer.SendMultipleMessages)},
		{MethodName: "GetRoom", Handler: unaryHandler(MessagerService_GetRoom_FullMethodName, MessagerServiceServer.GetRoom)},
		{MethodName: "GetUser", Handler: unaryHandler(MessagerService_GetUser_FullMethodName, MessagerServiceServer.GetUser)},
		{MethodName: "GetUserByUsername", Handler: unaryHandler(MessagerService_GetUserByUsername_FullMethodName, MessagerServiceServer.GetUserByUsername)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "messager/v1/messager.proto",
}

type AuthServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func (c *authServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, AuthService_Register_FullMethodName, in, opts)
}

func (c *authServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, AuthService_Login_FullMethodName, in, opts)
}

type AuthServiceServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
}

type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) Register(context.Context, *RegisterRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAuthServiceServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(AuthService_Register_FullMethodName, AuthServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(AuthService_Login_FullMethodName, AuthServiceServer.Login)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "messager/v1/auth.proto",
}
