package server

import (
	"context"
	"log/slog"
	"messager/errors"
	pb "messager/infrastructure/grpc/messagerpb"
	"messager/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	log         *slog.Logger
	authService services.IAuthService
}

func NewAuthServer(log *slog.Logger, authService services.IAuthService) *AuthServer {
	return &AuthServer{log: log, authService: authService}
}

// Register creates an identity and returns its first token together with
// the address the caller will be known by.
func (s *AuthServer) Register(_ context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, address, err := s.authService.Register(req.Handle, req.Password)
	if err != nil {
		s.log.Warn("registration rejected", "handle", req.Handle, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: token.String(), UserID: string(address)}, nil
}

func (s *AuthServer) Login(_ context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Login(req.Handle, req.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: token.String()}, nil
}
