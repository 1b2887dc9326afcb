package auth

import (
	"context"
	"fmt"
	"messager/domain"
	"messager/errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	CallerKey contextKey = "caller"
	RolesKey  contextKey = "roles"
)

// AuthInterceptor validates the bearer token of incoming unary calls and
// injects the caller address into the context. Methods listed in
// publicMethods are served without a token.
func AuthInterceptor(issuer *TokenIssuer, publicMethods ...string) grpc.UnaryServerInterceptor {
	public := make(map[string]struct{}, len(publicMethods))
	for _, method := range publicMethods {
		public[method] = struct{}{}
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := public[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata is missing")
		}
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
		}

		claims, err := issuer.ValidateToken(BearerToken(values[0]))
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		return handler(WithClaims(ctx, claims), req)
	}
}

// BearerToken strips the "Bearer " scheme from an authorization header.
func BearerToken(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func WithClaims(ctx context.Context, claims *CustomClaims) context.Context {
	ctx = context.WithValue(ctx, CallerKey, domain.Address(claims.UserID))
	return context.WithValue(ctx, RolesKey, claims.Roles)
}

// CallerFromContext returns the address injected by the interceptor.
func CallerFromContext(ctx context.Context) (domain.Address, error) {
	caller, ok := ctx.Value(CallerKey).(domain.Address)
	if !ok || caller == "" {
		return "", fmt.Errorf("%w: no caller in context", errors.ErrUnauthenticated)
	}
	return caller, nil
}
