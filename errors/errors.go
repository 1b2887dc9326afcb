package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrDuplicateUsername = fmt.Errorf("username already exists")
	ErrAccountExists     = fmt.Errorf("account already exists")
	ErrUserNotFound      = fmt.Errorf("user does not exist")
	ErrSelfInvite        = fmt.Errorf("cannot invite yourself")
	ErrInviteNotFound    = fmt.Errorf("invite does not exist")
	ErrAlreadyFriends    = fmt.Errorf("users are already friends")
	ErrNotFriends        = fmt.Errorf("users are not friends")
	ErrRoomNotFound      = fmt.Errorf("room does not exist")
	ErrRoomExists        = fmt.Errorf("room already exists")
	ErrAccessDenied      = fmt.Errorf("you do not have access to this room")
	ErrInvalidPayload    = fmt.Errorf("invalid payload")

	ErrIdentityAlreadyExists = fmt.Errorf("identity already exists")
	ErrInvalidCredentials    = fmt.Errorf("invalid credentials")
	ErrInvalidPassword       = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration       = fmt.Errorf("token generation failed")
	ErrUnauthenticated       = fmt.Errorf("caller is not authenticated")
)

// Is forwards to the standard library so callers importing this package
// under its own name keep access to error matching.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// MapToGRPCError converts a domain error into a gRPC status error.
// Unknown errors become codes.Internal without leaking their message.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(grpcCode(err), publicMessage(err))
}

func grpcCode(err error) codes.Code {
	switch {
	case Is(err, ErrDuplicateUsername), Is(err, ErrAccountExists),
		Is(err, ErrIdentityAlreadyExists), Is(err, ErrAlreadyFriends), Is(err, ErrRoomExists):
		return codes.AlreadyExists
	case Is(err, ErrUserNotFound), Is(err, ErrInviteNotFound),
		Is(err, ErrNotFriends), Is(err, ErrRoomNotFound):
		return codes.NotFound
	case Is(err, ErrAccessDenied):
		return codes.PermissionDenied
	case Is(err, ErrSelfInvite):
		return codes.FailedPrecondition
	case Is(err, ErrInvalidPayload), Is(err, ErrInvalidPassword):
		return codes.InvalidArgument
	case Is(err, ErrInvalidCredentials), Is(err, ErrUnauthenticated):
		return codes.Unauthenticated
	case Is(err, context.Canceled):
		return codes.Canceled
	case Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// statusClientClosedRequest is the non-standard status used when the caller gave up.
const statusClientClosedRequest = 499

// HTTPStatus is the gateway counterpart of MapToGRPCError.
func HTTPStatus(err error) int {
	switch grpcCode(err) {
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.Canceled:
		return statusClientClosedRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(err error) string {
	if grpcCode(err) == codes.Internal {
		return "internal error"
	}
	return err.Error()
}

// PublicMessage is the text safe to return to a remote caller.
func PublicMessage(err error) string {
	return publicMessage(err)
}

// FromGRPCError recovers the domain sentinel carried by a status error.
// It lets clients match on the same sentinels the server uses.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, sentinel := range sentinels {
		if st.Message() == sentinel.Error() {
			return sentinel
		}
		if strings.HasPrefix(st.Message(), sentinel.Error()+":") {
			return fmt.Errorf("%w%s", sentinel, strings.TrimPrefix(st.Message(), sentinel.Error()))
		}
	}
	return err
}

var sentinels = []error{
	ErrDuplicateUsername, ErrAccountExists, ErrUserNotFound, ErrSelfInvite,
	ErrInviteNotFound, ErrAlreadyFriends, ErrNotFriends, ErrRoomNotFound,
	ErrRoomExists, ErrAccessDenied, ErrInvalidPayload, ErrIdentityAlreadyExists,
	ErrInvalidCredentials, ErrInvalidPassword, ErrTokenGeneration, ErrUnauthenticated,
}
