package gateway

import (
	"encoding/json"
	"fmt"
	"messager/auth"
	"messager/domain"
	"messager/errors"
	pb "messager/infrastructure/grpc/messagerpb"
	"messager/infrastructure/grpc/server"
	"messager/observability"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string                        `json:"status"`
	Stats  observability.MonitoringStats `json:"stats"`
}

func (g *Gateway) health(w http.ResponseWriter, _ *http.Request) {
	g.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Stats: g.monitor.GetLatest()})
}

func (g *Gateway) register(w http.ResponseWriter, r *http.Request) {
	var body pb.RegisterRequest
	if !g.decode(w, r, &body) {
		return
	}
	token, address, err := g.authService.Register(body.Handle, body.Password)
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusCreated, pb.AuthResponse{Token: token.String(), UserID: string(address)})
}

func (g *Gateway) login(w http.ResponseWriter, r *http.Request) {
	var body pb.LoginRequest
	if !g.decode(w, r, &body) {
		return
	}
	token, err := g.authService.Login(body.Handle, body.Password)
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusOK, pb.AuthResponse{Token: token.String()})
}

func (g *Gateway) createAccount(w http.ResponseWriter, r *http.Request) {
	var body pb.CreateAccountRequest
	if !g.decode(w, r, &body) {
		return
	}
	caller, err := auth.CallerFromContext(r.Context())
	if err != nil {
		g.writeError(w, err)
		return
	}
	user, err := g.messagerService.CreateAccount(r.Context(), domain.CreateAccountCommand{
		Caller:   caller,
		Name:     body.Name,
		Username: body.Username,
	})
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusCreated, server.ToUserResponse(user))
}

func (g *Gateway) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := g.messagerService.GetUser(r.Context(), domain.Address(mux.Vars(r)["address"]))
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusOK, server.ToUserResponse(user))
}

func (g *Gateway) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := g.messagerService.GetUserByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusOK, server.ToUserResponse(user))
}

func (g *Gateway) sendInvite(w http.ResponseWriter, r *http.Request) {
	var body pb.SendInviteRequest
	if !g.decode(w, r, &body) {
		return
	}
	caller, err := auth.CallerFromContext(r.Context())
	if err != nil {
		g.writeError(w, err)
		return
	}
	err = g.messagerService.SendInvite(r.Context(), domain.SendInviteCommand{
		Caller:  caller,
		To:      domain.Address(body.To),
		Message: body.Message,
	})
	if err != nil {
		g.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *Gateway) getInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := g.messagerService.GetInvites(r.Context(), domain.Address(mux.Vars(r)["address"]))
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusOK, server.ToInvitesResponse(invites))
}

func (g *Gateway) acceptInvite(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.CallerFromContext(r.Context())
	if err != nil {
		g.writeError(w, err)
		return
	}
	roomID, err := g.messagerService.AcceptInvite(r.Context(), domain.AcceptInviteCommand{
		Caller: caller,
		From:   domain.Address(mux.Vars(r)["from"]),
	})
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusCreated, pb.RoomIDResponse{RoomID: string(roomID)})
}

func (g *Gateway) getFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := g.messagerService.GetFriends(r.Context(), domain.Address(mux.Vars(r)["address"]))
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusOK, pb.FriendsResponse{
		Friends: lo.Map(friends, func(item domain.Address, _ int) string { return string(item) }),
	})
}

func (g *Gateway) getFriendRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := g.messagerService.FriendRoomID(r.Context(), domain.Address(vars["address"]), domain.Address(vars["friend"]))
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusOK, pb.RoomIDResponse{RoomID: string(roomID)})
}

func (g *Gateway) sendMessage(w http.ResponseWriter, r *http.Request) {
	var body pb.SendMessageRequest
	if !g.decode(w, r, &body) {
		return
	}
	caller, err := auth.CallerFromContext(r.Context())
	if err != nil {
		g.writeError(w, err)
		return
	}
	message, err := g.messagerService.SendMessage(r.Context(), domain.SendMessageCommand{
		Caller:  caller,
		Message: server.ToRoomMessage(body),
	})
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusCreated, server.ToMessageResponse(message))
}

func (g *Gateway) sendMultipleMessages(w http.ResponseWriter, r *http.Request) {
	var body pb.SendMultipleMessagesRequest
	if !g.decode(w, r, &body) {
		return
	}
	caller, err := auth.CallerFromContext(r.Context())
	if err != nil {
		g.writeError(w, err)
		return
	}
	messages, err := g.messagerService.SendMultipleMessages(r.Context(), domain.SendMultipleMessagesCommand{
		Caller:   caller,
		Messages: lo.Map(body.Messages, func(item pb.SendMessageRequest, _ int) domain.RoomMessage { return server.ToRoomMessage(item) }),
	})
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusCreated, server.ToMessagesResponse(messages))
}

func (g *Gateway) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := g.messagerService.GetRoom(r.Context(), domain.RoomID(mux.Vars(r)["roomId"]))
	if err != nil {
		g.writeError(w, err)
		return
	}
	g.writeJSON(w, http.StatusOK, server.ToRoomResponse(room))
}

// maxBodyBytes matches the default gRPC receive limit and holds the largest valid batch.
const maxBodyBytes = 4 << 20

func (g *Gateway) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		g.writeError(w, fmt.Errorf("%w: malformed body: %v", errors.ErrInvalidPayload, err))
		return false
	}
	return true
}

func (g *Gateway) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		g.log.Error("failed to encode response", "error", err)
	}
}

func (g *Gateway) writeError(w http.ResponseWriter, err error) {
	code := errors.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		g.log.Error("request failed", "error", err)
	}
	g.writeJSON(w, code, errorResponse{Error: errors.PublicMessage(err)})
}
