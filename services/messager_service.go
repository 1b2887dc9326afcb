//go:generate go run go.uber.org/mock/mockgen -source=messager_service.go -destination=../mocks/mock_messager_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"messager/domain"
	"messager/errors"
	"messager/observability"
	"messager/repositories"
	"sync"
	"time"

	"github.com/samber/lo"
)

type IMessagerService interface {
	CreateAccount(ctx context.Context, cmd domain.CreateAccountCommand) (domain.User, error)
	SendInvite(ctx context.Context, cmd domain.SendInviteCommand) error
	AcceptInvite(ctx context.Context, cmd domain.AcceptInviteCommand) (domain.RoomID, error)
	GetInvites(ctx context.Context, who domain.Address) ([]domain.Invite, error)
	GetFriends(ctx context.Context, who domain.Address) ([]domain.Address, error)
	FriendRoomID(ctx context.Context, who, friend domain.Address) (domain.RoomID, error)
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	SendMultipleMessages(ctx context.Context, cmd domain.SendMultipleMessagesCommand) ([]domain.Message, error)
	GetRoom(ctx context.Context, id domain.RoomID) (domain.Room, error)
	GetUser(ctx context.Context, addr domain.Address) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

// MessagerService validates commands and applies them to the repositories.
// Mutating calls are serialized and each one runs in a single store transaction,
// so a failing call leaves no partial state behind.
type MessagerService struct {
	log     *slog.Logger
	store   repositories.IStore
	monitor *observability.Monitor
	now     func() time.Time
	mu      sync.Mutex
}

func NewMessagerService(log *slog.Logger, store repositories.IStore, monitor *observability.Monitor) *MessagerService {
	return &MessagerService{
		log:     log,
		store:   store,
		monitor: monitor,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *MessagerService) CreateAccount(ctx context.Context, cmd domain.CreateAccountCommand) (domain.User, error) {
	user := domain.User{
		Owner:     cmd.Caller,
		Name:      cmd.Name,
		Username:  cmd.Username,
		Exists:    true,
		Friends:   []domain.Address{},
		CreatedAt: s.now(),
	}
	err := s.update(ctx, cmd, func(tx repositories.Tx) error {
		return tx.Users().CreateUser(user)
	})
	if err != nil {
		return domain.User{}, s.rejected("create account", cmd.Caller, err)
	}
	s.monitor.IncrAccountsCreated()
	s.log.Debug("account created", "caller", cmd.Caller, "username", cmd.Username)
	return user, nil
}

func (s *MessagerService) SendInvite(ctx context.Context, cmd domain.SendInviteCommand) error {
	err := s.update(ctx, cmd, func(tx repositories.Tx) error {
		if err := requireAccounts(tx, cmd.Caller, cmd.To); err != nil {
			return err
		}
		if cmd.Caller == cmd.To {
			return errors.ErrSelfInvite
		}
		friends, err := tx.Friendships().AreFriends(cmd.Caller, cmd.To)
		if err != nil {
			return err
		}
		if friends {
			return fmt.Errorf("%w: %s and %s", errors.ErrAlreadyFriends, cmd.Caller, cmd.To)
		}
		return tx.Invites().AppendInvite(cmd.To, domain.Invite{
			Sender:  cmd.Caller,
			Message: cmd.Message,
			SentAt:  s.now(),
		})
	})
	if err != nil {
		return s.rejected("send invite", cmd.Caller, err)
	}
	s.monitor.IncrInvitesSent()
	s.log.Debug("invite sent", "caller", cmd.Caller, "to", cmd.To)
	return nil
}

// AcceptInvite turns every pending invite from cmd.From into a friendship
// and opens the room shared by the two users.
func (s *MessagerService) AcceptInvite(ctx context.Context, cmd domain.AcceptInviteCommand) (domain.RoomID, error) {
	room := domain.NewRoom(cmd.From, cmd.Caller, s.now())
	err := s.update(ctx, cmd, func(tx repositories.Tx) error {
		if err := requireAccounts(tx, cmd.Caller); err != nil {
			return err
		}
		if _, err := tx.Invites().RemoveInvitesFrom(cmd.Caller, cmd.From); err != nil {
			return err
		}
		// A reciprocal invite describes the same edge and could never be accepted afterwards
		if _, err := tx.Invites().RemoveInvitesFrom(cmd.From, cmd.Caller); err != nil && !errors.Is(err, errors.ErrInviteNotFound) {
			return err
		}
		if err := tx.Friendships().Establish(cmd.From, cmd.Caller, room.ID); err != nil {
			return err
		}
		return tx.Rooms().CreateRoom(*room)
	})
	if err != nil {
		return "", s.rejected("accept invite", cmd.Caller, err)
	}
	s.monitor.IncrInvitesAccepted()
	s.log.Debug("invite accepted", "caller", cmd.Caller, "from", cmd.From, "room_id", room.ID)
	return room.ID, nil
}

func (s *MessagerService) GetInvites(ctx context.Context, who domain.Address) ([]domain.Invite, error) {
	var invites []domain.Invite
	err := s.view(ctx, func(tx repositories.Tx) error {
		var err error
		invites, err = tx.Invites().ListInvites(who)
		return err
	})
	return invites, err
}

func (s *MessagerService) GetFriends(ctx context.Context, who domain.Address) ([]domain.Address, error) {
	var friends []domain.Friend
	err := s.view(ctx, func(tx repositories.Tx) error {
		var err error
		friends, err = tx.Friendships().ListFriends(who)
		return err
	})
	if err != nil {
		return nil, err
	}
	return friendAddresses(friends), nil
}

func (s *MessagerService) FriendRoomID(ctx context.Context, who, friend domain.Address) (domain.RoomID, error) {
	var id domain.RoomID
	err := s.view(ctx, func(tx repositories.Tx) error {
		var err error
		id, err = tx.Friendships().RoomID(who, friend)
		return err
	})
	return id, err
}

func (s *MessagerService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	message := s.newMessage(cmd.Caller, cmd.Message)
	err := s.update(ctx, cmd, func(tx repositories.Tx) error {
		return tx.Rooms().AppendMessage(cmd.Message.Room, message)
	})
	if err != nil {
		return domain.Message{}, s.rejected("send message", cmd.Caller, err)
	}
	s.monitor.AddMessagesSent(1)
	s.log.Debug("message sent", "caller", cmd.Caller, "room_id", cmd.Message.Room)
	return message, nil
}

// SendMultipleMessages appends the batch in order.
// The first entry that fails aborts the whole batch.
func (s *MessagerService) SendMultipleMessages(ctx context.Context, cmd domain.SendMultipleMessagesCommand) ([]domain.Message, error) {
	messages := lo.Map(cmd.Messages, func(item domain.RoomMessage, _ int) domain.Message {
		return s.newMessage(cmd.Caller, item)
	})
	err := s.update(ctx, cmd, func(tx repositories.Tx) error {
		rooms := tx.Rooms()
		for i, entry := range cmd.Messages {
			if err := rooms.AppendMessage(entry.Room, messages[i]); err != nil {
				return fmt.Errorf("batch entry %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.rejected("send multiple messages", cmd.Caller, err)
	}
	s.monitor.AddMessagesSent(len(messages))
	s.log.Debug("messages sent", "caller", cmd.Caller, "count", len(messages))
	return messages, nil
}

func (s *MessagerService) GetRoom(ctx context.Context, id domain.RoomID) (domain.Room, error) {
	var room domain.Room
	err := s.view(ctx, func(tx repositories.Tx) error {
		var err error
		room, err = tx.Rooms().GetRoom(id)
		return err
	})
	return room, err
}

func (s *MessagerService) GetUser(ctx context.Context, addr domain.Address) (domain.User, error) {
	var user domain.User
	err := s.view(ctx, func(tx repositories.Tx) error {
		var err error
		if user, err = tx.Users().GetUser(addr); err != nil {
			return err
		}
		return fillFriends(tx, &user)
	})
	return user, err
}

func (s *MessagerService) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := s.view(ctx, func(tx repositories.Tx) error {
		var err error
		if user, err = tx.Users().GetUserByUsername(username); err != nil {
			return err
		}
		return fillFriends(tx, &user)
	})
	return user, err
}

// update validates cmd, then runs fn under the write lock in one transaction.
func (s *MessagerService) update(ctx context.Context, cmd any, fn func(tx repositories.Tx) error) error {
	if err := domain.Validate(cmd); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Update(fn)
}

func (s *MessagerService) view(ctx context.Context, fn func(tx repositories.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.View(fn)
}

func (s *MessagerService) rejected(operation string, caller domain.Address, err error) error {
	s.monitor.IncrRejected()
	s.log.Warn("call rejected", "operation", operation, "caller", caller, "error", err)
	return err
}

func (s *MessagerService) newMessage(caller domain.Address, entry domain.RoomMessage) domain.Message {
	return domain.Message{
		Sender:         caller,
		MsgForReceiver: entry.MsgForReceiver,
		MsgForSender:   entry.MsgForSender,
		At:             s.now(),
	}
}

func requireAccounts(tx repositories.Tx, addresses ...domain.Address) error {
	for _, addr := range addresses {
		found, err := tx.Users().Exists(addr)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errors.ErrUserNotFound, addr)
		}
	}
	return nil
}

func fillFriends(tx repositories.Tx, user *domain.User) error {
	friends, err := tx.Friendships().ListFriends(user.Owner)
	if err != nil {
		return err
	}
	user.Friends = friendAddresses(friends)
	return nil
}

func friendAddresses(friends []domain.Friend) []domain.Address {
	return lo.Map(friends, func(item domain.Friend, _ int) domain.Address {
		return item.Address
	})
}
