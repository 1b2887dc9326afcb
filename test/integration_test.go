package test

import (
	"context"
	"fmt"
	"log/slog"
	"messager/domain"
	"messager/errors"
	"messager/observability"
	"messager/repositories"
	"messager/services"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openService(t *testing.T, dir string) (*services.MessagerService, *observability.Monitor, *badger.DB) {
	t.Helper()
	// Reduced to 16 Mo for testing
	db, err := badger.Open(badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	monitor := observability.NewMonitor(log)
	return services.NewMessagerService(log, repositories.NewStore(db, log), monitor), monitor, db
}

// Every user befriends a hub user concurrently, then everybody writes to the
// hub at the same time. The graph must stay symmetric and no message may be lost.
func Test_ConcurrentStar(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	service, monitor, db := openService(t, t.TempDir())
	t.Cleanup(func() { _ = db.Close() })

	const users = 20
	const messagesPerUser = 5
	hub := domain.Address("0xhub")
	_, err := service.CreateAccount(ctx, domain.CreateAccountCommand{Caller: hub, Name: "Hub", Username: "hub"})
	req.NoError(err)

	addresses := make([]domain.Address, users)
	for i := range addresses {
		addresses[i] = domain.Address(fmt.Sprintf("0xuser%02d", i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, users*(messagesPerUser+3))
	for i, addr := range addresses {
		wg.Add(1)
		go func(i int, addr domain.Address) {
			defer wg.Done()
			if _, err := service.CreateAccount(ctx, domain.CreateAccountCommand{
				Caller: addr, Name: fmt.Sprintf("User %d", i), Username: fmt.Sprintf("user%02d", i),
			}); err != nil {
				errs <- err
				return
			}
			if err := service.SendInvite(ctx, domain.SendInviteCommand{Caller: addr, To: hub, Message: "hi"}); err != nil {
				errs <- err
			}
		}(i, addr)
	}
	wg.Wait()

	for _, addr := range addresses {
		_, err := service.AcceptInvite(ctx, domain.AcceptInviteCommand{Caller: hub, From: addr})
		req.NoError(err)
	}

	for _, addr := range addresses {
		wg.Add(1)
		go func(addr domain.Address) {
			defer wg.Done()
			room := domain.DeriveRoomID(hub, addr)
			for n := 0; n < messagesPerUser; n++ {
				if _, err := service.SendMessage(ctx, domain.SendMessageCommand{
					Caller:  addr,
					Message: domain.RoomMessage{Room: room, MsgForReceiver: fmt.Sprintf("%d", n)},
				}); err != nil {
					errs <- err
				}
			}
		}(addr)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	hubFriends, err := service.GetFriends(ctx, hub)
	req.NoError(err)
	req.ElementsMatch(addresses, hubFriends)

	for _, addr := range addresses {
		friends, err := service.GetFriends(ctx, addr)
		req.NoError(err)
		req.Equal([]domain.Address{hub}, friends)

		room, err := service.GetRoom(ctx, domain.DeriveRoomID(hub, addr))
		req.NoError(err)
		req.Len(room.Messages, messagesPerUser)
		for n, message := range room.Messages {
			// Messages of one sender keep their submission order
			req.Equal(fmt.Sprintf("%d", n), message.MsgForReceiver)
		}
	}

	stats := monitor.GetLatest()
	req.Equal(uint64(users+1), stats.AccountsCreated)
	req.Equal(uint64(users), stats.InvitesAccepted)
	req.Equal(uint64(users*messagesPerUser), stats.MessagesSent)
}

func Test_StateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	dir := t.TempDir()
	alice, bob := domain.Address("0xalice"), domain.Address("0xbob")

	service, _, db := openService(t, dir)
	_, err := service.CreateAccount(ctx, domain.CreateAccountCommand{Caller: alice, Name: "Alice", Username: "alice"})
	req.NoError(err)
	_, err = service.CreateAccount(ctx, domain.CreateAccountCommand{Caller: bob, Name: "Bob", Username: "bob"})
	req.NoError(err)
	req.NoError(service.SendInvite(ctx, domain.SendInviteCommand{Caller: alice, To: bob}))
	roomID, err := service.AcceptInvite(ctx, domain.AcceptInviteCommand{Caller: bob, From: alice})
	req.NoError(err)
	_, err = service.SendMessage(ctx, domain.SendMessageCommand{
		Caller:  alice,
		Message: domain.RoomMessage{Room: roomID, MsgForReceiver: "Hello", MsgForSender: "Hello"},
	})
	req.NoError(err)
	req.NoError(db.Close())

	reopened, _, db := openService(t, dir)
	t.Cleanup(func() { _ = db.Close() })

	user, err := reopened.GetUserByUsername(ctx, "alice")
	req.NoError(err)
	req.Equal([]domain.Address{bob}, user.Friends)

	room, err := reopened.GetRoom(ctx, roomID)
	req.NoError(err)
	req.Len(room.Messages, 1)
	req.Equal("Hello", room.Messages[0].MsgForReceiver)

	_, err = reopened.CreateAccount(ctx, domain.CreateAccountCommand{Caller: "0xcarol", Name: "Carol", Username: "alice"})
	req.ErrorIs(err, errors.ErrDuplicateUsername)
}
