package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"messager/domain"
	"messager/repositories"
	"messager/services"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Fills a badger directory with a ring of friends chatting with each other,
// handy to try the inspector, the debug page or the client against real data.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	users := flag.Int("users", 10, "Number of users to create")
	messages := flag.Int("messages", 5, "Messages per friendship")
	flag.Parse()

	if err := run(*dbPath, *users, *messages); err != nil {
		fmt.Fprintf(os.Stderr, "Seeding failed: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, users, messages int) error {
	if users < 2 {
		return fmt.Errorf("at least 2 users are needed, got %d", users)
	}
	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	store := repositories.NewStore(db, log)
	service := services.NewMessagerService(log, store, nil)

	addresses := make([]domain.Address, users)
	suffix := uuid.NewString()[:6]
	for i := range addresses {
		addresses[i] = domain.Address(uuid.NewString())
		_, err := service.CreateAccount(ctx, domain.CreateAccountCommand{
			Caller:   addresses[i],
			Name:     fmt.Sprintf("User %d", i),
			Username: fmt.Sprintf("user%d_%s", i, suffix),
		})
		if err != nil {
			return err
		}
	}

	// Each user befriends the next one, closing the ring
	for i, addr := range addresses {
		next := addresses[(i+1)%users]
		if users == 2 && i == 1 {
			break
		}
		if err := service.SendInvite(ctx, domain.SendInviteCommand{Caller: addr, To: next, Message: "hello!"}); err != nil {
			return err
		}
		roomID, err := service.AcceptInvite(ctx, domain.AcceptInviteCommand{Caller: next, From: addr})
		if err != nil {
			return err
		}
		if err := sendMessages(ctx, service, addr, roomID, messages); err != nil {
			return err
		}
	}

	totalUsers, totalRooms, err := count(store)
	if err != nil {
		return err
	}
	log.Info("Seeding done", "path", path, "users", totalUsers, "rooms", totalRooms, "messages_per_room", messages)
	return nil
}

// sendMessages posts n messages in batches no larger than the service accepts.
func sendMessages(ctx context.Context, service services.IMessagerService, from domain.Address, roomID domain.RoomID, n int) error {
	for start := 0; start < n; start += domain.MaxBatchSize {
		batch := make([]domain.RoomMessage, min(domain.MaxBatchSize, n-start))
		for i := range batch {
			text := fmt.Sprintf("message %d", start+i)
			batch[i] = domain.RoomMessage{Room: roomID, MsgForReceiver: text, MsgForSender: text}
		}
		if _, err := service.SendMultipleMessages(ctx, domain.SendMultipleMessagesCommand{Caller: from, Messages: batch}); err != nil {
			return err
		}
	}
	return nil
}

// count reports every user and room in the database, seeded earlier or now.
func count(store repositories.IStore) (int, int, error) {
	var users []domain.User
	var rooms []domain.Room
	err := store.View(func(tx repositories.Tx) error {
		var err error
		if users, err = tx.Users().ListUsers(); err != nil {
			return err
		}
		rooms, err = tx.Rooms().ListRooms()
		return err
	})
	return len(users), len(rooms), err
}
