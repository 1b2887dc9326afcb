package repositories

import (
	"messager/errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Create_And_Get_Identity(t *testing.T) {
	req := require.New(t)
	_, db := newTestStore(t)
	repository := NewIdentityRepository(db)

	address, err := repository.CreateIdentity("alice", "$argon2id$hash")
	req.NoError(err)
	req.NotEmpty(address)

	identity, err := repository.GetIdentity("alice")
	req.NoError(err)
	req.Equal(address, identity.Address)
	req.Equal("$argon2id$hash", identity.PasswordHash)
	req.Equal([]string{"user"}, identity.Roles)
}

func Test_Create_Identity_Twice(t *testing.T) {
	req := require.New(t)
	_, db := newTestStore(t)
	repository := NewIdentityRepository(db)

	_, err := repository.CreateIdentity("alice", "hash")
	req.NoError(err)
	_, err = repository.CreateIdentity("alice", "other")
	req.ErrorIs(err, errors.ErrIdentityAlreadyExists)
}

func Test_Create_Identity_Concurrently(t *testing.T) {
	req := require.New(t)
	_, db := newTestStore(t)
	repository := NewIdentityRepository(db)

	const callers = 20
	start := make(chan struct{})
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repository.CreateIdentity("alice", "hash")
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	created := 0
	for err := range results {
		if err == nil {
			created++
			continue
		}
		req.ErrorIs(err, errors.ErrIdentityAlreadyExists)
	}
	req.Equal(1, created)
}

func Test_Get_Unknown_Identity(t *testing.T) {
	req := require.New(t)
	_, db := newTestStore(t)

	_, err := NewIdentityRepository(db).GetIdentity("ghost")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}
