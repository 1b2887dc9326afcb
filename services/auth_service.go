//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"messager/auth"
	"messager/domain"
	"messager/errors"
	"messager/repositories"
)

type IAuthService interface {
	Login(handle, password string) (auth.Token, error)
	Register(handle, password string) (auth.Token, domain.Address, error)
}

// AuthService exchanges credentials for a signed token carrying the caller address.
type AuthService struct {
	log                *slog.Logger
	identityRepository repositories.IIdentityRepository
	issuer             *auth.TokenIssuer
}

func NewAuthService(log *slog.Logger, repo repositories.IIdentityRepository, issuer *auth.TokenIssuer) IAuthService {
	return &AuthService{log: log, identityRepository: repo, issuer: issuer}
}

func (s *AuthService) Register(handle, password string) (auth.Token, domain.Address, error) {
	// Rules are checked before any expensive hashing
	if err := auth.ValidateRegister(auth.RegisterRequest{Handle: handle, Password: password}); err != nil {
		return "", "", err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", "", fmt.Errorf("hashing failed: %w", err)
	}

	address, err := s.identityRepository.CreateIdentity(handle, hashedPassword)
	if err != nil {
		return "", "", err
	}

	token, err := s.issuer.GenerateToken(address, []string{"user"})
	if err != nil {
		return "", "", errors.ErrTokenGeneration
	}

	s.log.Debug("identity registered", "handle", handle, "address", address)
	return auth.Token(token), address, nil
}

func (s *AuthService) Login(handle, password string) (auth.Token, error) {
	identity, err := s.identityRepository.GetIdentity(handle)
	if err != nil {
		// Same error whatever the cause, so handles cannot be enumerated
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, identity.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.GenerateToken(identity.Address, identity.Roles)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return auth.Token(token), nil
}
