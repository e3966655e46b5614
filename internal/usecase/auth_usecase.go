package usecase

import (
	"context"
	"errors"

	"susunara/internal/usecase/interfaces"
)

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrEmptyToken    = errors.New("session token is required")
)

// IAuthUseCase gates the staff surface behind the shared shop password.
// There are no user accounts; a correct password yields a session token.

type IAuthUseCase interface {
	Login(ctx context.Context, password string) (string, error)
	Logout(ctx context.Context, token string) error
	IsAuthenticated(ctx context.Context, token string) (bool, error)
}

type AuthUseCase struct {
	sessions interfaces.ISessionStore
	password string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(sessions interfaces.ISessionStore, password string) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, password: password}
}

func (u *AuthUseCase) Login(ctx context.Context, password string) (string, error) {
	if password != u.password {
		return "", ErrWrongPassword
	}
	return u.sessions.Issue(ctx)
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return u.sessions.Revoke(ctx, token)
}

func (u *AuthUseCase) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return u.sessions.Validate(ctx, token)
}
