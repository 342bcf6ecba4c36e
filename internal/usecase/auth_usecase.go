package usecase

import (
	"context"
	"errors"
	"strings"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

// IAuthUseCase authenticates users and resolves bearer tokens into callers.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	Authenticate(token string) (entities.Caller, error)
	Me(ctx context.Context, caller entities.Caller) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
	log    logrus.FieldLogger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer, log logrus.FieldLogger) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, log: log}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if usr.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		u.log.WithField("user_id", usr.ID).Warn("[auth][usecase] password mismatch")
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(usr)
	if err != nil {
		return "", entities.User{}, err
	}
	u.log.WithFields(logrus.Fields{"user_id": usr.ID, "role": usr.Role}).Info("[auth][usecase] login")
	return token, usr, nil
}

func (u *AuthUseCase) Authenticate(token string) (entities.Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Caller{}, ErrUnauthenticated
	}
	caller, err := u.tokens.Verify(token)
	if err != nil {
		return entities.Caller{}, ErrInvalidToken
	}
	return caller, nil
}

func (u *AuthUseCase) Me(ctx context.Context, caller entities.Caller) (entities.User, error) {
	if caller.UserID == "" {
		return entities.User{}, ErrUnauthenticated
	}
	usr, err := u.users.GetByID(ctx, caller.UserID)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
