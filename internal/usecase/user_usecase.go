package usecase

import (
	"context"
	"errors"
	"net/mail"
	"sort"
	"strings"
	"time"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

var (
	ErrInvalidUserName  = errors.New("name is required")
	ErrInvalidUserEmail = errors.New("a valid email is required")
	ErrWeakPassword     = errors.New("password must be at least 6 characters")
	ErrInvalidUserRole  = errors.New("role must be admin or sales-agent")
	ErrUserExists       = errors.New("user already exists")
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entities.Role
}

// IUserUseCase exposes admin user management.

type IUserUseCase interface {
	List(ctx context.Context, caller entities.Caller) ([]entities.User, error)
	Create(ctx context.Context, caller entities.Caller, in CreateUserInput) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
	log  logrus.FieldLogger
	cost int
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, log logrus.FieldLogger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log, cost: bcrypt.DefaultCost}
}

func (u *UserUseCase) List(ctx context.Context, caller entities.Caller) ([]entities.User, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return nil, err
	}
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (u *UserUseCase) Create(ctx context.Context, caller entities.Caller, in CreateUserInput) (entities.User, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.User{}, err
	}
	return u.register(ctx, in)
}

// Register creates a user without an authorization check. Used by the seed
// command to bootstrap the first admin.
func (u *UserUseCase) Register(ctx context.Context, in CreateUserInput) (entities.User, error) {
	return u.register(ctx, in)
}

func (u *UserUseCase) register(ctx context.Context, in CreateUserInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.User{}, ErrInvalidUserName
	}
	email := normalizeEmail(in.Email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return entities.User{}, ErrInvalidUserEmail
	}
	if len(in.Password) < MinPasswordLength {
		return entities.User{}, ErrWeakPassword
	}
	role := in.Role
	if role == "" {
		role = entities.RoleSalesAgent
	}
	if !role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return entities.User{}, err
	}

	usr := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, usr)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateUserEmail) {
			return entities.User{}, ErrUserExists
		}
		return entities.User{}, err
	}
	u.log.WithFields(logrus.Fields{"user_id": created.ID, "role": created.Role}).Info("[user][usecase] created")
	return created, nil
}
