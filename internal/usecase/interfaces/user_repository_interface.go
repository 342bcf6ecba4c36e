package interfaces

import (
	"context"
	"errors"
	"quotation_service/internal/domain/entities"
)

// ErrDuplicateUserEmail is returned by Create when the email is already registered.
var ErrDuplicateUserEmail = errors.New("email already registered")

// IUserRepository abstracts DynamoDB persistence for User.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
