package interfaces

import (
	"context"
	"quotation_service/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// Lookups by id return a zero Service (ID == "") when nothing matches; the
// batch lookup silently omits unknown ids. Soft-deleted records are still
// returned by id lookups.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Service, error)
	ListActive(ctx context.Context) ([]entities.Service, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Service, error)
}

// IAddonRepository abstracts DynamoDB persistence for Addon.

type IAddonRepository interface {
	Create(ctx context.Context, a entities.Addon) (entities.Addon, error)
	Update(ctx context.Context, a entities.Addon) (entities.Addon, error)
	GetByID(ctx context.Context, id string) (entities.Addon, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Addon, error)
	ListActive(ctx context.Context) ([]entities.Addon, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Addon, error)
}

// IBundleRepository abstracts DynamoDB persistence for Bundle.

type IBundleRepository interface {
	Create(ctx context.Context, b entities.Bundle) (entities.Bundle, error)
	Update(ctx context.Context, b entities.Bundle) (entities.Bundle, error)
	GetByID(ctx context.Context, id string) (entities.Bundle, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Bundle, error)
	ListActive(ctx context.Context) ([]entities.Bundle, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Bundle, error)
}
