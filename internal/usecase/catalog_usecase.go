package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrAddonNotFound       = errors.New("addon not found")
	ErrBundleNotFound      = errors.New("bundle not found")
	ErrInvalidCatalogID    = errors.New("invalid catalog id")
	ErrInvalidCatalogInput = errors.New("invalid catalog input")
)

// ICatalogUseCase exposes the service, add-on and bundle catalog.
//
// Reads are open to every authenticated caller; writes require the admin role.
// Deletes are soft: the record is flagged inactive and keeps resolving by id.
// An update can reactivate a record but never deactivates one.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.ServiceWithAddons, error)
	GetService(ctx context.Context, id string) (entities.ServiceWithAddons, error)
	CreateService(ctx context.Context, caller entities.Caller, s entities.Service) (entities.Service, error)
	UpdateService(ctx context.Context, caller entities.Caller, id string, s entities.Service) (entities.Service, error)
	DeleteService(ctx context.Context, caller entities.Caller, id string) error

	ListAddons(ctx context.Context) ([]entities.Addon, error)
	GetAddon(ctx context.Context, id string) (entities.Addon, error)
	CreateAddon(ctx context.Context, caller entities.Caller, a entities.Addon) (entities.Addon, error)
	UpdateAddon(ctx context.Context, caller entities.Caller, id string, a entities.Addon) (entities.Addon, error)
	DeleteAddon(ctx context.Context, caller entities.Caller, id string) error

	ListBundles(ctx context.Context) ([]entities.BundleWithServices, error)
	GetBundle(ctx context.Context, id string) (entities.BundleWithServices, error)
	CreateBundle(ctx context.Context, caller entities.Caller, b entities.Bundle) (entities.Bundle, error)
	UpdateBundle(ctx context.Context, caller entities.Caller, id string, b entities.Bundle) (entities.Bundle, error)
	DeleteBundle(ctx context.Context, caller entities.Caller, id string) error
}

type CatalogUseCase struct {
	services interfaces.IServiceRepository
	addons   interfaces.IAddonRepository
	bundles  interfaces.IBundleRepository
	log      logrus.FieldLogger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository, addons interfaces.IAddonRepository, bundles interfaces.IBundleRepository, log logrus.FieldLogger) *CatalogUseCase {
	return &CatalogUseCase{services: services, addons: addons, bundles: bundles, log: log}
}

func invalidCatalog(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalogInput, reason)
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidCatalogID
	}
	return id, nil
}

// ---- services ----

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.ServiceWithAddons, error) {
	list, err := u.services.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Category != list[j].Category {
			return list[i].Category < list[j].Category
		}
		return list[i].Name < list[j].Name
	})
	return u.withAddons(ctx, list)
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.ServiceWithAddons, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.ServiceWithAddons{}, err
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceWithAddons{}, err
	}
	if s.ID == "" {
		return entities.ServiceWithAddons{}, ErrServiceNotFound
	}
	out, err := u.withAddons(ctx, []entities.Service{s})
	if err != nil {
		return entities.ServiceWithAddons{}, err
	}
	return out[0], nil
}

func (u *CatalogUseCase) withAddons(ctx context.Context, list []entities.Service) ([]entities.ServiceWithAddons, error) {
	var ids []string
	for _, s := range list {
		ids = append(ids, s.AddonIDs...)
	}
	byID := map[string]entities.Addon{}
	if len(ids) > 0 {
		found, err := u.addons.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, a := range found {
			byID[a.ID] = a
		}
	}

	out := make([]entities.ServiceWithAddons, 0, len(list))
	for _, s := range list {
		sw := entities.ServiceWithAddons{Service: s, Addons: []entities.Addon{}}
		for _, id := range s.AddonIDs {
			if a, ok := byID[id]; ok {
				sw.Addons = append(sw.Addons, a)
			}
		}
		out = append(out, sw)
	}
	return out, nil
}

func validateService(s entities.Service) error {
	if strings.TrimSpace(s.Name) == "" {
		return invalidCatalog("name is required")
	}
	if !s.Category.Valid() {
		return invalidCatalog("unknown category")
	}
	if s.BasePrice < 0 {
		return invalidCatalog("base price must not be negative")
	}
	if !s.Type.Valid() {
		return invalidCatalog("type must be one-time or monthly")
	}
	return nil
}

func (u *CatalogUseCase) CreateService(ctx context.Context, caller entities.Caller, s entities.Service) (entities.Service, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.Service{}, err
	}
	s.Name = strings.TrimSpace(s.Name)
	if err := validateService(s); err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.IsActive = true
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.AddonIDs == nil {
		s.AddonIDs = []string{}
	}

	created, err := u.services.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	u.log.WithFields(logrus.Fields{"service_id": created.ID, "name": created.Name}).Info("[catalog][usecase] service created")
	return created, nil
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, caller entities.Caller, id string, s entities.Service) (entities.Service, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.Service{}, err
	}
	id, err := normalizeID(id)
	if err != nil {
		return entities.Service{}, err
	}
	s.Name = strings.TrimSpace(s.Name)
	if err := validateService(s); err != nil {
		return entities.Service{}, err
	}

	existing, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if existing.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	s.IsActive = s.IsActive || existing.IsActive
	s.UpdatedAt = time.Now().UTC()
	if s.AddonIDs == nil {
		s.AddonIDs = []string{}
	}

	updated, err := u.services.Update(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, caller entities.Caller, id string) error {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return err
	}
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	updated, err := u.services.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrServiceNotFound
	}
	u.log.WithField("service_id", id).Info("[catalog][usecase] service deactivated")
	return nil
}

// ---- add-ons ----

func (u *CatalogUseCase) ListAddons(ctx context.Context) ([]entities.Addon, error) {
	list, err := u.addons.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Category != list[j].Category {
			return list[i].Category < list[j].Category
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (u *CatalogUseCase) GetAddon(ctx context.Context, id string) (entities.Addon, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.Addon{}, err
	}
	a, err := u.addons.GetByID(ctx, id)
	if err != nil {
		return entities.Addon{}, err
	}
	if a.ID == "" {
		return entities.Addon{}, ErrAddonNotFound
	}
	return a, nil
}

func validateAddon(a entities.Addon) error {
	if strings.TrimSpace(a.Name) == "" {
		return invalidCatalog("name is required")
	}
	if !a.Category.Valid() {
		return invalidCatalog("unknown category")
	}
	if a.Price < 0 {
		return invalidCatalog("price must not be negative")
	}
	if !a.Type.Valid() {
		return invalidCatalog("type must be one-time or monthly")
	}
	return nil
}

func (u *CatalogUseCase) CreateAddon(ctx context.Context, caller entities.Caller, a entities.Addon) (entities.Addon, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.Addon{}, err
	}
	a.Name = strings.TrimSpace(a.Name)
	if err := validateAddon(a); err != nil {
		return entities.Addon{}, err
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.IsActive = true
	a.CreatedAt = now
	a.UpdatedAt = now

	created, err := u.addons.Create(ctx, a)
	if err != nil {
		return entities.Addon{}, err
	}
	u.log.WithFields(logrus.Fields{"addon_id": created.ID, "name": created.Name}).Info("[catalog][usecase] addon created")
	return created, nil
}

func (u *CatalogUseCase) UpdateAddon(ctx context.Context, caller entities.Caller, id string, a entities.Addon) (entities.Addon, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.Addon{}, err
	}
	id, err := normalizeID(id)
	if err != nil {
		return entities.Addon{}, err
	}
	a.Name = strings.TrimSpace(a.Name)
	if err := validateAddon(a); err != nil {
		return entities.Addon{}, err
	}

	existing, err := u.addons.GetByID(ctx, id)
	if err != nil {
		return entities.Addon{}, err
	}
	if existing.ID == "" {
		return entities.Addon{}, ErrAddonNotFound
	}

	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.IsActive = a.IsActive || existing.IsActive
	a.UpdatedAt = time.Now().UTC()

	updated, err := u.addons.Update(ctx, a)
	if err != nil {
		return entities.Addon{}, err
	}
	if updated.ID == "" {
		return entities.Addon{}, ErrAddonNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteAddon(ctx context.Context, caller entities.Caller, id string) error {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return err
	}
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	updated, err := u.addons.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrAddonNotFound
	}
	u.log.WithField("addon_id", id).Info("[catalog][usecase] addon deactivated")
	return nil
}

// ---- bundles ----

func (u *CatalogUseCase) ListBundles(ctx context.Context) ([]entities.BundleWithServices, error) {
	list, err := u.bundles.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return u.populateBundles(ctx, list)
}

func (u *CatalogUseCase) GetBundle(ctx context.Context, id string) (entities.BundleWithServices, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.BundleWithServices{}, err
	}
	b, err := u.bundles.GetByID(ctx, id)
	if err != nil {
		return entities.BundleWithServices{}, err
	}
	if b.ID == "" {
		return entities.BundleWithServices{}, ErrBundleNotFound
	}
	out, err := u.populateBundles(ctx, []entities.Bundle{b})
	if err != nil {
		return entities.BundleWithServices{}, err
	}
	return out[0], nil
}

func (u *CatalogUseCase) populateBundles(ctx context.Context, list []entities.Bundle) ([]entities.BundleWithServices, error) {
	var serviceIDs, addonIDs []string
	for _, b := range list {
		serviceIDs = append(serviceIDs, b.ServiceIDs...)
		addonIDs = append(addonIDs, b.AddonIDs...)
	}

	services := map[string]entities.Service{}
	if len(serviceIDs) > 0 {
		found, err := u.services.GetByIDs(ctx, serviceIDs)
		if err != nil {
			return nil, err
		}
		for _, s := range found {
			services[s.ID] = s
		}
	}
	addons := map[string]entities.Addon{}
	if len(addonIDs) > 0 {
		found, err := u.addons.GetByIDs(ctx, addonIDs)
		if err != nil {
			return nil, err
		}
		for _, a := range found {
			addons[a.ID] = a
		}
	}

	out := make([]entities.BundleWithServices, 0, len(list))
	for _, b := range list {
		bw := entities.BundleWithServices{Bundle: b, Services: []entities.Service{}, Addons: []entities.Addon{}}
		for _, id := range b.ServiceIDs {
			if s, ok := services[id]; ok {
				bw.Services = append(bw.Services, s)
			}
		}
		for _, id := range b.AddonIDs {
			if a, ok := addons[id]; ok {
				bw.Addons = append(bw.Addons, a)
			}
		}
		out = append(out, bw)
	}
	return out, nil
}

func validateBundle(b entities.Bundle) error {
	if strings.TrimSpace(b.Name) == "" {
		return invalidCatalog("name is required")
	}
	if len(b.ServiceIDs) == 0 {
		return invalidCatalog("at least one service is required")
	}
	if !b.DiscountType.Valid() {
		return invalidCatalog("discount type must be percentage or fixed")
	}
	if b.DiscountValue < 0 {
		return invalidCatalog("discount value must not be negative")
	}
	return nil
}

func (u *CatalogUseCase) CreateBundle(ctx context.Context, caller entities.Caller, b entities.Bundle) (entities.Bundle, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.Bundle{}, err
	}
	b.Name = strings.TrimSpace(b.Name)
	if err := validateBundle(b); err != nil {
		return entities.Bundle{}, err
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.IsActive = true
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.AddonIDs == nil {
		b.AddonIDs = []string{}
	}

	created, err := u.bundles.Create(ctx, b)
	if err != nil {
		return entities.Bundle{}, err
	}
	u.log.WithFields(logrus.Fields{"bundle_id": created.ID, "name": created.Name}).Info("[catalog][usecase] bundle created")
	return created, nil
}

func (u *CatalogUseCase) UpdateBundle(ctx context.Context, caller entities.Caller, id string, b entities.Bundle) (entities.Bundle, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.Bundle{}, err
	}
	id, err := normalizeID(id)
	if err != nil {
		return entities.Bundle{}, err
	}
	b.Name = strings.TrimSpace(b.Name)
	if err := validateBundle(b); err != nil {
		return entities.Bundle{}, err
	}

	existing, err := u.bundles.GetByID(ctx, id)
	if err != nil {
		return entities.Bundle{}, err
	}
	if existing.ID == "" {
		return entities.Bundle{}, ErrBundleNotFound
	}

	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	b.IsActive = b.IsActive || existing.IsActive
	b.UpdatedAt = time.Now().UTC()
	if b.AddonIDs == nil {
		b.AddonIDs = []string{}
	}

	updated, err := u.bundles.Update(ctx, b)
	if err != nil {
		return entities.Bundle{}, err
	}
	if updated.ID == "" {
		return entities.Bundle{}, ErrBundleNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteBundle(ctx context.Context, caller entities.Caller, id string) error {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return err
	}
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	updated, err := u.bundles.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrBundleNotFound
	}
	u.log.WithField("bundle_id", id).Info("[catalog][usecase] bundle deactivated")
	return nil
}
