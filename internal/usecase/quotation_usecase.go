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
	"golang.org/x/sync/errgroup"
)

var (
	ErrQuotationNotFound       = errors.New("quotation not found")
	ErrInvalidQuotationID      = errors.New("invalid quotation id")
	ErrInvalidClientName       = errors.New("client name is required")
	ErrMissingItems            = errors.New("items are required")
	ErrInvalidQuantity         = errors.New("quantity must not be negative")
	ErrInvalidQuotationStatus  = errors.New("status is required")
	ErrQuotationNumberConflict = errors.New("quotation number conflict")
)

// CreateQuotationInput carries the client-supplied part of a new quotation.
// Items must be non-nil; an empty slice yields a zero-priced quotation.
type CreateQuotationInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	Items       []LineRequest
	BundleIDs   []string
	Notes       string
}

// IQuotationUseCase exposes the quotation lifecycle.
//
// Access rule for reads and status updates: admins see everything, any other
// caller only the quotations they created.

type IQuotationUseCase interface {
	Create(ctx context.Context, caller entities.Caller, in CreateQuotationInput) (entities.QuotationView, error)
	List(ctx context.Context, caller entities.Caller) ([]entities.QuotationView, error)
	GetByID(ctx context.Context, caller entities.Caller, id string) (entities.QuotationView, error)
	UpdateStatus(ctx context.Context, caller entities.Caller, id string, status string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo     interfaces.IQuotationRepository
	pricing  IPricingEngine
	numbers  *QuotationNumberGenerator
	services interfaces.IServiceRepository
	addons   interfaces.IAddonRepository
	bundles  interfaces.IBundleRepository
	users    interfaces.IUserRepository
	log      logrus.FieldLogger
	now      func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	pricing IPricingEngine,
	numbers *QuotationNumberGenerator,
	services interfaces.IServiceRepository,
	addons interfaces.IAddonRepository,
	bundles interfaces.IBundleRepository,
	users interfaces.IUserRepository,
	log logrus.FieldLogger,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:     repo,
		pricing:  pricing,
		numbers:  numbers,
		services: services,
		addons:   addons,
		bundles:  bundles,
		users:    users,
		log:      log,
		now:      time.Now,
	}
}

func (u *QuotationUseCase) Create(ctx context.Context, caller entities.Caller, in CreateQuotationInput) (entities.QuotationView, error) {
	if caller.UserID == "" {
		return entities.QuotationView{}, ErrUnauthenticated
	}
	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		return entities.QuotationView{}, ErrInvalidClientName
	}
	if in.Items == nil {
		return entities.QuotationView{}, ErrMissingItems
	}
	for _, item := range in.Items {
		if item.Quantity < 0 {
			return entities.QuotationView{}, ErrInvalidQuantity
		}
	}

	priced, err := u.pricing.ComputeQuotationPricing(ctx, in.Items, in.BundleIDs)
	if err != nil {
		return entities.QuotationView{}, err
	}

	now := u.now().UTC()
	bundleIDs := in.BundleIDs
	if bundleIDs == nil {
		bundleIDs = []string{}
	}
	q := entities.Quotation{
		ID:          uuid.NewString(),
		Number:      u.numbers.Generate(ctx, now),
		ClientName:  clientName,
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Items:       priced.Items,
		BundleIDs:   bundleIDs,
		Subtotal:    priced.Subtotal,
		Discount:    priced.Discount,
		Total:       priced.Total,
		Notes:       in.Notes,
		CreatedBy:   caller.UserID,
		Status:      entities.QuotationStatusDraft,
		ValidUntil:  now.Add(entities.QuotationValidity),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateQuotationNumber) {
			return entities.QuotationView{}, fmt.Errorf("%w: %s", ErrQuotationNumberConflict, q.Number)
		}
		return entities.QuotationView{}, err
	}

	u.log.WithFields(logrus.Fields{
		"quotation_id": created.ID,
		"number":       created.Number,
		"created_by":   created.CreatedBy,
		"total":        created.Total,
	}).Info("[quotation][usecase] created")

	views, err := u.Expand(ctx, []entities.Quotation{created})
	if err != nil {
		return entities.QuotationView{}, err
	}
	return views[0], nil
}

func (u *QuotationUseCase) List(ctx context.Context, caller entities.Caller) ([]entities.QuotationView, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}

	var (
		list []entities.Quotation
		err  error
	)
	if caller.IsAdmin() {
		list, err = u.repo.ListAll(ctx)
	} else {
		list, err = u.repo.ListByCreator(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return u.Expand(ctx, list)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, caller entities.Caller, id string) (entities.QuotationView, error) {
	q, err := u.load(ctx, caller, id)
	if err != nil {
		return entities.QuotationView{}, err
	}
	views, err := u.Expand(ctx, []entities.Quotation{q})
	if err != nil {
		return entities.QuotationView{}, err
	}
	return views[0], nil
}

func (u *QuotationUseCase) UpdateStatus(ctx context.Context, caller entities.Caller, id string, status string) (entities.Quotation, error) {
	if strings.TrimSpace(status) == "" {
		return entities.Quotation{}, ErrInvalidQuotationStatus
	}
	if _, err := u.load(ctx, caller, id); err != nil {
		return entities.Quotation{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, strings.TrimSpace(id), entities.QuotationStatus(status))
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	u.log.WithFields(logrus.Fields{"quotation_id": updated.ID, "status": updated.Status}).Info("[quotation][usecase] status updated")
	return updated, nil
}

// load fetches a quotation and enforces the owner-or-admin rule.
func (u *QuotationUseCase) load(ctx context.Context, caller entities.Caller, id string) (entities.Quotation, error) {
	if caller.UserID == "" {
		return entities.Quotation{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if err := requireOwnerOrAdmin(caller, q.CreatedBy); err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

// Expand joins quotations with the current catalog and creator records. It is
// display only: stored prices are never touched. References that no longer
// resolve are left out of the view.
func (u *QuotationUseCase) Expand(ctx context.Context, list []entities.Quotation) ([]entities.QuotationView, error) {
	if len(list) == 0 {
		return []entities.QuotationView{}, nil
	}

	var serviceIDs, addonIDs, bundleIDs, userIDs []string
	for _, q := range list {
		for _, item := range q.Items {
			serviceIDs = append(serviceIDs, item.ServiceID)
			addonIDs = append(addonIDs, item.AddonIDs...)
		}
		bundleIDs = append(bundleIDs, q.BundleIDs...)
		if q.CreatedBy != "" {
			userIDs = append(userIDs, q.CreatedBy)
		}
	}

	services := map[string]entities.Service{}
	addons := map[string]entities.Addon{}
	bundles := map[string]entities.Bundle{}
	users := map[string]entities.User{}

	g, gctx := errgroup.WithContext(ctx)
	if len(serviceIDs) > 0 {
		g.Go(func() error {
			found, err := u.services.GetByIDs(gctx, serviceIDs)
			for _, s := range found {
				services[s.ID] = s
			}
			return err
		})
	}
	if len(addonIDs) > 0 {
		g.Go(func() error {
			found, err := u.addons.GetByIDs(gctx, addonIDs)
			for _, a := range found {
				addons[a.ID] = a
			}
			return err
		})
	}
	if len(bundleIDs) > 0 {
		g.Go(func() error {
			found, err := u.bundles.GetByIDs(gctx, bundleIDs)
			for _, b := range found {
				bundles[b.ID] = b
			}
			return err
		})
	}
	if len(userIDs) > 0 {
		g.Go(func() error {
			found, err := u.users.GetByIDs(gctx, userIDs)
			for _, usr := range found {
				users[usr.ID] = usr
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]entities.QuotationView, 0, len(list))
	for _, q := range list {
		v := entities.QuotationView{
			Quotation: q,
			ItemViews: make([]entities.QuotationItemView, 0, len(q.Items)),
			Bundles:   []entities.Bundle{},
		}
		for _, item := range q.Items {
			iv := entities.QuotationItemView{QuotationItem: item, Addons: []entities.Addon{}}
			if s, ok := services[item.ServiceID]; ok {
				s := s
				iv.Service = &s
			}
			for _, id := range item.AddonIDs {
				if a, ok := addons[id]; ok {
					iv.Addons = append(iv.Addons, a)
				}
			}
			v.ItemViews = append(v.ItemViews, iv)
		}
		for _, id := range q.BundleIDs {
			if b, ok := bundles[id]; ok {
				v.Bundles = append(v.Bundles, b)
			}
		}
		if usr, ok := users[q.CreatedBy]; ok {
			summary := usr.Summary()
			v.Creator = &summary
		}
		views = append(views, v)
	}
	return views, nil
}
