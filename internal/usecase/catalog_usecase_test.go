package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotation_service/internal/domain/entities"
	mock_interfaces "quotation_service/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

func newCatalogUseCaseForTest(t *testing.T) (*CatalogUseCase, pricingMocks) {
	ctrl := gomock.NewController(t)
	m := pricingMocks{
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		addons:   mock_interfaces.NewMockIAddonRepository(ctrl),
		bundles:  mock_interfaces.NewMockIBundleRepository(ctrl),
	}
	log, _ := test.NewNullLogger()
	return NewCatalogUseCase(m.services, m.addons, m.bundles, log), m
}

func TestCatalogUseCase_ListServices(t *testing.T) {
	uc, m := newCatalogUseCaseForTest(t)
	m.services.EXPECT().ListActive(gomock.Any()).Return([]entities.Service{
		{ID: "s2", Name: "Zeta", Category: entities.CategoryWebsiteDevelopment, AddonIDs: []string{"a1"}},
		{ID: "s1", Name: "Alpha", Category: entities.CategoryWebsiteDevelopment},
		{ID: "s3", Name: "Brand", Category: entities.CategoryBrandedKit},
	}, nil)
	m.addons.EXPECT().GetByIDs(gomock.Any(), []string{"a1"}).Return([]entities.Addon{{ID: "a1", Name: "SEO"}}, nil)

	list, err := uc.ListServices(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 3 || list[0].ID != "s3" || list[1].ID != "s1" || list[2].ID != "s2" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if len(list[2].Addons) != 1 || list[2].Addons[0].Name != "SEO" {
		t.Fatalf("expected populated addons, got %+v", list[2].Addons)
	}
}

func TestCatalogUseCase_GetService(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Service{}, nil)

		_, err := uc.GetService(context.Background(), "s1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.GetService(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCatalogID) {
			t.Fatalf("expected ErrInvalidCatalogID, got %v", err)
		}
	})
}

func TestCatalogUseCase_CreateService(t *testing.T) {
	valid := entities.Service{Name: " Website ", Category: entities.CategoryWebsiteDevelopment, BasePrice: 100, Type: entities.BillingOneTime}

	t.Run("requires admin", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateService(context.Background(), agent, valid)
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		cases := []entities.Service{
			{Category: entities.CategoryCRM, Type: entities.BillingMonthly},
			{Name: "x", Category: "Gardening", Type: entities.BillingMonthly},
			{Name: "x", Category: entities.CategoryCRM, BasePrice: -1, Type: entities.BillingMonthly},
			{Name: "x", Category: entities.CategoryCRM, Type: "weekly"},
		}
		for _, in := range cases {
			if _, err := uc.CreateService(context.Background(), admin, in); !errors.Is(err, ErrInvalidCatalogInput) {
				t.Fatalf("expected ErrInvalidCatalogInput for %+v, got %v", in, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.services.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Name != "Website" || !s.IsActive || s.AddonIDs == nil || s.CreatedAt.IsZero() {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)
		if _, err := uc.CreateService(context.Background(), admin, valid); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestCatalogUseCase_UpdateService(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := entities.Service{ID: "s1", Name: "Old", CreatedAt: created, IsActive: false}
	in := entities.Service{Name: "New", Category: entities.CategoryCRM, BasePrice: 10, Type: entities.BillingMonthly, IsActive: true}

	t.Run("not found", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Service{}, nil)

		_, err := uc.UpdateService(context.Background(), admin, "s1", in)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("keeps identity and can reactivate", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "s1").Return(existing, nil)
		m.services.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID != "s1" || !s.CreatedAt.Equal(created) || s.Name != "New" || !s.IsActive {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)
		if _, err := uc.UpdateService(context.Background(), admin, "s1", in); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestCatalogUseCase_DeleteService(t *testing.T) {
	t.Run("soft deletes", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.services.EXPECT().SetActive(gomock.Any(), "s1", false).Return(entities.Service{ID: "s1"}, nil)

		if err := uc.DeleteService(context.Background(), admin, "s1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.services.EXPECT().SetActive(gomock.Any(), "s1", false).Return(entities.Service{}, nil)

		if err := uc.DeleteService(context.Background(), admin, "s1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_Addons(t *testing.T) {
	t.Run("list sorted by category then name", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.addons.EXPECT().ListActive(gomock.Any()).Return([]entities.Addon{
			{ID: "a2", Name: "B", Category: entities.CategoryWebsiteDevelopment},
			{ID: "a1", Name: "A", Category: entities.CategoryWebsiteDevelopment},
			{ID: "a3", Name: "Z", Category: entities.CategoryCRM},
		}, nil)

		list, err := uc.ListAddons(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if list[0].ID != "a3" || list[1].ID != "a1" || list[2].ID != "a2" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})

	t.Run("create rejects negative price", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateAddon(context.Background(), admin, entities.Addon{Name: "SEO", Category: entities.CategoryCRM, Price: -5, Type: entities.BillingOneTime})
		if !errors.Is(err, ErrInvalidCatalogInput) {
			t.Fatalf("expected ErrInvalidCatalogInput, got %v", err)
		}
	})

	t.Run("delete requires admin", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		if err := uc.DeleteAddon(context.Background(), agent, "a1"); !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})
}

func TestCatalogUseCase_Bundles(t *testing.T) {
	t.Run("list populates services and addons", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.bundles.EXPECT().ListActive(gomock.Any()).Return([]entities.Bundle{
			{ID: "b2", Name: "Zeta", ServiceIDs: []string{"s1", "gone"}, AddonIDs: []string{"a1"}},
			{ID: "b1", Name: "Alpha", ServiceIDs: []string{"s1"}},
		}, nil)
		m.services.EXPECT().GetByIDs(gomock.Any(), []string{"s1", "s1", "gone"}).Return([]entities.Service{{ID: "s1"}}, nil)
		m.addons.EXPECT().GetByIDs(gomock.Any(), []string{"a1"}).Return([]entities.Addon{{ID: "a1"}}, nil)

		list, err := uc.ListBundles(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if list[0].ID != "b1" || list[1].ID != "b2" {
			t.Fatalf("unexpected order: %+v", list)
		}
		if len(list[1].Services) != 1 || len(list[1].Addons) != 1 {
			t.Fatalf("unexpected population: %+v", list[1])
		}
	})

	t.Run("create requires services and discount type", func(t *testing.T) {
		uc, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateBundle(context.Background(), admin, entities.Bundle{Name: "Pack", DiscountType: entities.DiscountFixed})
		if !errors.Is(err, ErrInvalidCatalogInput) {
			t.Fatalf("expected ErrInvalidCatalogInput, got %v", err)
		}
		_, err = uc.CreateBundle(context.Background(), admin, entities.Bundle{Name: "Pack", ServiceIDs: []string{"s1"}, DiscountType: "bogo"})
		if !errors.Is(err, ErrInvalidCatalogInput) {
			t.Fatalf("expected ErrInvalidCatalogInput, got %v", err)
		}
	})

	t.Run("percentage above 100 is accepted", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.bundles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Bundle) (entities.Bundle, error) { return b, nil },
		)
		b, err := uc.CreateBundle(context.Background(), admin, entities.Bundle{Name: "Pack", ServiceIDs: []string{"s1"}, DiscountType: entities.DiscountPercentage, DiscountValue: 120})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if b.DiscountValue != 120 || b.AddonIDs == nil {
			t.Fatalf("unexpected bundle: %+v", b)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		uc, m := newCatalogUseCaseForTest(t)
		m.bundles.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Bundle{}, nil)
		if _, err := uc.GetBundle(context.Background(), "b1"); !errors.Is(err, ErrBundleNotFound) {
			t.Fatalf("expected ErrBundleNotFound, got %v", err)
		}
	})
}
