package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"quotation_service/internal/adapter/http/handlers/mocks"
	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

type fakeRegistrar struct {
	existing map[string]bool
	created  []usecase.CreateUserInput
}

func (f *fakeRegistrar) Register(_ context.Context, in usecase.CreateUserInput) (entities.User, error) {
	if f.existing[in.Email] {
		return entities.User{}, usecase.ErrUserExists
	}
	f.created = append(f.created, in)
	return entities.User{ID: "id-" + in.Email, Email: in.Email, Role: in.Role}, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestSeeder_SeedsEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockICatalogUseCase(ctrl)
	users := &fakeRegistrar{}
	admin := entities.Caller{UserID: "id-admin@nexlead.com", Role: entities.RoleAdmin}

	catalog.EXPECT().ListServices(gomock.Any()).Return(nil, nil)
	n := 0
	catalog.EXPECT().CreateService(gomock.Any(), admin, gomock.Any()).Times(len(seedServices)).DoAndReturn(
		func(_ context.Context, _ entities.Caller, s entities.Service) (entities.Service, error) {
			s.ID = fmt.Sprintf("s%d", n)
			n++
			return s, nil
		})
	catalog.EXPECT().CreateAddon(gomock.Any(), admin, gomock.Any()).Times(len(seedAddons)).Return(entities.Addon{}, nil)
	catalog.EXPECT().CreateBundle(gomock.Any(), admin, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Caller, b entities.Bundle) (entities.Bundle, error) {
			want := []string{"s0", "s3", "s5", "s10"}
			if len(b.ServiceIDs) != len(want) {
				t.Fatalf("unexpected bundle services: %v", b.ServiceIDs)
			}
			for i := range want {
				if b.ServiceIDs[i] != want[i] {
					t.Fatalf("unexpected bundle services: %v", b.ServiceIDs)
				}
			}
			if b.DiscountType != entities.DiscountPercentage || b.DiscountValue != 15 {
				t.Fatalf("unexpected discount: %s %v", b.DiscountType, b.DiscountValue)
			}
			return b, nil
		})

	s := &seeder{users: users, catalog: catalog, log: quietLogger()}
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.created) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users.created))
	}
}

func TestSeeder_SkipsPopulatedCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockICatalogUseCase(ctrl)
	users := &fakeRegistrar{existing: map[string]bool{"admin@nexlead.com": true, "agent@nexlead.com": true}}
	catalog.EXPECT().ListServices(gomock.Any()).Return([]entities.ServiceWithAddons{{Service: entities.Service{ID: "s1"}}}, nil)

	s := &seeder{users: users, catalog: catalog, log: quietLogger()}
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.created) != 0 {
		t.Fatalf("expected no new users, got %d", len(users.created))
	}
}

func TestSeeder_PropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockICatalogUseCase(ctrl)
	storeErr := errors.New("dynamodb unavailable")
	catalog.EXPECT().ListServices(gomock.Any()).Return(nil, storeErr)

	s := &seeder{users: &fakeRegistrar{}, catalog: catalog, log: quietLogger()}
	if err := s.Seed(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
