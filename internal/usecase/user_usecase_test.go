package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"
	mock_interfaces "quotation_service/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newUserUseCaseForTest(t *testing.T) (*UserUseCase, *mock_interfaces.MockIUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	log, _ := test.NewNullLogger()
	uc := NewUserUseCase(repo, log)
	uc.cost = bcrypt.MinCost
	return uc, repo
}

func TestUserUseCase_List(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		uc, _ := newUserUseCaseForTest(t)
		if _, err := uc.List(context.Background(), agent); !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t)
		now := time.Now()
		repo.EXPECT().List(gomock.Any()).Return([]entities.User{
			{ID: "old", CreatedAt: now.Add(-time.Hour)},
			{ID: "new", CreatedAt: now},
		}, nil)

		list, err := uc.List(context.Background(), admin)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if list[0].ID != "new" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})
}

func TestUserUseCase_Create(t *testing.T) {
	valid := CreateUserInput{Name: "Ana", Email: "Ana@Example.com", Password: "secret1"}

	t.Run("validation", func(t *testing.T) {
		uc, _ := newUserUseCaseForTest(t)
		cases := []struct {
			in   CreateUserInput
			want error
		}{
			{CreateUserInput{Email: "a@b.c", Password: "secret1"}, ErrInvalidUserName},
			{CreateUserInput{Name: "A", Email: "nope", Password: "secret1"}, ErrInvalidUserEmail},
			{CreateUserInput{Name: "A", Email: "a@b.c", Password: "12345"}, ErrWeakPassword},
			{CreateUserInput{Name: "A", Email: "a@b.c", Password: "secret1", Role: "owner"}, ErrInvalidUserRole},
		}
		for _, tc := range cases {
			if _, err := uc.Create(context.Background(), admin, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		}
	})

	t.Run("existing email", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1"}, nil)

		if _, err := uc.Create(context.Background(), admin, valid); !errors.Is(err, ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	t.Run("store race on email", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrDuplicateUserEmail)

		if _, err := uc.Create(context.Background(), admin, valid); !errors.Is(err, ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	t.Run("defaults role and hashes password", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleSalesAgent || u.Email != "ana@example.com" {
					t.Fatalf("unexpected user: %+v", u)
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) != nil {
					t.Fatalf("password was not hashed with bcrypt")
				}
				return u, nil
			},
		)

		if _, err := uc.Create(context.Background(), admin, valid); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}
