package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotation_service/internal/adapter/http/handlers/mocks"
	"quotation_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(auth *mocks.MockIAuthUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/me", Authenticate(auth), func(c *gin.Context) {
			c.String(http.StatusOK, CallerFrom(c).UserID)
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIAuthUseCase(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIAuthUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate("bad").Return(entities.Caller{}, errors.New("expired"))
		r := newRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate("good").Return(entities.Caller{UserID: "u1", Role: entities.RoleAdmin}, nil)
		r := newRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "u1" {
			t.Fatalf("expected 200 u1, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, hook := test.NewNullLogger()

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ok", WithCaller(entities.Caller{UserID: "u1"}), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.InfoLevel || entry.Data["user_id"] != "u1" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	if hook.LastEntry().Level != logrus.ErrorLevel {
		t.Fatalf("expected error level, got %v", hook.LastEntry().Level)
	}
}
