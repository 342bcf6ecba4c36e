package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	request "quotation_service/internal/adapter/http/dto/request"
	"quotation_service/internal/adapter/http/handlers/mocks"
	"quotation_service/internal/adapter/http/middleware"
	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T, uc usecase.ICatalogUseCase, caller entities.Caller) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	h := NewCatalogHandler(uc)
	r := gin.New()
	r.Use(middleware.WithCaller(caller))
	r.GET("/api/services", h.ListServices)
	r.GET("/api/services/:id", h.GetService)
	r.POST("/api/services", h.CreateService)
	r.PUT("/api/services/:id", h.UpdateService)
	r.DELETE("/api/services/:id", h.DeleteService)
	r.GET("/api/addons", h.ListAddons)
	r.POST("/api/addons", h.CreateAddon)
	r.DELETE("/api/addons/:id", h.DeleteAddon)
	r.GET("/api/bundles/:id", h.GetBundle)
	r.POST("/api/bundles", h.CreateBundle)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogHandler_Services(t *testing.T) {
	t.Run("list includes addons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().ListServices(gomock.Any()).Return([]entities.ServiceWithAddons{{
			Service: entities.Service{ID: "s1", Name: "Website", IsActive: true},
		}}, nil)

		w := doJSON(newCatalogRouter(t, uc, testAgent), http.MethodGet, "/api/services", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 {
			t.Fatalf("unexpected body %s: %v", w.Body.String(), err)
		}
		if addons, ok := got[0]["addons"].([]any); !ok || len(addons) != 0 {
			t.Fatalf("expected empty addons array, got %v", got[0]["addons"])
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetService(gomock.Any(), "nope").Return(entities.ServiceWithAddons{}, usecase.ErrServiceNotFound)

		w := doJSON(newCatalogRouter(t, uc, testAgent), http.MethodGet, "/api/services/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "SERVICE_NOT_FOUND" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("create rejects missing price before usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		body := `{"name":"Website","category":"Website Development","type":"one-time"}`
		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodPost, "/api/services", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w); got.Message != "base_price is required" {
			t.Fatalf("unexpected message %q", got.Message)
		}
	})

	t.Run("create rejects unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		body := `{"name":"Website","category":"Gardening","base_price":10,"type":"one-time"}`
		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodPost, "/api/services", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create accepts zero price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().CreateService(gomock.Any(), testAdmin, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Caller, s entities.Service) (entities.Service, error) {
				if s.BasePrice != 0 || s.Type != entities.BillingMonthly {
					t.Fatalf("unexpected entity: %+v", s)
				}
				s.ID = "s1"
				return s, nil
			})

		body := `{"name":"Care plan","category":"CRM Services","base_price":0,"type":"monthly"}`
		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodPost, "/api/services", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create by sales agent is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().CreateService(gomock.Any(), testAgent, gomock.Any()).Return(entities.Service{}, usecase.ErrAccessDenied)

		body := `{"name":"Website","category":"Website Development","base_price":10,"type":"one-time"}`
		w := doJSON(newCatalogRouter(t, uc, testAgent), http.MethodPost, "/api/services", body)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().UpdateService(gomock.Any(), testAdmin, "nope", gomock.Any()).Return(entities.Service{}, usecase.ErrServiceNotFound)

		body := `{"name":"Website","category":"Website Development","base_price":10,"type":"one-time"}`
		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodPut, "/api/services/nope", body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().DeleteService(gomock.Any(), testAdmin, "s1").Return(nil)

		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodDelete, "/api/services/s1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got["message"] != "Service deleted" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_AddonsAndBundles(t *testing.T) {
	t.Run("addon list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().ListAddons(gomock.Any()).Return(nil, nil)

		w := doJSON(newCatalogRouter(t, uc, testAgent), http.MethodGet, "/api/addons", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("addon create rejects negative price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		body := `{"name":"SEO","category":"Website Development","price":-1,"type":"one-time"}`
		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodPost, "/api/addons", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w); got.Message != "price must be at least 0" {
			t.Fatalf("unexpected message %q", got.Message)
		}
	})

	t.Run("addon delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().DeleteAddon(gomock.Any(), testAdmin, "a9").Return(usecase.ErrAddonNotFound)

		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodDelete, "/api/addons/a9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("bundle create rejects bad discount type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		body := `{"name":"Pack","service_ids":["s1"],"discount_type":"bogo","discount_value":10}`
		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodPost, "/api/bundles", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w); got.Message != "discount_type must be percentage or fixed" {
			t.Fatalf("unexpected message %q", got.Message)
		}
	})

	t.Run("bundle create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().CreateBundle(gomock.Any(), testAdmin, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Caller, b entities.Bundle) (entities.Bundle, error) {
				if b.DiscountType != entities.DiscountPercentage || b.DiscountValue != 15 || len(b.ServiceIDs) != 2 {
					t.Fatalf("unexpected bundle: %+v", b)
				}
				b.ID = "b1"
				return b, nil
			})

		body := `{"name":"Pack","service_ids":["s1","s2"],"discount_type":"percentage","discount_value":15}`
		w := doJSON(newCatalogRouter(t, uc, testAdmin), http.MethodPost, "/api/bundles", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("bundle get resolves services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetBundle(gomock.Any(), "b1").Return(entities.BundleWithServices{
			Bundle:   entities.Bundle{ID: "b1", ServiceIDs: []string{"s1", "gone"}},
			Services: []entities.Service{{ID: "s1"}},
		}, nil)

		w := doJSON(newCatalogRouter(t, uc, testAgent), http.MethodGet, "/api/bundles/b1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if services, ok := got["services"].([]any); !ok || len(services) != 1 {
			t.Fatalf("expected one resolved service, got %v", got["services"])
		}
	})
}
