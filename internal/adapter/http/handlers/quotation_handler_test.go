package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quotation_service/internal/adapter/http/handlers/mocks"
	"quotation_service/internal/adapter/http/middleware"
	"quotation_service/internal/domain/entities"
	"quotation_service/internal/infrastructure/metrics"
	"quotation_service/internal/usecase"
	"quotation_service/internal/usecase/interfaces"
	mock_interfaces "quotation_service/internal/usecase/interfaces/mocks"
	"quotation_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	testAdmin = entities.Caller{UserID: "admin-1", Role: entities.RoleAdmin}
	testAgent = entities.Caller{UserID: "agent-1", Role: entities.RoleSalesAgent}
)

func sampleQuotationView() entities.QuotationView {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := entities.Service{ID: "s1", Name: "Website", BasePrice: 100}
	return entities.QuotationView{
		Quotation: entities.Quotation{
			ID:         "q1",
			Number:     "NEX-1714564800000-5",
			ClientName: "Acme",
			Items:      []entities.QuotationItem{{ServiceID: "s1", Quantity: 1, Price: 100}},
			Subtotal:   100,
			Total:      100,
			CreatedBy:  testAgent.UserID,
			Status:     entities.QuotationStatusDraft,
			CreatedAt:  created,
			ValidUntil: created.Add(entities.QuotationValidity),
		},
		ItemViews: []entities.QuotationItemView{{
			QuotationItem: entities.QuotationItem{ServiceID: "s1", Quantity: 1, Price: 100},
			Service:       &svc,
		}},
		Creator: &entities.UserSummary{ID: testAgent.UserID, Name: "Agent"},
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IQuotationUseCase, m *metrics.Metrics) *gin.Engine {
		h := NewQuotationHandler(uc, nil, m)
		r := gin.New()
		r.POST("/api/quotations", middleware.WithCaller(testAgent), h.CreateQuotation)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIQuotationUseCase(ctrl), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), testAgent, gomock.Any()).Return(entities.QuotationView{}, usecase.ErrInvalidClientName)
		r := newRouter(uc, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != usecase.ErrInvalidClientName.Error() {
			t.Fatalf("unexpected message %q", body.Message)
		}
	})

	t.Run("number conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.QuotationView{}, fmt.Errorf("%w: NEX-1-1", usecase.ErrQuotationNumberConflict))
		r := newRouter(uc, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewBufferString(`{"clientName":"Acme","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), testAgent, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Caller, in usecase.CreateQuotationInput) (entities.QuotationView, error) {
				if in.ClientName != "Acme" || len(in.Items) != 1 || in.Items[0].Quantity != 2 || in.Items[0].AddonIDs[0] != "a1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if len(in.BundleIDs) != 1 || in.BundleIDs[0] != "b1" {
					t.Fatalf("unexpected bundles: %v", in.BundleIDs)
				}
				return sampleQuotationView(), nil
			})
		m := metrics.New()
		r := newRouter(uc, m)

		body := `{"clientName":"Acme","items":[{"service":"s1","quantity":2,"addons":["a1"]}],"bundles":["b1"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["quotation_number"] != "NEX-1714564800000-5" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if creator, ok := got["created_by"].(map[string]any); !ok || creator["name"] != "Agent" {
			t.Fatalf("expected creator summary, got %v", got["created_by"])
		}
	})

	t.Run("documented body shape reaches usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		var seen usecase.CreateQuotationInput
		uc.EXPECT().Create(gomock.Any(), testAgent, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Caller, in usecase.CreateQuotationInput) (entities.QuotationView, error) {
				seen = in
				return sampleQuotationView(), nil
			})
		r := newRouter(uc, nil)

		body := `{"clientName":"Acme","clientEmail":"buyer@acme.com","clientPhone":"555","items":[{"service":"A","quantity":2,"addons":["x"]}],"bundles":["b1"],"notes":"rush"}`
		req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if seen.ClientName != "Acme" || seen.ClientEmail != "buyer@acme.com" || seen.ClientPhone != "555" || seen.Notes != "rush" {
			t.Fatalf("client fields not bound: %+v", seen)
		}
		if len(seen.Items) != 1 || seen.Items[0].ServiceID != "A" || seen.Items[0].Quantity != 2 {
			t.Fatalf("unexpected lines: %+v", seen.Items)
		}
		if len(seen.Items[0].AddonIDs) != 1 || seen.Items[0].AddonIDs[0] != "x" {
			t.Fatalf("unexpected addons: %v", seen.Items[0].AddonIDs)
		}
		if len(seen.BundleIDs) != 1 || seen.BundleIDs[0] != "b1" {
			t.Fatalf("unexpected bundles: %v", seen.BundleIDs)
		}
	})
}

func TestQuotationHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), testAgent, "missing").Return(entities.QuotationView{}, usecase.ErrQuotationNotFound)

		r := gin.New()
		r.GET("/api/quotations/:id", middleware.WithCaller(testAgent), NewQuotationHandler(uc, nil, nil).GetQuotation)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotations/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "QUOTATION_NOT_FOUND" || body.Message != "Quotation not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("get maps access denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "q1").Return(entities.QuotationView{}, usecase.ErrAccessDenied)

		r := gin.New()
		r.GET("/api/quotations/:id", middleware.WithCaller(testAgent), NewQuotationHandler(uc, nil, nil).GetQuotation)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotations/q1", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("list passes store errors through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), testAdmin).Return(nil, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.GET("/api/quotations", middleware.WithCaller(testAdmin), NewQuotationHandler(uc, nil, nil).ListQuotations)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotations", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "dynamodb unavailable" {
			t.Fatalf("expected verbatim message, got %q", body.Message)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), testAdmin).Return([]entities.QuotationView{sampleQuotationView()}, nil)

		r := gin.New()
		r.GET("/api/quotations", middleware.WithCaller(testAdmin), NewQuotationHandler(uc, nil, nil).ListQuotations)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotations", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 {
			t.Fatalf("unexpected body %s: %v", w.Body.String(), err)
		}
	})
}

func TestQuotationHandler_UpdateQuotationStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), testAgent, "q1", "").Return(entities.Quotation{}, usecase.ErrInvalidQuotationStatus)

		r := gin.New()
		r.PATCH("/api/quotations/:id/status", middleware.WithCaller(testAgent), NewQuotationHandler(uc, nil, nil).UpdateQuotationStatus)
		req := httptest.NewRequest(http.MethodPatch, "/api/quotations/q1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), testAgent, "q1", "archived").
			Return(entities.Quotation{ID: "q1", Status: "archived"}, nil)

		r := gin.New()
		r.PATCH("/api/quotations/:id/status", middleware.WithCaller(testAgent), NewQuotationHandler(uc, nil, nil).UpdateQuotationStatus)
		req := httptest.NewRequest(http.MethodPatch, "/api/quotations/q1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got entities.Quotation
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Status != "archived" {
			t.Fatalf("unexpected body %s: %v", w.Body.String(), err)
		}
	})
}

func TestQuotationHandler_DownloadQuotationPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IQuotationUseCase, exp interfaces.IDocumentExporter) *gin.Engine {
		r := gin.New()
		r.GET("/api/pdf/:id", middleware.WithCaller(testAgent), NewQuotationHandler(uc, exp, nil).DownloadQuotationPDF)
		return r
	}

	t.Run("streams pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		exp := mock_interfaces.NewMockIDocumentExporter(ctrl)
		view := sampleQuotationView()
		uc.EXPECT().GetByID(gomock.Any(), testAgent, "q1").Return(view, nil)
		exp.EXPECT().QuotationPDF(view).Return([]byte("%PDF-1.3 test"), nil)

		w := httptest.NewRecorder()
		newRouter(uc, exp).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pdf/q1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		want := `attachment; filename="quotation-NEX-1714564800000-5.pdf"`
		if cd := w.Header().Get("Content-Disposition"); cd != want {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})

	t.Run("not found skips rendering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		exp := mock_interfaces.NewMockIDocumentExporter(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "nope").Return(entities.QuotationView{}, usecase.ErrQuotationNotFound)

		w := httptest.NewRecorder()
		newRouter(uc, exp).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pdf/nope", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("incomplete quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		exp := mock_interfaces.NewMockIDocumentExporter(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "q1").Return(sampleQuotationView(), nil)
		exp.EXPECT().QuotationPDF(gomock.Any()).Return(nil, fmt.Errorf("%w: service \"s1\" of item 1", interfaces.ErrIncompleteQuotation))

		w := httptest.NewRecorder()
		newRouter(uc, exp).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pdf/q1", nil))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
