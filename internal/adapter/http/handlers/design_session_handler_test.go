package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"disena_service/internal/adapter/http/handlers/mocks"
	"disena_service/internal/domain/design"
	"disena_service/internal/domain/entities"
	"disena_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleSession() entities.DesignSession {
	snap := entities.CatalogSnapshot{
		Categories: []entities.Category{{ID: "cat-1", Name: "Spaces"}},
		Services: []entities.Service{
			{ID: "svc-1", CategoryID: "cat-1", NameEN: "Room", PriceMinUSD: 1500},
		},
	}
	return entities.DesignSession{
		ID:               "ses-1",
		State:            entities.SessionStateConfiguring,
		TotalAreaM2:      80,
		ActiveCategoryID: "cat-1",
		Snapshot:         snap,
		Ledger:           entities.Ledger{Entries: []entities.SelectionEntry{{ServiceID: "svc-1", CategoryID: "cat-1"}}},
	}
}

func TestDesignSessionHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().CreateSession(gomock.Any()).Return(sampleSession(), nil)

		r := gin.New()
		r.POST("/v1/design/sessions", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["session_id"] != "ses-1" || body["state"] != "configuring" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["allocation"]; !ok {
			t.Fatalf("expected allocation in body: %v", body)
		}
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().CreateSession(gomock.Any()).Return(entities.DesignSession{}, usecase.ErrCatalogLoad)

		r := gin.New()
		r.POST("/v1/design/sessions", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestDesignSessionHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().GetSession(gomock.Any(), "nope").Return(entities.DesignSession{}, usecase.ErrSessionNotFound)

		r := gin.New()
		r.GET("/v1/design/sessions/:session_id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/design/sessions/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDesignSessionHandler_ToggleSelection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/selection/toggle", h.ToggleSelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/selection/toggle", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().ToggleSelection(gomock.Any(), "ses-1", "cat-1", "svc-nope").
			Return(entities.DesignSession{}, usecase.ErrUnknownService)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/selection/toggle", h.ToggleSelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/selection/toggle",
			bytes.NewBufferString(`{"category_id":"cat-1","service_id":"svc-nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().ToggleSelection(gomock.Any(), "ses-1", "cat-1", "svc-1").
			Return(sampleSession(), nil)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/selection/toggle", h.ToggleSelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/selection/toggle",
			bytes.NewBufferString(`{"category_id":"  cat-1  ","service_id":"svc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestDesignSessionHandler_SetBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/design/sessions/:session_id/budget", h.SetBudget)

		req := httptest.NewRequest(http.MethodPatch, "/v1/design/sessions/ses-1/budget", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("clamped edit carries advisory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		s := sampleSession()
		s.TotalAreaM2 = 1000
		uc.EXPECT().SetBudget(gomock.Any(), "ses-1", float64(2500)).
			Return(s, design.BudgetAdvisoryCeilingExceeded, nil)

		r := gin.New()
		r.PATCH("/v1/design/sessions/:session_id/budget", h.SetBudget)

		req := httptest.NewRequest(http.MethodPatch, "/v1/design/sessions/ses-1/budget",
			bytes.NewBufferString(`{"total_area_m2":2500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["budget_advisory"] != "ceiling_exceeded" {
			t.Fatalf("expected ceiling advisory, got %v", body["budget_advisory"])
		}
	})
}

func TestDesignSessionHandler_RequestQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incomplete allocation returns suggestions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		s := sampleSession()
		s.State = entities.SessionStateSuggesting
		set := design.SuggestionSet{
			MissingAreaM2: 24,
			Candidates:    []entities.Service{{ID: "svc-1", CategoryID: "cat-1", NameEN: "Room"}},
		}
		uc.EXPECT().RequestQuote(gomock.Any(), "ses-1").Return(s, &set, nil)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/quote", h.RequestQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["code"] != "INCOMPLETE_ALLOCATION" {
			t.Fatalf("expected INCOMPLETE_ALLOCATION, got %v", body["code"])
		}
		if body["missing_area_m2"] != float64(24) {
			t.Fatalf("expected missing area 24, got %v", body["missing_area_m2"])
		}
	})

	t.Run("exhausted set carries remediations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		s := sampleSession()
		s.State = entities.SessionStateSuggesting
		set := design.SuggestionSet{
			MissingAreaM2: 6,
			Exhausted:     true,
			Remediations: []design.Remediation{
				{Action: design.RemediationShrinkTotalArea, TotalAreaM2: 80},
				{Action: design.RemediationRaiseTotalArea},
			},
		}
		uc.EXPECT().RequestQuote(gomock.Any(), "ses-1").Return(s, &set, nil)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/quote", h.RequestQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["code"] != "SUGGESTIONS_EXHAUSTED" {
			t.Fatalf("expected SUGGESTIONS_EXHAUSTED, got %v", body["code"])
		}
	})

	t.Run("area exceeded maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().RequestQuote(gomock.Any(), "ses-1").
			Return(entities.DesignSession{}, nil, design.ErrAreaExceeded)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/quote", h.RequestQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["code"] != "AREA_EXCEEDED" {
			t.Fatalf("expected AREA_EXCEEDED, got %v", body["code"])
		}
	})

	t.Run("success returns quoted session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		s := sampleSession()
		s.State = entities.SessionStateQuoted
		s.Quote = &entities.Quote{ID: "q-1", TotalPriceUSD: 1500, LineItems: []entities.QuoteLineItem{
			{ServiceID: "svc-1", NameEN: "Room", PriceMinUSD: 1500},
		}}
		uc.EXPECT().RequestQuote(gomock.Any(), "ses-1").Return(s, nil, nil)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/quote", h.RequestQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		quote, ok := body["quote"].(map[string]any)
		if !ok || quote["quote_id"] != "q-1" {
			t.Fatalf("expected quote in body, got %v", body)
		}
	})
}

func TestDesignSessionHandler_AcceptSuggestion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not a suggestion maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().AcceptSuggestion(gomock.Any(), "ses-1", "svc-base").
			Return(entities.DesignSession{}, usecase.ErrNotASuggestion)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/suggestions/accept", h.AcceptSuggestion)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/suggestions/accept",
			bytes.NewBufferString(`{"service_id":"svc-base"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("state conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().AcceptSuggestion(gomock.Any(), "ses-1", "svc-1").
			Return(entities.DesignSession{}, usecase.ErrSessionStateConflict)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/suggestions/accept", h.AcceptSuggestion)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/suggestions/accept",
			bytes.NewBufferString(`{"service_id":"svc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestDesignSessionHandler_SendQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().SendQuote(gomock.Any(), "ses-1", "visitor@example.com").Return("inv-42", nil)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/quote/send", h.SendQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/quote/send",
			bytes.NewBufferString(`{"contact_email":"visitor@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["reference"] != "inv-42" || body["sent_to"] != "visitor@example.com" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("no quote maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().SendQuote(gomock.Any(), "ses-1", "visitor@example.com").
			Return("", usecase.ErrQuoteNotAvailable)

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/quote/send", h.SendQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/quote/send",
			bytes.NewBufferString(`{"contact_email":"visitor@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDesignSessionUseCase(ctrl)
		h := NewDesignSessionHandler(uc)

		uc.EXPECT().SendQuote(gomock.Any(), "ses-1", "visitor@example.com").
			Return("", errors.New("gateway down"))

		r := gin.New()
		r.POST("/v1/design/sessions/:session_id/quote/send", h.SendQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/quote/send",
			bytes.NewBufferString(`{"contact_email":"visitor@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDesignSessionHandler_ReopenSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDesignSessionUseCase(ctrl)
	h := NewDesignSessionHandler(uc)

	s := sampleSession()
	uc.EXPECT().ReopenSession(gomock.Any(), "ses-1").Return(s, nil)

	r := gin.New()
	r.POST("/v1/design/sessions/:session_id/reopen", h.ReopenSession)

	req := httptest.NewRequest(http.MethodPost, "/v1/design/sessions/ses-1/reopen", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
