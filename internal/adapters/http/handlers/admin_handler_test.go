package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
	"github.com/jsamuelsen11/site-content-service/mocks"
)

func newAdminHandler(t *testing.T) (*handlers.AdminHandler, *mocks.MockMutationService, *mocks.MockContentService) {
	t.Helper()
	mut := mocks.NewMockMutationService(t)
	svc := mocks.NewMockContentService(t)
	return handlers.NewAdminHandler(mut, svc), mut, svc
}

func completed(kind content.Kind, e content.Entity) *ports.MutationResult {
	return &ports.MutationResult{
		State:    ports.StateCompleted,
		Kind:     kind,
		Entity:   e,
		Redirect: "/admin/" + kind.String(),
	}
}

// --- Create ---

func TestAdminCreate_JSON(t *testing.T) {
	t.Parallel()
	h, mut, _ := newAdminHandler(t)

	form := ports.Record{"question": "Q?", "answer": "A."}
	mut.EXPECT().Create(mock.Anything, content.KindFAQ, form).
		Return(completed(content.KindFAQ, validFAQ()), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/faqs", jsonBody(t, form))
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"kind": "faqs"})
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["state"] != "completed" {
		t.Errorf("state = %v, want completed", resp["state"])
	}
	if resp["redirect"] != "/admin/faqs" {
		t.Errorf("redirect = %v, want /admin/faqs", resp["redirect"])
	}
}

func TestAdminCreate_FormEncoded(t *testing.T) {
	t.Parallel()
	h, mut, _ := newAdminHandler(t)

	want := ports.Record{
		"title":        "Audit",
		"featured":     "on",
		"deliverables": []string{"Report", "Roadmap"},
	}
	mut.EXPECT().Create(mock.Anything, content.KindService, want).
		Return(completed(content.KindService, content.Service{Title: "Audit"}), nil)

	form := url.Values{
		"title":        {"Audit"},
		"featured":     {"on"},
		"deliverables": {"Report", "Roadmap"},
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/services", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withChiParams(req, map[string]string{"kind": "services"})
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestAdminCreate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		result     *ports.MutationResult
		err        error
		wantStatus int
		wantState  string
	}{
		{
			name:       "rejected",
			result:     &ports.MutationResult{State: ports.StateRejected, Kind: content.KindFAQ},
			err:        domain.NewValidationError("answer", domain.MsgRequired),
			wantStatus: http.StatusBadRequest,
			wantState:  "rejected",
		},
		{
			name:       "store failure",
			result:     &ports.MutationResult{State: ports.StateFailed, Kind: content.KindFAQ},
			err:        &domain.StoreError{Op: "create", Kind: "faqs", Err: errors.New("boom")},
			wantStatus: http.StatusBadGateway,
			wantState:  "failed",
		},
		{
			name:       "no result defaults to failed",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantState:  "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, mut, _ := newAdminHandler(t)

			mut.EXPECT().Create(mock.Anything, content.KindFAQ, mock.Anything).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/faqs", bytes.NewBufferString(`{"question":"Q?"}`))
			req.Header.Set("Content-Type", "application/json")
			req = withChiParams(req, map[string]string{"kind": "faqs"})
			h.Create(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.State != tt.wantState {
				t.Errorf("State = %q, want %q", resp.State, tt.wantState)
			}
		})
	}
}

func TestAdminCreate_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind string
		body string
	}{
		{"unknown kind", "posts", `{}`},
		{"invalid JSON", "faqs", "{bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _ := newAdminHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/"+tt.kind, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withChiParams(req, map[string]string{"kind": tt.kind})
			h.Create(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

// --- Update ---

func TestAdminUpdate_Success(t *testing.T) {
	t.Parallel()
	h, mut, _ := newAdminHandler(t)

	form := ports.Record{"title": "Checkout redesign", "slug": "checkout-redesign"}
	mut.EXPECT().Update(mock.Anything, content.KindProject, "p1", form).
		Return(completed(content.KindProject, validProject()), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/projects/p1", jsonBody(t, form))
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"kind": "projects", "id": "p1"})
	h.Update(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	item, ok := resp["item"].(map[string]any)
	if !ok || item["slug"] != "checkout-redesign" {
		t.Errorf("item = %v, want project checkout-redesign", resp["item"])
	}
}

func TestAdminUpdate_NotFound(t *testing.T) {
	t.Parallel()
	h, mut, _ := newAdminHandler(t)

	mut.EXPECT().Update(mock.Anything, content.KindProject, "gone", mock.Anything).
		Return(&ports.MutationResult{State: ports.StateFailed}, domain.NotFound("projects", "gone", nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/projects/gone", bytes.NewBufferString(`{"title":"x"}`))
	req = withChiParams(req, map[string]string{"kind": "projects", "id": "gone"})
	h.Update(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Delete ---

func TestAdminDelete_Success(t *testing.T) {
	t.Parallel()
	h, mut, _ := newAdminHandler(t)

	mut.EXPECT().Delete(mock.Anything, content.KindTestimonial, "t1").
		Return(completed(content.KindTestimonial, nil), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/testimonials/t1", nil)
	req = withChiParams(req, map[string]string{"kind": "testimonials", "id": "t1"})
	h.Delete(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if _, ok := resp["item"]; ok {
		t.Errorf("item present = %v, want omitted", resp["item"])
	}
}

func TestAdminDelete_BlankID(t *testing.T) {
	t.Parallel()
	h, _, _ := newAdminHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/testimonials/", nil)
	req = withChiParams(req, map[string]string{"kind": "testimonials", "id": ""})
	h.Delete(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.State != "rejected" {
		t.Errorf("State = %q, want rejected", resp.State)
	}
}

// --- Stats ---

func TestAdminStats(t *testing.T) {
	t.Parallel()
	h, _, svc := newAdminHandler(t)

	svc.EXPECT().Stats(mock.Anything).Return(&ports.Stats{
		Counts: map[content.Kind]int{content.KindFAQ: 4},
		Errors: map[content.Kind]error{content.KindProject: errors.New("timeout")},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	h.Stats(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StatsResponse](t, rec)
	if resp.Counts["faqs"] != 4 {
		t.Errorf("Counts[faqs] = %d, want 4", resp.Counts["faqs"])
	}
	if resp.Errors["projects"] != "timeout" {
		t.Errorf("Errors[projects] = %q, want timeout", resp.Errors["projects"])
	}
}
