package handoff

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/novikdental/compare-platform/pkg/logging"
)

func TestCreateLead_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, nil, logging.Default())

	reqBody := CreateLeadRequest{
		Name:         "Jan Kowalski",
		Email:        "jan@example.com",
		Phone:        "+48600700800",
		Message:      "Proszę o kontakt w sprawie implantu",
		ComparatorID: "missing_tooth",
		PriorityID:   "durable",
		Answers:      map[string]string{"location": "back", "count": "one", "neighbors": "healthy"},
		TopMethods: []RankedChoice{
			{MethodID: "implant", Label: "Implant", Score: 83},
			{MethodID: "partial_denture", Label: "Proteza częściowa", Score: 67},
		},
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/handoff/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLead(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var lead Lead
	if err := json.NewDecoder(w.Body).Decode(&lead); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if lead.ID == "" {
		t.Error("expected lead id to be set")
	}
	if lead.Name != reqBody.Name {
		t.Errorf("expected name %s, got %s", reqBody.Name, lead.Name)
	}
	if lead.ComparatorID != "missing_tooth" {
		t.Errorf("expected comparator missing_tooth, got %s", lead.ComparatorID)
	}
	if len(lead.TopMethods) != 2 || lead.TopMethods[0].MethodID != "implant" {
		t.Errorf("ranking snapshot not preserved: %+v", lead.TopMethods)
	}
	if lead.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreateLead_ValidationErrors(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), nil, logging.Default())

	tests := []struct {
		name string
		req  CreateLeadRequest
	}{
		{"missing name", CreateLeadRequest{Email: "jan@example.com"}},
		{"missing contact", CreateLeadRequest{Name: "Jan Kowalski"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/handoff/leads", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateLead(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestCreateLead_InvalidBody(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), nil, logging.Default())

	req := httptest.NewRequest(http.MethodPost, "/handoff/leads", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	handler.CreateLead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	return nil, errors.New("database down")
}

func (failingRepo) GetByID(ctx context.Context, id string) (*Lead, error) {
	return nil, errors.New("database down")
}

func TestCreateLead_RepoError(t *testing.T) {
	handler := NewHandler(failingRepo{}, nil, logging.Default())

	body, _ := json.Marshal(CreateLeadRequest{Name: "Jan", Email: "jan@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/handoff/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLead(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestGetLead(t *testing.T) {
	repo := NewInMemoryRepository()
	created, err := repo.Create(context.Background(), &CreateLeadRequest{
		Name:  "Anna Nowak",
		Phone: "+48500600700",
	})
	if err != nil {
		t.Fatalf("seed lead: %v", err)
	}

	handler := NewHandler(repo, nil, logging.Default())
	r := chi.NewRouter()
	r.Get("/handoff/leads/{leadID}", handler.GetLead)

	req := httptest.NewRequest(http.MethodGet, "/handoff/leads/"+created.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var lead Lead
	if err := json.NewDecoder(w.Body).Decode(&lead); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if lead.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, lead.ID)
	}

	req = httptest.NewRequest(http.MethodGet, "/handoff/leads/missing-id", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
