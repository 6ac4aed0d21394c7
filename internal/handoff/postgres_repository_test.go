package handoff

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestPostgresCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO handoff_leads").
		WithArgs(
			pgxmock.AnyArg(),
			"Jan Kowalski",
			"jan@example.com",
			"",
			"Proszę o kontakt",
			"missing_tooth",
			"durable",
			pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewPostgresRepository(mock)
	lead, err := repo.Create(context.Background(), &CreateLeadRequest{
		Name:         "Jan Kowalski",
		Email:        "jan@example.com",
		Message:      "Proszę o kontakt",
		ComparatorID: "missing_tooth",
		PriorityID:   "durable",
		Answers:      map[string]string{"neighbors": "healthy"},
		TopMethods:   []RankedChoice{{MethodID: "implant", Label: "Implant", Score: 83}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if lead.ID == "" {
		t.Error("expected generated id")
	}
	if !lead.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, lead.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateValidates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	if _, err := repo.Create(context.Background(), &CreateLeadRequest{Email: "x@example.com"}); err != ErrInvalidName {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestPostgresGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "name", "email", "phone", "message",
		"comparator_id", "priority_id", "answers", "top_methods", "created_at",
	}).AddRow(
		"lead-1", "Anna Nowak", "", "+48500600700", "",
		"missing_tooth", "fast",
		[]byte(`{"count":"many"}`),
		[]byte(`[{"method_id":"partial_denture","label":"Proteza częściowa","score":77}]`),
		now,
	)
	mock.ExpectQuery("SELECT (.+) FROM handoff_leads").WithArgs("lead-1").WillReturnRows(rows)

	repo := NewPostgresRepository(mock)
	lead, err := repo.GetByID(context.Background(), "lead-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if lead.Answers["count"] != "many" {
		t.Errorf("answers not decoded: %+v", lead.Answers)
	}
	if len(lead.TopMethods) != 1 || lead.TopMethods[0].Score != 77 {
		t.Errorf("top methods not decoded: %+v", lead.TopMethods)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
