package handoff

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type db interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores handoff leads in the relational database.
// Answers and the ranking snapshot live in jsonb columns; they are opaque
// to the schema on purpose.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db db) *PostgresRepository {
	if db == nil {
		panic("handoff: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("handoff: marshal answers: %w", err)
	}
	topMethods, err := json.Marshal(req.TopMethods)
	if err != nil {
		return nil, fmt.Errorf("handoff: marshal top methods: %w", err)
	}

	id := uuid.New()
	query := `
		INSERT INTO handoff_leads (id, name, email, phone, message, comparator_id, priority_id, answers, top_methods)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.Name,
		req.Email,
		req.Phone,
		req.Message,
		req.ComparatorID,
		req.PriorityID,
		answers,
		topMethods,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("handoff: insert failed: %w", err)
	}

	return &Lead{
		ID:           id.String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		ComparatorID: req.ComparatorID,
		PriorityID:   req.PriorityID,
		Answers:      req.Answers,
		TopMethods:   req.TopMethods,
		CreatedAt:    createdAt,
	}, nil
}

// GetByID fetches a lead.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := `
		SELECT id, name, email, phone, message, comparator_id, priority_id, answers, top_methods, created_at
		FROM handoff_leads
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	var (
		lead       Lead
		answers    []byte
		topMethods []byte
	)
	if err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Message,
		&lead.ComparatorID,
		&lead.PriorityID,
		&answers,
		&topMethods,
		&lead.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("handoff: select failed: %w", err)
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &lead.Answers); err != nil {
			return nil, fmt.Errorf("handoff: decode answers: %w", err)
		}
	}
	if len(topMethods) > 0 {
		if err := json.Unmarshal(topMethods, &lead.TopMethods); err != nil {
			return nil, fmt.Errorf("handoff: decode top methods: %w", err)
		}
	}
	return &lead, nil
}
