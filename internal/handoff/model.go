// Package handoff captures "talk to the clinic" submissions from the
// comparison tool: contact details plus the scenario and ranking snapshot
// the patient was looking at, so the front desk sees what was compared.
package handoff

import (
	"strings"
	"time"
)

// RankedChoice is one scored method frozen into the lead at submission
// time. It is a snapshot, not a reference: catalog edits after the fact
// must not change what the patient saw.
type RankedChoice struct {
	MethodID string   `json:"method_id"`
	Label    string   `json:"label"`
	Score    int      `json:"score"`
	Badges   []string `json:"badges,omitempty"`
}

// Lead represents a handoff submission.
type Lead struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Message      string            `json:"message"`
	ComparatorID string            `json:"comparator_id"`
	PriorityID   string            `json:"priority_id"`
	Answers      map[string]string `json:"answers,omitempty"`
	TopMethods   []RankedChoice    `json:"top_methods,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// CreateLeadRequest represents the request body for creating a lead.
type CreateLeadRequest struct {
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Message      string            `json:"message"`
	ComparatorID string            `json:"comparator_id"`
	PriorityID   string            `json:"priority_id"`
	Answers      map[string]string `json:"answers"`
	TopMethods   []RankedChoice    `json:"top_methods"`
}

// Validate validates the create lead request.
func (r *CreateLeadRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if r.Email == "" && r.Phone == "" {
		return ErrMissingContact
	}
	return nil
}
