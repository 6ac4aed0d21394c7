package compare

import (
	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/novikdental/compare-platform/internal/engine"
)

// RankRequest is the request body for POST /compare/rank.
type RankRequest struct {
	ComparatorID string            `json:"comparator_id"`
	PriorityID   string            `json:"priority_id"`
	Answers      map[string]string `json:"answers"`
}

// RankResponse carries the ordered ranking plus the headline sentence for
// the winner. Results is empty (never null) when the identifiers resolve
// to nothing.
type RankResponse struct {
	ComparatorID   string                `json:"comparator_id"`
	PriorityID     string                `json:"priority_id"`
	Results        []engine.ScoredMethod `json:"results"`
	Recommendation string                `json:"recommendation,omitempty"`
}

// ComparatorDetail is everything a client needs to run one scenario:
// the question flow, the candidate methods with their tables, the shared
// row-label schema and the selectable priorities.
type ComparatorDetail struct {
	Comparator catalog.Comparator       `json:"comparator"`
	Methods    []catalog.Method         `json:"methods"`
	RowLabels  []catalog.TableRowLabel  `json:"row_labels"`
	Priorities []catalog.PriorityOption `json:"priorities"`
}

// CategoriesResponse is the body for GET /compare/categories.
type CategoriesResponse struct {
	Categories []catalog.Category `json:"categories"`
}

// ComparatorsResponse is the body for GET /compare/comparators.
type ComparatorsResponse struct {
	Comparators []ComparatorSummary `json:"comparators"`
	Count       int                 `json:"count"`
}

// ComparatorSummary is the list-view projection of a comparator: enough to
// render a card without shipping the full question flow.
type ComparatorSummary struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Icon       string `json:"icon,omitempty"`
	Color      string `json:"color,omitempty"`
	Methods    int    `json:"methods"`
	Questions  int    `json:"questions"`
}

func summarize(c catalog.Comparator) ComparatorSummary {
	return ComparatorSummary{
		ID:         c.ID,
		CategoryID: c.CategoryID,
		Title:      c.Title,
		Subtitle:   c.Subtitle,
		Icon:       c.Icon,
		Color:      c.Color,
		Methods:    len(c.MethodIDs),
		Questions:  len(c.Questions),
	}
}
