// Package engine ranks treatment methods for a comparison scenario. Scoring
// combines each method's metric vector with the weight profile of the chosen
// priority, then applies the scenario's gating rules against the user's
// answers. The computation is pure: the only shared state is the immutable
// catalog, so concurrent calls need no coordination.
package engine

import (
	"math"
	"sort"

	"github.com/novikdental/compare-platform/internal/catalog"
)

// ScoredMethod is one ranked result. Badges accumulate in rule definition
// order from every rule that fired for the method.
type ScoredMethod struct {
	MethodID string   `json:"method_id"`
	Score    int      `json:"score"`
	Badges   []string `json:"badges,omitempty"`
}

// Engine computes rankings against a fixed catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an engine bound to the given catalog.
func New(cat *catalog.Catalog) *Engine {
	if cat == nil {
		panic("engine: catalog cannot be nil")
	}
	return &Engine{catalog: cat}
}

// Catalog returns the catalog the engine ranks against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Rank scores every method eligible for the comparator under the given
// priority profile and answer set, sorted by score descending. Ties keep
// the comparator's method list order. An unknown comparator or priority
// yields an empty result; a method ID that does not resolve is kept as a
// zero-score entry so one bad catalog reference cannot sink the whole
// scenario.
func (e *Engine) Rank(comparatorID, priorityID string, answers map[string]string) []ScoredMethod {
	cmp, ok := e.catalog.Comparator(comparatorID)
	if !ok {
		return []ScoredMethod{}
	}
	weights, ok := e.catalog.PriorityWeights(priorityID)
	if !ok {
		return []ScoredMethod{}
	}

	scored := make([]ScoredMethod, len(cmp.MethodIDs))
	index := make(map[string]int, len(cmp.MethodIDs))
	for i, id := range cmp.MethodIDs {
		scored[i] = ScoredMethod{MethodID: id}
		index[id] = i
		if m, ok := e.catalog.Method(id); ok {
			scored[i].Score = baseScore(m.Metrics, weights)
		}
	}

	for _, rule := range e.catalog.Rules(comparatorID) {
		if !matches(rule, answers) {
			continue
		}
		for _, eff := range rule.Effects {
			i, ok := index[eff.MethodID]
			if !ok {
				continue
			}
			scored[i].Score = clamp(scored[i].Score + eff.ScoreDelta)
			if eff.Badge != "" {
				scored[i].Badges = append(scored[i].Badges, eff.Badge)
			}
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

// baseScore is the weighted metric sum rounded to the nearest integer.
// Metrics and weights are both bounded, so the result is already in range,
// but it is clamped anyway to keep the invariant local.
func baseScore(m catalog.MethodMetrics, w catalog.Weights) int {
	sum := m.Durability*w.Durability +
		m.Speed*w.Speed +
		m.MinInvasive*w.MinInvasive +
		m.Maintenance*w.Maintenance +
		m.Risk*w.Risk
	return clamp(int(math.Round(sum)))
}

// matches reports whether every answer pair the rule requires is present
// verbatim in the user's answers. A rule with no required answers matches
// unconditionally.
func matches(rule catalog.GatingRule, answers map[string]string) bool {
	for q, want := range rule.Answers {
		if answers[q] != want {
			return false
		}
	}
	return true
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
