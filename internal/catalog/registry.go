package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Catalog is an immutable registry of the comparison data set. Build one
// with New (fixtures) or Default (production data) and share it freely;
// it is safe for concurrent readers because nothing mutates it after
// construction.
type Catalog struct {
	categories  []Category
	comparators []Comparator
	priorities  []PriorityOption
	rules       []GatingRule
	rowLabels   []TableRowLabel

	methods      map[string]Method
	comparatorix map[string]int
	priorityix   map[string]int
	weights      map[string]Weights

	version string
}

// New assembles a catalog from its parts. Slices are copied so later edits
// to the caller's data cannot leak into the registry.
func New(
	categories []Category,
	comparators []Comparator,
	methods []Method,
	priorities []PriorityOption,
	weights map[string]Weights,
	rules []GatingRule,
	rowLabels []TableRowLabel,
) *Catalog {
	c := &Catalog{
		categories:   append([]Category(nil), categories...),
		comparators:  append([]Comparator(nil), comparators...),
		priorities:   append([]PriorityOption(nil), priorities...),
		rules:        append([]GatingRule(nil), rules...),
		rowLabels:    append([]TableRowLabel(nil), rowLabels...),
		methods:      make(map[string]Method, len(methods)),
		comparatorix: make(map[string]int, len(comparators)),
		priorityix:   make(map[string]int, len(priorities)),
		weights:      make(map[string]Weights, len(weights)),
	}
	for _, m := range methods {
		c.methods[m.ID] = m
	}
	for i, cmp := range c.comparators {
		c.comparatorix[cmp.ID] = i
	}
	for i, p := range c.priorities {
		c.priorityix[p.ID] = i
	}
	for id, w := range weights {
		c.weights[id] = w
	}
	c.version = fingerprint(c)
	return c
}

// Default builds the production data set.
func Default() *Catalog {
	return New(
		defaultCategories(),
		defaultComparators(),
		defaultMethods(),
		defaultPriorities(),
		defaultWeights(),
		defaultGatingRules(),
		defaultTableRowLabels(),
	)
}

// Method looks up a treatment method by ID.
func (c *Catalog) Method(id string) (Method, bool) {
	m, ok := c.methods[id]
	return m, ok
}

// Comparator looks up a scenario by ID.
func (c *Catalog) Comparator(id string) (Comparator, bool) {
	i, ok := c.comparatorix[id]
	if !ok {
		return Comparator{}, false
	}
	return c.comparators[i], true
}

// Priority looks up a priority profile by ID.
func (c *Catalog) Priority(id string) (PriorityOption, bool) {
	i, ok := c.priorityix[id]
	if !ok {
		return PriorityOption{}, false
	}
	return c.priorities[i], true
}

// PriorityWeights returns the weight vector of a priority profile.
func (c *Catalog) PriorityWeights(id string) (Weights, bool) {
	w, ok := c.weights[id]
	return w, ok
}

// Categories returns all categories in definition order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Priorities returns all priority profiles in definition order.
func (c *Catalog) Priorities() []PriorityOption {
	return append([]PriorityOption(nil), c.priorities...)
}

// ListComparators returns comparators in definition order. With a non-empty
// categoryID only that category's comparators are returned, keeping their
// relative order. An unknown category simply yields an empty list.
func (c *Catalog) ListComparators(categoryID string) []Comparator {
	if categoryID == "" {
		return append([]Comparator(nil), c.comparators...)
	}
	var out []Comparator
	for _, cmp := range c.comparators {
		if cmp.CategoryID == categoryID {
			out = append(out, cmp)
		}
	}
	return out
}

// Rules returns the gating rules for a comparator in declaration order.
// Declaration order is the application order; callers must not re-sort.
func (c *Catalog) Rules(comparatorID string) []GatingRule {
	var out []GatingRule
	for _, r := range c.rules {
		if r.ComparatorID == comparatorID {
			out = append(out, r)
		}
	}
	return out
}

// AllRules returns the full rule list in declaration order.
func (c *Catalog) AllRules() []GatingRule {
	return append([]GatingRule(nil), c.rules...)
}

// TableRowLabels returns the shared comparison table schema.
func (c *Catalog) TableRowLabels() []TableRowLabel {
	return append([]TableRowLabel(nil), c.rowLabels...)
}

// Version is a stable fingerprint of the catalog content. Cache layers key
// on it so that a reloaded catalog naturally invalidates stale entries.
func (c *Catalog) Version() string {
	return c.version
}

func fingerprint(c *Catalog) string {
	h := sha256.New()
	for _, cmp := range c.comparators {
		fmt.Fprintf(h, "c:%s:%s:%d:%d;", cmp.ID, cmp.CategoryID, len(cmp.MethodIDs), len(cmp.Questions))
	}
	methodIDs := make([]string, 0, len(c.methods))
	for id := range c.methods {
		methodIDs = append(methodIDs, id)
	}
	sort.Strings(methodIDs)
	for _, id := range methodIDs {
		m := c.methods[id]
		fmt.Fprintf(h, "m:%s:%.0f:%.0f:%.0f:%.0f:%.0f;", id,
			m.Metrics.Durability, m.Metrics.Speed, m.Metrics.MinInvasive, m.Metrics.Maintenance, m.Metrics.Risk)
	}
	for _, r := range c.rules {
		fmt.Fprintf(h, "r:%s:%d;", r.ID, len(r.Effects))
	}
	for _, p := range c.priorities {
		w := c.weights[p.ID]
		fmt.Fprintf(h, "p:%s:%.3f:%.3f:%.3f:%.3f:%.3f;", p.ID, w.Durability, w.Speed, w.MinInvasive, w.Maintenance, w.Risk)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
