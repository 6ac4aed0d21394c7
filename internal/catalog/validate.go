package catalog

import (
	"errors"
	"fmt"
	"math"
)

// weightSumTolerance absorbs float literal noise; weight vectors must sum
// to 1.0 within it.
const weightSumTolerance = 1e-6

// Validate cross-checks the whole data set: every reference between
// comparators, methods, priorities and gating rules must resolve, and
// every numeric field must be in range. It returns all problems at once
// so a data edit can be fixed in a single pass.
func (c *Catalog) Validate() error {
	var errs []error

	seenCategory := make(map[string]bool, len(c.categories))
	for _, cat := range c.categories {
		if cat.ID == "" {
			errs = append(errs, errors.New("category with empty id"))
			continue
		}
		if seenCategory[cat.ID] {
			errs = append(errs, fmt.Errorf("duplicate category %q", cat.ID))
		}
		seenCategory[cat.ID] = true
	}

	for id, m := range c.methods {
		for name, v := range map[string]float64{
			"durability":   m.Metrics.Durability,
			"speed":        m.Metrics.Speed,
			"min_invasive": m.Metrics.MinInvasive,
			"maintenance":  m.Metrics.Maintenance,
			"risk":         m.Metrics.Risk,
		} {
			if v < 0 || v > 100 {
				errs = append(errs, fmt.Errorf("method %q: metric %s=%g out of [0,100]", id, name, v))
			}
		}
		if m.Label == "" {
			errs = append(errs, fmt.Errorf("method %q: empty label", id))
		}
	}

	if len(c.priorities) == 0 {
		errs = append(errs, errors.New("no priority profiles defined"))
	}
	for _, p := range c.priorities {
		w, ok := c.weights[p.ID]
		if !ok {
			errs = append(errs, fmt.Errorf("priority %q: no weight vector", p.ID))
			continue
		}
		for name, v := range map[string]float64{
			"durability":   w.Durability,
			"speed":        w.Speed,
			"min_invasive": w.MinInvasive,
			"maintenance":  w.Maintenance,
			"risk":         w.Risk,
		} {
			if v < 0 {
				errs = append(errs, fmt.Errorf("priority %q: negative weight %s=%g", p.ID, name, v))
			}
		}
		sum := w.Durability + w.Speed + w.MinInvasive + w.Maintenance + w.Risk
		if math.Abs(sum-1.0) > weightSumTolerance {
			errs = append(errs, fmt.Errorf("priority %q: weights sum to %g, want 1.0", p.ID, sum))
		}
	}
	for id := range c.weights {
		if _, ok := c.priorityix[id]; !ok {
			errs = append(errs, fmt.Errorf("weight vector %q has no priority profile", id))
		}
	}

	for _, cmp := range c.comparators {
		if !seenCategory[cmp.CategoryID] {
			errs = append(errs, fmt.Errorf("comparator %q: unknown category %q", cmp.ID, cmp.CategoryID))
		}
		if len(cmp.MethodIDs) == 0 {
			errs = append(errs, fmt.Errorf("comparator %q: empty method list", cmp.ID))
		}
		seenMethod := make(map[string]bool, len(cmp.MethodIDs))
		for _, mid := range cmp.MethodIDs {
			if _, ok := c.methods[mid]; !ok {
				errs = append(errs, fmt.Errorf("comparator %q: unknown method %q", cmp.ID, mid))
			}
			if seenMethod[mid] {
				errs = append(errs, fmt.Errorf("comparator %q: method %q listed twice", cmp.ID, mid))
			}
			seenMethod[mid] = true
		}
		seenQuestion := make(map[string]bool, len(cmp.Questions))
		for _, q := range cmp.Questions {
			if seenQuestion[q.ID] {
				errs = append(errs, fmt.Errorf("comparator %q: duplicate question %q", cmp.ID, q.ID))
			}
			seenQuestion[q.ID] = true
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Errorf("comparator %q: question %q has %d options, want at least 2", cmp.ID, q.ID, len(q.Options)))
			}
			seenValue := make(map[string]bool, len(q.Options))
			for _, opt := range q.Options {
				if seenValue[opt.Value] {
					errs = append(errs, fmt.Errorf("comparator %q: question %q: duplicate option value %q", cmp.ID, q.ID, opt.Value))
				}
				seenValue[opt.Value] = true
			}
		}
	}

	seenRule := make(map[string]bool, len(c.rules))
	for _, r := range c.rules {
		if seenRule[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate rule %q", r.ID))
		}
		seenRule[r.ID] = true
		errs = append(errs, c.validateRule(r)...)
	}

	return errors.Join(errs...)
}

func (c *Catalog) validateRule(r GatingRule) []error {
	var errs []error
	cmp, ok := c.Comparator(r.ComparatorID)
	if !ok {
		return []error{fmt.Errorf("rule %q: unknown comparator %q", r.ID, r.ComparatorID)}
	}
	// An empty Answers map is legal: such a rule fires unconditionally.
	for qid, want := range r.Answers {
		q, ok := findQuestion(cmp, qid)
		if !ok {
			errs = append(errs, fmt.Errorf("rule %q: comparator %q has no question %q", r.ID, cmp.ID, qid))
			continue
		}
		if !hasOption(q, want) {
			errs = append(errs, fmt.Errorf("rule %q: question %q has no option %q", r.ID, qid, want))
		}
	}
	if len(r.Effects) == 0 {
		errs = append(errs, fmt.Errorf("rule %q: no effects", r.ID))
	}
	eligible := make(map[string]bool, len(cmp.MethodIDs))
	for _, mid := range cmp.MethodIDs {
		eligible[mid] = true
	}
	for _, e := range r.Effects {
		if !eligible[e.MethodID] {
			errs = append(errs, fmt.Errorf("rule %q: method %q is not eligible for comparator %q", r.ID, e.MethodID, cmp.ID))
		}
		if e.ScoreDelta == 0 && e.Badge == "" {
			errs = append(errs, fmt.Errorf("rule %q: effect on %q does nothing", r.ID, e.MethodID))
		}
	}
	return errs
}

func findQuestion(cmp Comparator, id string) (Question, bool) {
	for _, q := range cmp.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func hasOption(q Question, value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
