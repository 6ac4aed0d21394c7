package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novikdental/compare-platform/internal/catalog"
)

// fixtureCatalog builds a minimal catalog where expected scores are easy to
// compute by hand: a single-metric weight profile and round metric values.
func fixtureCatalog(rules []catalog.GatingRule) *catalog.Catalog {
	methods := []catalog.Method{
		{ID: "alpha", Label: "Alpha", Short: "Opcja A.", Metrics: catalog.MethodMetrics{Durability: 95, Speed: 50, MinInvasive: 50, Maintenance: 50, Risk: 50}},
		{ID: "beta", Label: "Beta", Short: "Opcja B.", Metrics: catalog.MethodMetrics{Durability: 60, Speed: 50, MinInvasive: 50, Maintenance: 50, Risk: 50}},
		{ID: "gamma", Label: "Gamma", Short: "Opcja C.", Metrics: catalog.MethodMetrics{Durability: 60, Speed: 50, MinInvasive: 50, Maintenance: 50, Risk: 50}},
	}
	comparators := []catalog.Comparator{{
		ID: "duel", CategoryID: "cat", Title: "Duel",
		MethodIDs: []string{"alpha", "beta", "gamma", "ghost"},
		Questions: []catalog.Question{
			{ID: "q1", Label: "Q1", Options: []catalog.QuestionOption{{Value: "yes", Label: "Tak"}, {Value: "no", Label: "Nie"}}},
			{ID: "q2", Label: "Q2", Options: []catalog.QuestionOption{{Value: "hot", Label: "Hot"}, {Value: "cold", Label: "Cold"}}},
		},
	}}
	priorities := []catalog.PriorityOption{{ID: "durable_only", Label: "Trwałość", Phrase: "najtrwalsze rozwiązanie"}}
	weights := map[string]catalog.Weights{
		"durable_only": {Durability: 1},
	}
	return catalog.New(
		[]catalog.Category{{ID: "cat", Title: "Cat"}},
		comparators, methods, priorities, weights, rules, nil,
	)
}

func TestRankBaseScores(t *testing.T) {
	e := New(fixtureCatalog(nil))

	got := e.Rank("duel", "durable_only", nil)
	require.Len(t, got, 4)

	assert.Equal(t, ScoredMethod{MethodID: "alpha", Score: 95}, got[0])
	// beta and gamma tie at 60; the comparator's list order decides.
	assert.Equal(t, "beta", got[1].MethodID)
	assert.Equal(t, "gamma", got[2].MethodID)
	// "ghost" has no catalog entry: zero-score stub, not an error.
	assert.Equal(t, ScoredMethod{MethodID: "ghost", Score: 0}, got[3])
}

func TestRankUnknownIDs(t *testing.T) {
	e := New(fixtureCatalog(nil))

	assert.Empty(t, e.Rank("no_such_comparator", "durable_only", nil))
	assert.Empty(t, e.Rank("duel", "no_such_priority", nil))
}

func TestRankPartialMatchDoesNotFire(t *testing.T) {
	e := New(fixtureCatalog([]catalog.GatingRule{
		{ID: "both", ComparatorID: "duel", Answers: map[string]string{"q1": "yes", "q2": "hot"}, Effects: []catalog.GatingEffect{
			{MethodID: "beta", ScoreDelta: 30},
		}},
	}))

	// Only one of the two required answers matches.
	got := e.Rank("duel", "durable_only", map[string]string{"q1": "yes", "q2": "cold"})
	for _, sm := range got {
		if sm.MethodID == "beta" {
			assert.Equal(t, 60, sm.Score)
		}
	}

	got = e.Rank("duel", "durable_only", map[string]string{"q1": "yes", "q2": "hot"})
	require.Equal(t, "alpha", got[0].MethodID)
	assert.Equal(t, "beta", got[1].MethodID)
	assert.Equal(t, 90, got[1].Score)
}

func TestRankClampsAfterEveryRule(t *testing.T) {
	e := New(fixtureCatalog([]catalog.GatingRule{
		{ID: "boost", ComparatorID: "duel", Answers: map[string]string{"q1": "yes"}, Effects: []catalog.GatingEffect{
			{MethodID: "alpha", ScoreDelta: 15},
		}},
		{ID: "penalty", ComparatorID: "duel", Answers: map[string]string{"q2": "hot"}, Effects: []catalog.GatingEffect{
			{MethodID: "alpha", ScoreDelta: -10},
			{MethodID: "beta", ScoreDelta: -100},
		}},
	}))

	got := e.Rank("duel", "durable_only", map[string]string{"q1": "yes", "q2": "hot"})

	// 95+15 clamps to 100 before the -10 lands; without the intermediate
	// clamp the result would be 100.
	assert.Equal(t, "alpha", got[0].MethodID)
	assert.Equal(t, 90, got[0].Score)
	// 60-100 clamps to 0 at the bottom end.
	for _, sm := range got {
		if sm.MethodID == "beta" {
			assert.Equal(t, 0, sm.Score)
		}
	}
}

func TestRankUnconditionalRuleAlwaysFires(t *testing.T) {
	e := New(fixtureCatalog([]catalog.GatingRule{
		{ID: "always", ComparatorID: "duel", Answers: map[string]string{}, Effects: []catalog.GatingEffect{
			{MethodID: "beta", ScoreDelta: 30, Badge: "zawsze"},
		}},
	}))

	// A rule with no required answers fires regardless of the answer set.
	for _, answers := range []map[string]string{nil, {}, {"q1": "no"}} {
		got := e.Rank("duel", "durable_only", answers)
		require.Len(t, got, 4)
		for _, sm := range got {
			if sm.MethodID == "beta" {
				assert.Equal(t, 90, sm.Score)
				assert.Equal(t, []string{"zawsze"}, sm.Badges)
			}
		}
	}
}

func TestRankBadgeOrder(t *testing.T) {
	e := New(fixtureCatalog([]catalog.GatingRule{
		{ID: "first", ComparatorID: "duel", Answers: map[string]string{"q1": "yes"}, Effects: []catalog.GatingEffect{
			{MethodID: "alpha", ScoreDelta: -1, Badge: "pierwsza uwaga"},
		}},
		{ID: "second", ComparatorID: "duel", Answers: map[string]string{"q2": "hot"}, Effects: []catalog.GatingEffect{
			{MethodID: "alpha", ScoreDelta: -1, Badge: "druga uwaga"},
		}},
	}))

	got := e.Rank("duel", "durable_only", map[string]string{"q1": "yes", "q2": "hot"})
	require.Equal(t, "alpha", got[0].MethodID)
	assert.Equal(t, []string{"pierwsza uwaga", "druga uwaga"}, got[0].Badges)
}

func TestRankRuleEffectOnIneligibleMethodIsNoOp(t *testing.T) {
	e := New(fixtureCatalog([]catalog.GatingRule{
		{ID: "stray", ComparatorID: "duel", Answers: map[string]string{"q1": "yes"}, Effects: []catalog.GatingEffect{
			{MethodID: "not_in_duel", ScoreDelta: 50},
			{MethodID: "beta", ScoreDelta: 5},
		}},
	}))

	got := e.Rank("duel", "durable_only", map[string]string{"q1": "yes"})
	require.Len(t, got, 4)
	for _, sm := range got {
		if sm.MethodID == "beta" {
			assert.Equal(t, 65, sm.Score)
		}
	}
}

func TestRankDeterminism(t *testing.T) {
	e := New(catalog.Default())
	answers := map[string]string{"location": "front", "count": "one", "neighbors": "healthy"}

	first := e.Rank("missing_tooth", "balanced", answers)
	second := e.Rank("missing_tooth", "balanced", answers)
	assert.Equal(t, first, second)
}

func TestRankMissingToothScenario(t *testing.T) {
	e := New(catalog.Default())

	// Healthy neighbors: grinding them down for a bridge is penalized,
	// the implant gains ground.
	got := e.Rank("missing_tooth", "durable", map[string]string{
		"location": "back", "count": "one", "neighbors": "healthy",
	})
	require.Len(t, got, 3)

	assert.Equal(t, "implant", got[0].MethodID)
	assert.Equal(t, 83, got[0].Score) // base 75 + 8
	assert.Equal(t, "partial_denture", got[1].MethodID)
	assert.Equal(t, 67, got[1].Score)
	assert.Equal(t, "bridge", got[2].MethodID)
	assert.Equal(t, 53, got[2].Score) // base 65 - 12
	assert.Equal(t, []string{"Szkoda szlifować zdrowe sąsiednie zęby pod most."}, got[2].Badges)

	// Many missing teeth: a removable denture becomes the front-runner.
	got = e.Rank("missing_tooth", "durable", map[string]string{
		"location": "back", "count": "many", "neighbors": "restored",
	})
	require.Len(t, got, 3)
	assert.Equal(t, "partial_denture", got[0].MethodID)
	assert.Equal(t, 77, got[0].Score) // base 67 + 10
	assert.Equal(t, "implant", got[1].MethodID)
	assert.Equal(t, 67, got[1].Score) // base 75 - 8
}

func TestRankScoreBoundsAcrossCatalog(t *testing.T) {
	cat := catalog.Default()
	e := New(cat)

	for _, cmp := range cat.ListComparators("") {
		for _, p := range cat.Priorities() {
			for _, answers := range answerVariants(cmp) {
				for _, sm := range e.Rank(cmp.ID, p.ID, answers) {
					if sm.Score < 0 || sm.Score > 100 {
						t.Fatalf("comparator %s priority %s: score %d for %s out of [0,100]",
							cmp.ID, p.ID, sm.Score, sm.MethodID)
					}
				}
			}
		}
	}
}

// answerVariants returns no answers, all-first-option and all-last-option
// answer sets for a comparator, enough to drive every rule combination the
// catalog ships.
func answerVariants(cmp catalog.Comparator) []map[string]string {
	first := make(map[string]string, len(cmp.Questions))
	last := make(map[string]string, len(cmp.Questions))
	for _, q := range cmp.Questions {
		first[q.ID] = q.Options[0].Value
		last[q.ID] = q.Options[len(q.Options)-1].Value
	}
	return []map[string]string{nil, first, last}
}

func TestRecommendationText(t *testing.T) {
	e := New(fixtureCatalog(nil))

	text := e.RecommendationText("durable_only", ScoredMethod{MethodID: "alpha", Score: 95})
	assert.Contains(t, text, "**Alpha**")
	assert.Contains(t, text, "najtrwalsze rozwiązanie")
	assert.Contains(t, text, "Opcja A.")
	assert.NotContains(t, text, badgeCaveat)

	withBadge := e.RecommendationText("durable_only", ScoredMethod{
		MethodID: "alpha", Score: 80, Badges: []string{"uwaga"},
	})
	assert.Contains(t, withBadge, badgeCaveat)

	assert.Empty(t, e.RecommendationText("no_such_priority", ScoredMethod{MethodID: "alpha"}))
	assert.Empty(t, e.RecommendationText("durable_only", ScoredMethod{MethodID: "ghost"}))
}
